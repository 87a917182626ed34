package main

import (
	_ "embed"
	"fmt"

	"github.com/muntyanw/customer-portal/contracts"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var rawConfig []byte

type DetectorConfig struct {
	ScanCols        int    `yaml:"scan_cols"`
	MinMergedWidth  int    `yaml:"min_merged_width"`
	TitleWord       string `yaml:"title_word"`
	DefaultWidthCol int    `yaml:"default_width_col"`
}

type WidthRuleConfig struct {
	Canonical         string `yaml:"canonical"`
	Alternate         string `yaml:"alternate"`
	AlternateOffsetMm int    `yaml:"alternate_offset_mm"`
}

type SurchargeConfig struct {
	StepMm     int `yaml:"step_mm"`
	PerStepPct int `yaml:"per_step_pct"`
}

type LimitsConfig struct {
	MaxWidthMm  *int `yaml:"max_width_mm"`
	MaxHeightMm *int `yaml:"max_height_mm"`
}

type ExtrasFieldConfig struct {
	Field     string `yaml:"field"`
	RowOffset int    `yaml:"row_offset"`
	Col       int    `yaml:"col"`
	Kind      string `yaml:"kind"`
}

type SystemConfig struct {
	Slug              string              `yaml:"slug"`
	Display           *bool               `yaml:"display"`
	LegacyTitlePrefix bool                `yaml:"legacy_title_prefix"`
	Width             WidthRuleConfig     `yaml:"width"`
	Surcharge         *SurchargeConfig    `yaml:"surcharge"`
	Limits            LimitsConfig        `yaml:"limits"`
	Extras            []ExtrasFieldConfig `yaml:"extras"`
}

func (s SystemConfig) Visible() bool {
	return s.Display == nil || *s.Display
}

func (s SystemConfig) WidthRule() contracts.WidthRule {
	return contracts.WidthRule{
		Canonical:         contracts.WidthUnit(s.Width.Canonical),
		Alternate:         contracts.WidthUnit(s.Width.Alternate),
		AlternateOffsetMm: s.Width.AlternateOffsetMm,
	}
}

type Config struct {
	Detector          DetectorConfig          `yaml:"detector"`
	SurchargeDefaults SurchargeConfig         `yaml:"surcharge_defaults"`
	Systems           map[string]SystemConfig `yaml:"systems"`
}

const (
	DefaultScanCols        = 6
	DefaultMinMergedWidth  = 12
	DefaultTitleWord       = "система"
	DefaultWidthColumn     = 4
	DefaultSurchargeStepMm = 100
	DefaultSurchargePct    = 10
)

func LoadConfig() (*Config, error) {
	return ParseConfig(rawConfig)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Detector.ScanCols <= 0 {
		cfg.Detector.ScanCols = DefaultScanCols
	}
	if cfg.Detector.MinMergedWidth <= 0 {
		cfg.Detector.MinMergedWidth = DefaultMinMergedWidth
	}
	if cfg.Detector.TitleWord == "" {
		cfg.Detector.TitleWord = DefaultTitleWord
	}
	if cfg.Detector.DefaultWidthCol <= 0 {
		cfg.Detector.DefaultWidthCol = DefaultWidthColumn
	}
	if cfg.SurchargeDefaults.StepMm <= 0 {
		cfg.SurchargeDefaults.StepMm = DefaultSurchargeStepMm
	}
	if cfg.SurchargeDefaults.PerStepPct <= 0 {
		cfg.SurchargeDefaults.PerStepPct = DefaultSurchargePct
	}

	for name, system := range cfg.Systems {
		if system.Width.Canonical == "" {
			return nil, fmt.Errorf("config: system %q has no canonical width unit", name)
		}
		if !validWidthUnit(system.Width.Canonical) {
			return nil, fmt.Errorf("config: system %q has unknown width unit %q", name, system.Width.Canonical)
		}
		if system.Width.Alternate != "" && !validWidthUnit(system.Width.Alternate) {
			return nil, fmt.Errorf("config: system %q has unknown width unit %q", name, system.Width.Alternate)
		}
		for _, extra := range system.Extras {
			if extra.Kind != "money" && extra.Kind != "text" {
				return nil, fmt.Errorf("config: system %q extras field %q has unknown kind %q", name, extra.Field, extra.Kind)
			}
			if extra.Col <= 0 {
				return nil, fmt.Errorf("config: system %q extras field %q has invalid column", name, extra.Field)
			}
		}
	}

	return cfg, nil
}

func validWidthUnit(name string) bool {
	switch contracts.WidthUnit(name) {
	case contracts.WidthUnitFabric, contracts.WidthUnitGabarit, contracts.WidthUnitShtapik:
		return true
	}
	return false
}

// System returns the configuration for a worksheet name. Unknown systems get
// identity width conversion and default surcharge constants; the second
// return value reports whether the default was used.
func (c *Config) System(name string) (SystemConfig, bool) {
	if system, ok := c.Systems[name]; ok {
		return system, true
	}

	return SystemConfig{
		Slug:  "default",
		Width: WidthRuleConfig{Canonical: string(contracts.WidthUnitFabric)},
	}, false
}

// SurchargeFor resolves the height-surcharge constants for a system,
// falling back to the shared defaults.
func (c *Config) SurchargeFor(system SystemConfig) SurchargeConfig {
	if system.Surcharge != nil {
		return *system.Surcharge
	}
	return c.SurchargeDefaults
}
