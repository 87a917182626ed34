package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()

	assert.NoError(t, err)
	assert.Len(t, config.Systems, 15)
	assert.Equal(t, 6, config.Detector.ScanCols)
	assert.Equal(t, "система", config.Detector.TitleWord)
	assert.Equal(t, 100, config.SurchargeDefaults.StepMm)
	assert.Equal(t, 10, config.SurchargeDefaults.PerStepPct)

	falshi, known := config.System("Фальші")
	assert.True(t, known)
	assert.True(t, falshi.Visible())
	assert.True(t, falshi.LegacyTitlePrefix)
	assert.Equal(t, -4, falshi.Width.AlternateOffsetMm)

	components, known := config.System("Комплектація")
	assert.True(t, known)
	assert.False(t, components.Visible())
}

func TestParseConfig(t *testing.T) {
	t.Run("defaults fill an empty document", func(t *testing.T) {
		config, err := ParseConfig([]byte("{}"))

		assert.NoError(t, err)
		assert.Equal(t, DefaultScanCols, config.Detector.ScanCols)
		assert.Equal(t, DefaultMinMergedWidth, config.Detector.MinMergedWidth)
		assert.Equal(t, DefaultTitleWord, config.Detector.TitleWord)
		assert.Equal(t, DefaultWidthColumn, config.Detector.DefaultWidthCol)
		assert.Equal(t, DefaultSurchargeStepMm, config.SurchargeDefaults.StepMm)
		assert.Equal(t, DefaultSurchargePct, config.SurchargeDefaults.PerStepPct)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		config, err := ParseConfig([]byte("systems: ["))

		assert.Nil(t, config)
		assert.Error(t, err)
	})

	t.Run("system without a canonical width unit", func(t *testing.T) {
		_, err := ParseConfig([]byte("systems:\n  \"Лист\":\n    slug: sheet\n"))

		assert.ErrorContains(t, err, "canonical width unit")
	})

	t.Run("system with an unknown canonical unit", func(t *testing.T) {
		document := `
systems:
  "Лист":
    width:
      canonical: metric
`
		_, err := ParseConfig([]byte(document))

		assert.ErrorContains(t, err, "unknown width unit")
	})

	t.Run("system with an unknown alternate unit", func(t *testing.T) {
		document := `
systems:
  "Лист":
    width:
      canonical: fabric
      alternate: outer
`
		_, err := ParseConfig([]byte(document))

		assert.ErrorContains(t, err, "unknown width unit")
	})

	t.Run("extras field with an unknown kind", func(t *testing.T) {
		document := `
systems:
  "Лист":
    width:
      canonical: fabric
    extras:
      - field: magnets_price_eur
        col: 3
        kind: currency
`
		_, err := ParseConfig([]byte(document))

		assert.ErrorContains(t, err, "unknown kind")
	})

	t.Run("extras field with an invalid column", func(t *testing.T) {
		document := `
systems:
  "Лист":
    width:
      canonical: fabric
    extras:
      - field: magnets_price_eur
        kind: money
`
		_, err := ParseConfig([]byte(document))

		assert.ErrorContains(t, err, "invalid column")
	})
}

func TestConfig_System(t *testing.T) {
	config, err := LoadConfig()
	assert.NoError(t, err)

	t.Run("unknown sheets get a quotable default", func(t *testing.T) {
		system, known := config.System("Новий лист")

		assert.False(t, known)
		assert.True(t, system.Visible())
		assert.Equal(t, "fabric", system.Width.Canonical)
		assert.Nil(t, system.Limits.MaxWidthMm)
	})
}

func TestConfig_SurchargeFor(t *testing.T) {
	config, err := LoadConfig()
	assert.NoError(t, err)

	t.Run("defaults apply without an override", func(t *testing.T) {
		system, _ := config.System("Фальші")

		surcharge := config.SurchargeFor(system)

		assert.Equal(t, 100, surcharge.StepMm)
		assert.Equal(t, 10, surcharge.PerStepPct)
	})

	t.Run("per-system override wins", func(t *testing.T) {
		system := SystemConfig{Surcharge: &SurchargeConfig{StepMm: 50, PerStepPct: 5}}

		surcharge := config.SurchargeFor(system)

		assert.Equal(t, 50, surcharge.StepMm)
		assert.Equal(t, 5, surcharge.PerStepPct)
	})
}
