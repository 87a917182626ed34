package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/muntyanw/customer-portal/contracts"
	"github.com/shopspring/decimal"
)

// PriceCalculator turns an extracted section table and a configuration
// request into an itemized quote. It performs no I/O; everything it needs
// arrives as arguments, so it is safe to call concurrently.
type PriceCalculator struct {
	rules  *WidthRuleSet
	config *Config
}

func NewPriceCalculator(rules *WidthRuleSet, config *Config) *PriceCalculator {
	return &PriceCalculator{rules: rules, config: config}
}

// Band labels come in two shapes: "До 400мм" (up to N) and "401–450"
// (inclusive range, en dash, em dash or hyphen).
var upToBandRegex = regexp.MustCompile(`^до(\d+)$`)
var rangeBandRegex = regexp.MustCompile(`^(\d+)[–—-](\d+)$`)

// PickWidthBand returns the index of the first band whose textual range
// contains widthMm, or -1 when the width is outside every band.
func PickWidthBand(widthBands []string, widthMm int) int {
	for i, band := range widthBands {
		normalized := strings.ToLower(band)
		normalized = separatorRegex.ReplaceAllString(normalized, "")
		normalized = strings.ReplaceAll(normalized, "мм", "")

		if m := upToBandRegex.FindStringSubmatch(normalized); m != nil {
			limit, err := strconv.Atoi(m[1])
			if err == nil && widthMm <= limit {
				return i
			}
			continue
		}

		if m := rangeBandRegex.FindStringSubmatch(normalized); m != nil {
			lo, loErr := strconv.Atoi(m[1])
			hi, hiErr := strconv.Atoi(m[2])
			if loErr == nil && hiErr == nil && lo <= widthMm && widthMm <= hi {
				return i
			}
		}
	}
	return -1
}

func (p *PriceCalculator) Preview(table *contracts.SectionTable, request *contracts.PreviewRequest) (*contracts.PricePreviewResult, error) {
	canonicalWidth, usedDefaultRule := p.rules.ToCanonicalWidth(request.System, request.WidthMm, request.AlternateWidthUnit)

	bandIndex := PickWidthBand(table.WidthBands, canonicalWidth)
	if bandIndex < 0 {
		return nil, fmt.Errorf("system %q section %q width %dmm (canonical %dmm): %w",
			request.System, request.SectionTitle, request.WidthMm, canonicalWidth, contracts.WidthOutOfRangeError)
	}

	fabric := findFabric(table.Fabrics, request.FabricName)
	if fabric == nil {
		return nil, fmt.Errorf("system %q section %q fabric %q: %w",
			request.System, request.SectionTitle, request.FabricName, contracts.FabricNotFoundError)
	}

	basePrice := fabric.PricesByBand[bandIndex]
	if basePrice == nil {
		return nil, fmt.Errorf("system %q section %q fabric %q band %q: %w",
			request.System, request.SectionTitle, fabric.Name, table.WidthBands[bandIndex], contracts.PriceUnavailableError)
	}
	base := RoundMoney(*basePrice)

	systemConfig, _ := p.config.System(request.System)
	surchargeConfig := p.config.SurchargeFor(systemConfig)

	gabaritLimit := 0
	if fabric.GabaritLimitMm != nil {
		gabaritLimit = *fabric.GabaritLimitMm
	}

	surcharge := decimal.Zero.Round(2)
	if request.GabaritHeightMm > gabaritLimit {
		over := request.GabaritHeightMm - gabaritLimit
		steps := (over + surchargeConfig.StepMm - 1) / surchargeConfig.StepMm
		rate := decimal.NewFromInt(int64(surchargeConfig.PerStepPct)).Div(decimal.NewFromInt(100))
		surcharge = RoundMoney(base.Mul(rate).Mul(decimal.NewFromInt(int64(steps))))
	}

	accessoryTotals, accessoriesSum, err := p.accessoryTotals(table, request)
	if err != nil {
		return nil, err
	}

	subtotal := RoundMoney(base.Add(surcharge).Add(accessoriesSum))

	result := &contracts.PricePreviewResult{
		System:             request.System,
		SectionTitle:       request.SectionTitle,
		FabricName:         fabric.Name,
		WidthMmInput:       request.WidthMm,
		WidthMmCanonical:   canonicalWidth,
		UsedDefaultRule:    usedDefaultRule,
		BandIndex:          bandIndex,
		BandLabel:          table.WidthBands[bandIndex],
		RollHeightMm:       fabric.RollHeightMm,
		GabaritLimitMm:     gabaritLimit,
		BasePriceEur:       base,
		SurchargeHeightEur: surcharge,
		AccessoryTotalsEur: accessoryTotals,
		SubtotalEur:        subtotal,
		ExceedsGuarantee:   exceedsGuarantee(systemConfig.Limits, canonicalWidth, request.GabaritHeightMm),
	}

	if request.EurRate != nil {
		uah := RoundUahTotal(subtotal.Mul(*request.EurRate))
		result.SubtotalUah = &uah
	}

	return result, nil
}

// accessoryTotals prices each selected accessory line: unit price comes from
// the request override or the section extras, rounded HALF_UP per line
// before summation. Per-line rounding is load-bearing for reconciliation
// with manually issued invoices.
func (p *PriceCalculator) accessoryTotals(table *contracts.SectionTable, request *contracts.PreviewRequest) (map[string]decimal.Decimal, decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal, len(request.Accessories))
	sum := decimal.Zero

	for _, selection := range request.Accessories {
		if selection.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("accessory %q: quantity must be positive", selection.Name)
		}

		unitPrice := selection.UnitPriceEur
		if unitPrice == nil {
			if extra, ok := table.Extras[selection.Name]; ok && extra.Money != nil {
				unitPrice = extra.Money
			}
		}
		if unitPrice == nil {
			return nil, decimal.Zero, fmt.Errorf("accessory %q has no unit price: %w", selection.Name, contracts.PriceUnavailableError)
		}

		line := RoundMoney(unitPrice.Mul(decimal.NewFromInt(int64(selection.Quantity))))
		totals[selection.Name] = line
		sum = sum.Add(line)
	}

	return totals, sum, nil
}

func findFabric(fabrics []*contracts.FabricRow, name string) *contracts.FabricRow {
	wanted := strings.ToLower(strings.TrimSpace(name))
	for _, fabric := range fabrics {
		if strings.ToLower(strings.TrimSpace(fabric.Name)) == wanted {
			return fabric
		}
	}
	return nil
}

func exceedsGuarantee(limits LimitsConfig, canonicalWidthMm int, heightMm int) bool {
	if limits.MaxWidthMm != nil && canonicalWidthMm > *limits.MaxWidthMm {
		return true
	}
	if limits.MaxHeightMm != nil && heightMm > *limits.MaxHeightMm {
		return true
	}
	return false
}
