package contracts

// WidthUnit names a way of measuring the finished product's width. The price
// table of every system is indexed by exactly one canonical unit; customers
// may measure in one alternate unit.
type WidthUnit string

const (
	WidthUnitFabric  WidthUnit = "fabric"
	WidthUnitGabarit WidthUnit = "gabarit"
	WidthUnitShtapik WidthUnit = "shtapik"
)

// WidthRule converts an entered width into the canonical unit:
// canonical = entered + AlternateOffsetMm when the caller entered the
// alternate unit, identity otherwise. Static configuration, never mutated.
type WidthRule struct {
	Canonical         WidthUnit `json:"canonical"`
	Alternate         WidthUnit `json:"alternate"`
	AlternateOffsetMm int       `json:"alternate_offset_mm"`
}
