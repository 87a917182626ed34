package contracts

import (
	"errors"

	"github.com/shopspring/decimal"
)

// FabricRow is one fabric inside a section. PricesByBand always has the same
// length as the section's WidthBands; a nil entry means the price list has no
// price for that fabric/band combination.
type FabricRow struct {
	Name           string             `json:"name"`
	RollHeightMm   *int               `json:"roll_height_mm"`
	GabaritLimitMm *int               `json:"gabarit_limit_mm"`
	PricesByBand   []*decimal.Decimal `json:"prices_by_band"`
}

// ExtraValue is one side-channel field read from fixed offsets near a
// section's header (accessory unit price or free-text note). Exactly one of
// Money / Text is set, depending on the configured kind.
type ExtraValue struct {
	Money *decimal.Decimal `json:"money,omitempty"`
	Text  string           `json:"text,omitempty"`
}

type SectionTable struct {
	Section    Section               `json:"section"`
	WidthBands []string              `json:"width_bands"`
	Fabrics    []*FabricRow          `json:"fabrics"`
	Extras     map[string]ExtraValue `json:"extras"`
}

var FabricNotFoundError = errors.New("fabric not found in this section")

var PriceUnavailableError = errors.New("no price for this fabric/band combination")

var WidthOutOfRangeError = errors.New("width outside priced range")
