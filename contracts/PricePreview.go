package contracts

import "github.com/shopspring/decimal"

type AccessorySelection struct {
	Name         string           `json:"name" binding:"required"`
	Quantity     int              `json:"quantity" binding:"required"`
	UnitPriceEur *decimal.Decimal `json:"unit_price_eur,omitempty"`
}

type PreviewRequest struct {
	System             string               `json:"system" binding:"required"`
	SectionTitle       string               `json:"section_title" binding:"required"`
	FabricName         string               `json:"fabric_name" binding:"required"`
	WidthMm            int                  `json:"width_mm" binding:"required"`
	AlternateWidthUnit bool                 `json:"alternate_width_unit"`
	GabaritHeightMm    int                  `json:"gabarit_height_mm" binding:"required"`
	Accessories        []AccessorySelection `json:"accessories,omitempty"`
	EurRate            *decimal.Decimal     `json:"eur_rate,omitempty"`
}

// PricePreviewResult is the fully itemized quote. All money fields serialize
// as decimal strings; nothing here is ever persisted by the core.
type PricePreviewResult struct {
	System             string                     `json:"system"`
	SectionTitle       string                     `json:"section_title"`
	FabricName         string                     `json:"fabric_name"`
	WidthMmInput       int                        `json:"width_mm_input"`
	WidthMmCanonical   int                        `json:"width_mm_canonical"`
	UsedDefaultRule    bool                       `json:"used_default_rule"`
	BandIndex          int                        `json:"band_index"`
	BandLabel          string                     `json:"band_label"`
	RollHeightMm       *int                       `json:"roll_height_mm"`
	GabaritLimitMm     int                        `json:"gabarit_limit_mm"`
	BasePriceEur       decimal.Decimal            `json:"base_price_eur"`
	SurchargeHeightEur decimal.Decimal            `json:"surcharge_height_eur"`
	AccessoryTotalsEur map[string]decimal.Decimal `json:"accessory_totals_eur"`
	SubtotalEur        decimal.Decimal            `json:"subtotal_eur"`
	SubtotalUah        *decimal.Decimal           `json:"subtotal_uah,omitempty"`
	ExceedsGuarantee   bool                       `json:"exceeds_guarantee"`
}
