package main

import (
	"fmt"
	"strings"

	"github.com/muntyanw/customer-portal/contracts"
)

// headerKeywords mark a header block start: a row mentioning fabric, height
// and gabarit at once (case-insensitive) opens a new (header, bands, fabrics)
// triple inside the section.
var headerKeywords = []string{"тканина", "висота", "габарит"}

const widthKeyword = "ширина"

type PriceTableExtractor struct {
	config *Config
}

func NewPriceTableExtractor(config *Config) *PriceTableExtractor {
	return &PriceTableExtractor{config: config}
}

// ExtractSection assembles the unified width-band list and fabric price
// matrix of one section, merging all header blocks in top-to-bottom order,
// plus the sheet's configured side-channel extras.
func (e *PriceTableExtractor) ExtractSection(grid *contracts.Grid, sheetName string, section contracts.Section) (*contracts.SectionTable, error) {
	headerRows := e.findHeaderRows(grid, section)
	if len(headerRows) == 0 {
		return nil, fmt.Errorf("%s / %s: %w", sheetName, section.Title, contracts.HeaderBlockNotFoundError)
	}

	table := &contracts.SectionTable{
		Section:    section,
		WidthBands: make([]string, 0),
		Fabrics:    make([]*contracts.FabricRow, 0),
	}
	fabricIndex := make(map[string]*contracts.FabricRow)

	for blockNo, headerRow := range headerRows {
		blockEnd := section.EndRow
		if blockNo+1 < len(headerRows) {
			blockEnd = headerRows[blockNo+1] - 1
		}

		// Bands of this block start at the width column; price cells of every
		// fabric row below are read from the same columns, which keeps
		// prices positionally aligned with the merged band list.
		bandOffset := len(table.WidthBands)
		bandRow := headerRow + 1
		bandCols := make([]int, 0)
		widthCol := e.findWidthColumn(grid, headerRow)
		for col := widthCol; col <= e.rowWidth(grid, bandRow); col++ {
			label := strings.TrimSpace(grid.Cell(bandRow, col))
			if label == "" {
				continue
			}
			bandCols = append(bandCols, col)
			table.WidthBands = append(table.WidthBands, label)
		}

		for row := headerRow + 2; row <= blockEnd; row++ {
			if grid.RowEmpty(row) {
				break
			}
			name := strings.TrimSpace(grid.Cell(row, 1))
			if name == "" {
				continue
			}

			key := strings.ToLower(name)
			fabric, seen := fabricIndex[key]
			if !seen {
				fabric = &contracts.FabricRow{Name: name}
				fabricIndex[key] = fabric
				table.Fabrics = append(table.Fabrics, fabric)
			}

			rollHeight := ToMillimeters(grid.Cell(row, 2))
			gabaritLimit := ToMillimeters(grid.Cell(row, 3))
			if fabric.RollHeightMm == nil {
				fabric.RollHeightMm = rollHeight
			}
			if fabric.GabaritLimitMm == nil {
				fabric.GabaritLimitMm = gabaritLimit
			}

			for len(fabric.PricesByBand) < bandOffset {
				fabric.PricesByBand = append(fabric.PricesByBand, nil)
			}
			for _, col := range bandCols {
				fabric.PricesByBand = append(fabric.PricesByBand, ToDecimal(grid.Cell(row, col)))
			}
		}
	}

	for _, fabric := range table.Fabrics {
		for len(fabric.PricesByBand) < len(table.WidthBands) {
			fabric.PricesByBand = append(fabric.PricesByBand, nil)
		}
	}

	table.Extras = e.readExtras(grid, sheetName, headerRows[0])

	return table, nil
}

func (e *PriceTableExtractor) findHeaderRows(grid *contracts.Grid, section contracts.Section) []int {
	rows := make([]int, 0)
	for row := section.StartRow; row <= section.EndRow && row <= grid.MaxRow(); row++ {
		folded := strings.ToLower(grid.RowText(row))
		matched := true
		for _, keyword := range headerKeywords {
			if !strings.Contains(folded, keyword) {
				matched = false
				break
			}
		}
		if matched {
			rows = append(rows, row)
		}
	}
	return rows
}

func (e *PriceTableExtractor) findWidthColumn(grid *contracts.Grid, headerRow int) int {
	for col := 1; col <= e.rowWidth(grid, headerRow); col++ {
		if strings.Contains(strings.ToLower(grid.Cell(headerRow, col)), widthKeyword) {
			return col
		}
	}
	return e.config.Detector.DefaultWidthCol
}

func (e *PriceTableExtractor) rowWidth(grid *contracts.Grid, row int) int {
	if row < 1 || row > grid.MaxRow() {
		return 0
	}
	return len(grid.Rows[row-1])
}

// readExtras interprets the declarative per-sheet extras table: each entry is
// one cell read at a fixed offset from the section's first header row.
// Sheets without configuration simply have no extras.
func (e *PriceTableExtractor) readExtras(grid *contracts.Grid, sheetName string, firstHeaderRow int) map[string]contracts.ExtraValue {
	extras := make(map[string]contracts.ExtraValue)

	system, known := e.config.System(sheetName)
	if !known {
		return extras
	}

	for _, field := range system.Extras {
		raw := grid.Cell(firstHeaderRow+field.RowOffset, field.Col)
		switch field.Kind {
		case "money":
			if d := ToDecimal(raw); d != nil {
				money := RoundMoney(*d)
				extras[field.Field] = contracts.ExtraValue{Money: &money}
			}
		case "text":
			if text := strings.TrimSpace(raw); text != "" {
				extras[field.Field] = contracts.ExtraValue{Text: text}
			}
		}
	}

	return extras
}
