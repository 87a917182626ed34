package contracts

import "strings"

// MergedRange is a merged-cell rectangle. Coordinates are 1-based and inclusive.
type MergedRange struct {
	MinRow int `json:"min_row"`
	MinCol int `json:"min_col"`
	MaxRow int `json:"max_row"`
	MaxCol int `json:"max_col"`
}

func (m MergedRange) Width() int {
	return m.MaxCol - m.MinCol + 1
}

func (m MergedRange) SingleRow() bool {
	return m.MinRow == m.MaxRow
}

// Grid is an immutable snapshot of one worksheet: cell values plus merged
// ranges. It is built once by the workbook repository and never mutated.
type Grid struct {
	Rows   [][]string
	Merges []MergedRange
}

func (g *Grid) MaxRow() int {
	return len(g.Rows)
}

// Cell returns the value at 1-based (row, col), or "" outside the grid.
func (g *Grid) Cell(row int, col int) string {
	if row < 1 || row > len(g.Rows) || col < 1 {
		return ""
	}
	cells := g.Rows[row-1]
	if col > len(cells) {
		return ""
	}
	return cells[col-1]
}

// RowText joins all non-empty cells of a row with single spaces.
func (g *Grid) RowText(row int) string {
	if row < 1 || row > len(g.Rows) {
		return ""
	}
	parts := make([]string, 0, len(g.Rows[row-1]))
	for _, v := range g.Rows[row-1] {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, strings.TrimSpace(v))
		}
	}
	return strings.Join(parts, " ")
}

func (g *Grid) RowEmpty(row int) bool {
	if row < 1 || row > len(g.Rows) {
		return true
	}
	for _, v := range g.Rows[row-1] {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
