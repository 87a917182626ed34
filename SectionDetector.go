package main

import (
	"sort"
	"strings"

	"github.com/muntyanw/customer-portal/contracts"
)

// SectionDetectorOptions tune the heading heuristics for one worksheet.
// TitleWord is the default predicate ("heading contains this word").
// TitlePrefix, when set, additionally requires the heading's first four
// characters to match the prefix's first four; it guards legacy sheets
// against headings copy-pasted from another worksheet.
type SectionDetectorOptions struct {
	ScanCols       int
	MinMergedWidth int
	TitleWord      string
	TitlePrefix    string
}

type SectionDetector struct {
}

func NewSectionDetector() *SectionDetector {
	return &SectionDetector{}
}

type sectionAnchor struct {
	title string
	row   int
	col   int
}

// FindSections scans a worksheet for heading rows that start an independent
// price sub-table. An empty result is not an error; only resolving a
// specific requested title against it can fail.
func (d *SectionDetector) FindSections(grid *contracts.Grid, opts SectionDetectorOptions) []contracts.Section {
	if opts.ScanCols <= 0 {
		opts.ScanCols = DefaultScanCols
	}
	if opts.MinMergedWidth <= 0 {
		opts.MinMergedWidth = DefaultMinMergedWidth
	}
	if opts.TitleWord == "" {
		opts.TitleWord = DefaultTitleWord
	}

	anchors := make([]sectionAnchor, 0)

	// Merge-only styled headings: a single-row merged range wide enough is a
	// heading regardless of its text.
	for _, merged := range grid.Merges {
		if !merged.SingleRow() || merged.Width() < opts.MinMergedWidth {
			continue
		}
		title := strings.TrimSpace(grid.Cell(merged.MinRow, merged.MinCol))
		if title == "" {
			continue
		}
		anchors = append(anchors, sectionAnchor{title: title, row: merged.MinRow, col: merged.MinCol})
	}

	for row := 1; row <= grid.MaxRow(); row++ {
		for col := 1; col <= opts.ScanCols; col++ {
			title := strings.TrimSpace(grid.Cell(row, col))
			if title == "" {
				continue
			}
			if !d.matchesTitle(title, opts) {
				continue
			}
			anchors = append(anchors, sectionAnchor{title: title, row: row, col: col})
			break // a row contributes at most one anchor
		}
	}

	sort.SliceStable(anchors, func(i, j int) bool {
		if anchors[i].row != anchors[j].row {
			return anchors[i].row < anchors[j].row
		}
		return anchors[i].col < anchors[j].col
	})

	sections := make([]contracts.Section, 0, len(anchors))
	for _, anchor := range anchors {
		if n := len(sections); n > 0 {
			last := sections[n-1]
			if last.AnchorRow == anchor.row && last.AnchorCol == anchor.col {
				continue
			}
			if last.AnchorRow == anchor.row {
				continue // first matching column per row wins
			}
		}
		sections = append(sections, contracts.Section{
			Title:     anchor.title,
			AnchorRow: anchor.row,
			AnchorCol: anchor.col,
			StartRow:  anchor.row,
		})
	}

	for i := range sections {
		if i+1 < len(sections) {
			sections[i].EndRow = sections[i+1].AnchorRow - 1
		} else {
			sections[i].EndRow = grid.MaxRow()
		}
	}

	return sections
}

func (d *SectionDetector) matchesTitle(title string, opts SectionDetectorOptions) bool {
	folded := strings.ToLower(title)

	if !strings.Contains(folded, strings.ToLower(opts.TitleWord)) {
		return false
	}

	if opts.TitlePrefix != "" {
		prefix := []rune(strings.ToLower(strings.TrimSpace(opts.TitlePrefix)))
		if len(prefix) > 4 {
			prefix = prefix[:4]
		}
		titleRunes := []rune(folded)
		if len(titleRunes) < len(prefix) {
			return false
		}
		if string(titleRunes[:len(prefix)]) != string(prefix) {
			return false
		}
	}

	return true
}
