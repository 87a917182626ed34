package contracts

import "errors"

// Section is one independent price sub-table inside a worksheet, anchored at
// its heading cell. StartRow..EndRow is the inclusive row span of the
// section's content; EndRow stops right before the next section's anchor.
type Section struct {
	Title     string `json:"title"`
	AnchorRow int    `json:"row"`
	AnchorCol int    `json:"col"`
	StartRow  int    `json:"start_row"`
	EndRow    int    `json:"end_row"`
}

var SectionNotFoundError = errors.New("section not found")

var HeaderBlockNotFoundError = errors.New("no price table header found in section")
