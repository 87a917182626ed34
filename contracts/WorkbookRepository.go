package contracts

import "errors"

// WorkbookRepository owns the fetch/cache of the published price workbook and
// hands out one immutable Grid per call. Retry/backoff and staleness policy
// live entirely behind this interface; the core never interprets them.
type WorkbookRepository interface {
	ListSheets() ([]string, error)
	GetGrid(sheetName string) (*Grid, error)
}

var SheetNotFoundError = errors.New("sheet not found")

var WorkbookUnavailableError = errors.New("workbook is unavailable and no cached copy exists")
