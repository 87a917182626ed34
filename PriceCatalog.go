package main

import (
	"fmt"
	"strings"

	"github.com/muntyanw/customer-portal/contracts"
)

// PriceCatalog wires the workbook snapshot, section detector, table
// extractor and calculator behind the request layer's interface. All methods
// work on one immutable grid per call; nothing here holds mutable state.
type PriceCatalog struct {
	workbooks  contracts.WorkbookRepository
	detector   *SectionDetector
	extractor  *PriceTableExtractor
	calculator *PriceCalculator
	config     *Config
}

func NewPriceCatalog(
	workbooks contracts.WorkbookRepository, detector *SectionDetector,
	extractor *PriceTableExtractor, calculator *PriceCalculator, config *Config,
) *PriceCatalog {
	return &PriceCatalog{
		workbooks:  workbooks,
		detector:   detector,
		extractor:  extractor,
		calculator: calculator,
		config:     config,
	}
}

func (p *PriceCatalog) ListSystems() ([]string, error) {
	sheets, err := p.workbooks.ListSheets()
	if err != nil {
		return nil, err
	}

	systems := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		system, _ := p.config.System(sheet)
		if system.Visible() {
			systems = append(systems, sheet)
		}
	}
	return systems, nil
}

func (p *PriceCatalog) ListSections(system string) ([]contracts.Section, error) {
	grid, err := p.workbooks.GetGrid(system)
	if err != nil {
		return nil, err
	}

	return p.detector.FindSections(grid, p.detectorOptions(system)), nil
}

func (p *PriceCatalog) GetSectionTable(system string, sectionTitle string) (*contracts.SectionTable, error) {
	grid, err := p.workbooks.GetGrid(system)
	if err != nil {
		return nil, err
	}

	sections := p.detector.FindSections(grid, p.detectorOptions(system))
	wanted := strings.ToLower(strings.TrimSpace(sectionTitle))

	for _, section := range sections {
		if strings.ToLower(strings.TrimSpace(section.Title)) == wanted {
			return p.extractor.ExtractSection(grid, system, section)
		}
	}

	return nil, fmt.Errorf("system %q section %q: %w", system, sectionTitle, contracts.SectionNotFoundError)
}

func (p *PriceCatalog) Preview(request *contracts.PreviewRequest) (*contracts.PricePreviewResult, error) {
	table, err := p.GetSectionTable(request.System, request.SectionTitle)
	if err != nil {
		return nil, err
	}

	return p.calculator.Preview(table, request)
}

func (p *PriceCatalog) detectorOptions(system string) SectionDetectorOptions {
	opts := SectionDetectorOptions{
		ScanCols:       p.config.Detector.ScanCols,
		MinMergedWidth: p.config.Detector.MinMergedWidth,
		TitleWord:      p.config.Detector.TitleWord,
	}

	if systemConfig, known := p.config.System(system); known && systemConfig.LegacyTitlePrefix {
		opts.TitlePrefix = system
	}

	return opts
}
