package contracts

type PriceCatalog interface {
	ListSystems() ([]string, error)
	ListSections(system string) ([]Section, error)
	GetSectionTable(system string, sectionTitle string) (*SectionTable, error)
	Preview(request *PreviewRequest) (*PricePreviewResult, error)
}
