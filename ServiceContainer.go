package main

import (
	"github.com/gin-gonic/gin"
	"github.com/muntyanw/customer-portal/contracts"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Config             *Config
	Database           *bbolt.DB
	WorkbookRepository contracts.WorkbookRepository
	PriceCatalog       contracts.PriceCatalog
	ApiController      contracts.ApiController
	Router             *gin.Engine
}

func BuildServiceContainer(cacheDbPath string, priceSheetUrl string) (container ServiceContainer, err error) {
	container.Config, err = LoadConfig()
	if err != nil {
		return
	}

	container.Database, err = bbolt.Open(cacheDbPath, 0600, nil)
	if err != nil {
		return
	}

	container.WorkbookRepository, err = NewWorkbookRepository(container.Database, priceSheetUrl)
	if err != nil {
		return
	}

	rules := NewWidthRuleSet(container.Config)
	container.PriceCatalog = NewPriceCatalog(
		container.WorkbookRepository,
		NewSectionDetector(),
		NewPriceTableExtractor(container.Config),
		NewPriceCalculator(rules, container.Config),
		container.Config,
	)
	container.ApiController = NewApiController(container.PriceCatalog)

	container.Router = SetupRouter(container.ApiController)

	return
}
