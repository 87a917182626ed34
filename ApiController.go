package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muntyanw/customer-portal/contracts"
)

type ApiController struct {
	PriceCatalog contracts.PriceCatalog
}

type SystemEndpointParams struct {
	System string `uri:"system" binding:"required"`
}

type FabricsEndpointQuery struct {
	Section string `form:"section" binding:"required"`
}

func NewApiController(priceCatalog contracts.PriceCatalog) *ApiController {
	return &ApiController{PriceCatalog: priceCatalog}
}

func (api *ApiController) SystemsAction(c *gin.Context) {
	systems, err := api.PriceCatalog.ListSystems()

	if err != nil {
		renderError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"systems": systems})
	}
}

func (api *ApiController) SectionsAction(c *gin.Context) {
	params := SystemEndpointParams{}
	var sections []contracts.Section

	err := c.ShouldBindUri(&params)

	if err == nil {
		sections, err = api.PriceCatalog.ListSections(params.System)
	}

	if err != nil {
		renderError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"system": params.System, "sections": sections})
	}
}

func (api *ApiController) FabricsAction(c *gin.Context) {
	params := SystemEndpointParams{}
	query := FabricsEndpointQuery{}
	var table *contracts.SectionTable

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindQuery(&query)
	}

	if err == nil {
		table, err = api.PriceCatalog.GetSectionTable(params.System, query.Section)
	}

	if err != nil {
		renderError(c, err)
	} else {
		c.JSON(http.StatusOK, table)
	}
}

func (api *ApiController) PreviewAction(c *gin.Context) {
	request := contracts.PreviewRequest{}
	var result *contracts.PricePreviewResult

	err := c.ShouldBindJSON(&request)

	if err == nil && (request.WidthMm <= 0 || request.GabaritHeightMm <= 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width_mm and gabarit_height_mm must be positive"})
		return
	}

	if err == nil {
		result, err = api.PriceCatalog.Preview(&request)
	}

	if err != nil {
		renderError(c, err)
	} else {
		c.JSON(http.StatusOK, result)
	}
}

// renderError maps the domain error taxonomy onto HTTP statuses: missing
// things are 404, quotable-but-unpriceable requests are 422, an unreachable
// workbook with a cold cache is 502.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, contracts.SheetNotFoundError),
		errors.Is(err, contracts.SectionNotFoundError),
		errors.Is(err, contracts.FabricNotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, contracts.WidthOutOfRangeError),
		errors.Is(err, contracts.PriceUnavailableError),
		errors.Is(err, contracts.HeaderBlockNotFoundError):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, contracts.WorkbookUnavailableError):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
