package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muntyanw/customer-portal/contracts"
)

const ApiVersion = "v1"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger())

	pricingRouterGroup := router.Group("/api/" + ApiVersion + "/pricing")
	pricingRouterGroup.GET("/systems", controller.SystemsAction)
	pricingRouterGroup.GET("/systems/:system/sections", controller.SectionsAction)
	pricingRouterGroup.GET("/systems/:system/fabrics", controller.FabricsAction)
	pricingRouterGroup.POST("/preview", controller.PreviewAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
