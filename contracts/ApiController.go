package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	SystemsAction(c *gin.Context)
	SectionsAction(c *gin.Context)
	FabricsAction(c *gin.Context)
	PreviewAction(c *gin.Context)
}
