package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Page(c *gin.Context, name string, data any) {
	c.HTML(http.StatusOK, name, data)
}
