package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-demo/internal/httperr"
	"github.com/BruksfildServices01/agenda-demo/internal/httpresp"
)

func Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}

func NotFound(c *gin.Context) {
	httperr.NotFound(c, "not_found", "Recurso no encontrado.")
}
