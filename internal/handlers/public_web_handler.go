package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-demo/internal/config"
	"github.com/BruksfildServices01/agenda-demo/internal/dto"
	"github.com/BruksfildServices01/agenda-demo/internal/httpresp"
	"github.com/BruksfildServices01/agenda-demo/internal/web"
)

type PublicWebHandler struct {
	landing config.LandingConfig
}

func NewPublicWebHandler(landing config.LandingConfig) *PublicWebHandler {
	return &PublicWebHandler{landing: landing}
}

// ShowLandingES is the original es-AR landing page.
func (h *PublicWebHandler) ShowLandingES(c *gin.Context) {
	httpresp.Page(c, web.PageES, dto.LandingPage{
		Nombre:       h.landing.ES.Name,
		Especialidad: h.landing.ES.Specialty,
		Lang:         "es-AR",
	})
}

// ShowLandingEN is the en-US landing page for the US market.
func (h *PublicWebHandler) ShowLandingEN(c *gin.Context) {
	httpresp.Page(c, web.PageEN, dto.LandingPage{
		Nombre:       h.landing.EN.Name,
		Especialidad: h.landing.EN.Specialty,
		Lang:         "en-US",
	})
}
