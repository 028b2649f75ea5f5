package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-demo/internal/clock"
	"github.com/BruksfildServices01/agenda-demo/internal/config"
	domain "github.com/BruksfildServices01/agenda-demo/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-demo/internal/handlers"
	"github.com/BruksfildServices01/agenda-demo/internal/metrics"
	"github.com/BruksfildServices01/agenda-demo/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/agenda-demo/internal/usecase/appointment"
	"github.com/BruksfildServices01/agenda-demo/internal/web"
)

type Deps struct {
	Logger  *zap.Logger
	Metrics *metrics.Collector
	Clock   clock.Clock
	Booker  domain.Booker
}

// NewRouter builds the engine with the global middleware and every route.
func NewRouter(cfg *config.Config, deps Deps) (*gin.Engine, error) {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.Recovery(deps.Logger),
		middleware.CORSMiddleware(cfg.CORS),
	)

	if err := RegisterRoutes(r, cfg, deps); err != nil {
		return nil, err
	}

	return r, nil
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) error {

	// ======================================================
	// 🔧 USE CASES
	// ======================================================
	rules := domain.Rules{
		StartHour:      cfg.Schedule.StartHour,
		EndHour:        cfg.Schedule.EndHour,
		SessionMinutes: cfg.Schedule.SessionMinutes,
	}

	getAvailabilityUC := ucAppointment.NewGetAvailability(rules, deps.Clock)
	confirmBookingUC := ucAppointment.NewConfirmBooking(deps.Booker)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		getAvailabilityUC,
		confirmBookingUC,
		deps.Metrics,
		deps.Logger,
	)
	publicWebHandler := handlers.NewPublicWebHandler(cfg.Landing)

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static())

	r.GET("/", publicWebHandler.ShowLandingES)
	r.GET("/en", publicWebHandler.ShowLandingEN)
	r.GET("/en/", publicWebHandler.ShowLandingEN)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/disponibilidad", publicHandler.Availability)
		api.POST("/agendar", publicHandler.Book)
	}

	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	r.NoRoute(handlers.NotFound)

	return nil
}
