package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/agenda-demo/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-demo/internal/dto"
	"github.com/BruksfildServices01/agenda-demo/internal/httperr"
	"github.com/BruksfildServices01/agenda-demo/internal/httpresp"
	"github.com/BruksfildServices01/agenda-demo/internal/metrics"
	"github.com/BruksfildServices01/agenda-demo/internal/usecase/appointment"
)

// maxBookingBody caps how much of the (ignored) booking payload is read.
const maxBookingBody = 64 << 10

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availability *appointment.GetAvailability
	booking      *appointment.ConfirmBooking
	metrics      *metrics.Collector
	log          *zap.Logger
}

func NewPublicHandler(
	availability *appointment.GetAvailability,
	booking *appointment.ConfirmBooking,
	m *metrics.Collector,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		booking:      booking,
		metrics:      m,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	service := c.Query("servicio")

	slots, err := h.availability.Execute(c.Request.Context(), service)
	if err != nil {
		h.log.Warn("availability failed",
			zap.String("servicio", service),
			zap.Error(err),
		)
		httperr.Internal(c, "availability_failed", "Error al calcular los turnos.")
		return
	}

	h.metrics.SlotsReturned.
		WithLabelValues(serviceLabel(service)).
		Observe(float64(len(slots)))

	httpresp.OK(c, dto.AvailabilityResponse{Slots: slots})
}

// serviceLabel keeps the metric label set bounded.
func serviceLabel(raw string) string {
	switch svc := domain.ParseServiceType(raw); svc {
	case domain.ServicePhysical, domain.ServiceConsultation:
		return string(svc)
	default:
		return "otro"
	}
}

////////////////////////////////////////////////////////
// BOOKING (DEMO)
////////////////////////////////////////////////////////

func (h *PublicHandler) Book(c *gin.Context) {
	var payload []byte
	if c.Request.Body != nil {
		// payload é ignorado na demo; erro de leitura não muda a resposta
		payload, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxBookingBody))
	}

	conf, err := h.booking.Execute(c.Request.Context(), payload)
	if err != nil {
		h.metrics.BookingsTotal.WithLabelValues("error").Inc()
		h.log.Error("booking failed", zap.Error(err))
		httperr.Internal(c, httperr.CodeOf(err, "booking_failed"), "No se pudo confirmar el turno.")
		return
	}

	h.metrics.BookingsTotal.WithLabelValues(conf.Status).Inc()

	c.JSON(http.StatusOK, dto.BookingResponse{
		Status:  conf.Status,
		Message: conf.Message,
	})
}
