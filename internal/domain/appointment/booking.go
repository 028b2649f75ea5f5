package appointment

import "context"

const (
	StatusDemo  = "demo"
	DemoMessage = "Simulación completada. Mostrar modal de venta."
)

type BookingRequest struct {
	// Raw is the untouched request body. The demo never reads it.
	Raw []byte
}

type Confirmation struct {
	Status  string
	Message string
}

// Booker confirms a booking against whatever calendar/payment backend is wired.
type Booker interface {
	Book(ctx context.Context, req BookingRequest) (Confirmation, error)
}
