package booking

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-demo/internal/domain/appointment"
)

// DemoBooker is the permanent demo-mode collaborator: nothing is stored,
// no calendar or payment provider is contacted.
type DemoBooker struct{}

func NewDemoBooker() *DemoBooker {
	return &DemoBooker{}
}

func (b *DemoBooker) Book(
	_ context.Context,
	_ domain.BookingRequest,
) (domain.Confirmation, error) {
	return domain.Confirmation{
		Status:  domain.StatusDemo,
		Message: domain.DemoMessage,
	}, nil
}

var _ domain.Booker = (*DemoBooker)(nil)
