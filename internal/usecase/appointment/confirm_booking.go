package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-demo/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-demo/internal/httperr"
)

type ConfirmBooking struct {
	booker domain.Booker
}

func NewConfirmBooking(booker domain.Booker) *ConfirmBooking {
	return &ConfirmBooking{booker: booker}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	payload []byte,
) (domain.Confirmation, error) {

	conf, err := uc.booker.Book(ctx, domain.BookingRequest{Raw: payload})
	if err != nil {
		return domain.Confirmation{}, err
	}

	if conf.Status == "" {
		return domain.Confirmation{}, httperr.ErrBusiness("empty_confirmation")
	}

	return conf, nil
}
