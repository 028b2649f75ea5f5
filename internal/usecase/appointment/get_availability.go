package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-demo/internal/clock"
	domain "github.com/BruksfildServices01/agenda-demo/internal/domain/appointment"
)

type GetAvailability struct {
	rules domain.Rules
	clock clock.Clock
}

func NewGetAvailability(rules domain.Rules, clk clock.Clock) *GetAvailability {
	return &GetAvailability{
		rules: rules,
		clock: clk,
	}
}

// Execute recomputa os slots a cada chamada, relativo ao "agora" do clock.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	service string,
) ([]string, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	svc := domain.ParseServiceType(service)
	slots := domain.GenerateSlots(uc.clock.Now(), uc.rules, svc)

	return domain.SlotStrings(slots), nil
}
