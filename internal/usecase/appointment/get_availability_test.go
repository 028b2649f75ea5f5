package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-demo/internal/clock"
	domain "github.com/BruksfildServices01/agenda-demo/internal/domain/appointment"
)

func newAvailability(rules domain.Rules) *GetAvailability {
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	return NewGetAvailability(rules, clock.NewFixed(now))
}

func TestGetAvailability_DefaultServiceMatchesFisico(t *testing.T) {
	uc := newAvailability(domain.Rules{StartHour: 9, EndHour: 18, SessionMinutes: 60})

	empty, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)

	fisico, err := uc.Execute(context.Background(), "fisico")
	require.NoError(t, err)

	assert.Equal(t, fisico, empty)
	assert.Len(t, fisico, 80)
	assert.Equal(t, "2026-10-19T09:00:00", fisico[0])
}

func TestGetAvailability_Consultation(t *testing.T) {
	uc := newAvailability(domain.Rules{StartHour: 9, EndHour: 18, SessionMinutes: 60})

	slots, err := uc.Execute(context.Background(), "consulta")
	require.NoError(t, err)

	require.Len(t, slots, 240)
	assert.Equal(t, []string{"2026-10-19T09:00:00", "2026-10-19T09:20:00"}, slots[:2])
}

func TestGetAvailability_MisconfiguredIsEmpty(t *testing.T) {
	uc := newAvailability(domain.Rules{StartHour: 9, EndHour: 18, SessionMinutes: 0})

	slots, err := uc.Execute(context.Background(), "fisico")
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetAvailability_CancelledContext(t *testing.T) {
	uc := newAvailability(domain.Rules{StartHour: 9, EndHour: 18, SessionMinutes: 60})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, "fisico")
	assert.ErrorIs(t, err, context.Canceled)
}
