package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agenda-demo/internal/domain/appointment"
)

func TestDemoBooker_AlwaysConfirmsInDemoMode(t *testing.T) {
	b := NewDemoBooker()

	for _, raw := range [][]byte{nil, []byte(`{}`), []byte(`not json`)} {
		conf, err := b.Book(context.Background(), domain.BookingRequest{Raw: raw})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDemo, conf.Status)
		assert.Equal(t, domain.DemoMessage, conf.Message)
	}
}
