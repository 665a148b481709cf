package route_test

import (
	"testing"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/route"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("creates route with valid fields", func(t *testing.T) {
		distance := 4500.0
		r, err := route.NewRoute(kernel.NewUUID(), "Shanghai", "Rotterdam", 30, route.StatusActive, &distance, "Sea", nil)

		require.NoError(t, err)
		assert.Equal(t, "Shanghai", r.OriginPort())
		assert.Equal(t, "Rotterdam", r.DestinationPort())
		assert.Equal(t, 30, r.Duration())
		assert.Equal(t, route.StatusActive, r.Status())
		assert.Equal(t, distance, *r.Distance())
		assert.Nil(t, r.Cost())
	})

	t.Run("rejects missing ports", func(t *testing.T) {
		_, err := route.NewRoute(kernel.NewUUID(), "", "Rotterdam", 30, route.StatusActive, nil, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		_, err := route.NewRoute(kernel.NewUUID(), "Shanghai", "Rotterdam", 0, route.StatusActive, nil, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRouteApplyUpdate(t *testing.T) {
	r, err := route.NewRoute(kernel.NewUUID(), "Shanghai", "Rotterdam", 30, route.StatusActive, nil, "Sea", nil)
	require.NoError(t, err)

	require.NoError(t, r.ApplyUpdate("Shanghai", "Hamburg", 32, route.StatusDelayed, nil, "Sea", nil))
	assert.Equal(t, "Hamburg", r.DestinationPort())
	assert.Equal(t, route.StatusDelayed, r.Status())

	require.Error(t, r.ApplyUpdate("", "Hamburg", 32, route.StatusDelayed, nil, "Sea", nil))
	assert.Equal(t, "Shanghai", r.OriginPort())
}

func TestRouteStatus(t *testing.T) {
	for _, name := range []string{"Active", "Delayed", "Closed"} {
		s, err := route.StatusFromString(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	_, err := route.StatusFromString("Sunk")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
