package cargo_test

import (
	"testing"

	"supplychain/internal/core/domain/model/cargo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCargo(t *testing.T) {
	t.Run("creates cargo with valid fields", func(t *testing.T) {
		shipmentID := kernel.NewUUID()
		weight := 120.5
		c, err := cargo.NewCargo(kernel.NewUUID(), shipmentID, "Electronics", "TVs", nil, &weight, "kg")

		require.NoError(t, err)
		assert.True(t, c.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, "Electronics", c.CargoType())
		assert.Equal(t, weight, *c.Weight())
		assert.Equal(t, "kg", c.WeightUnit())
	})

	t.Run("accepts cargo with only a shipment reference", func(t *testing.T) {
		_, err := cargo.NewCargo(kernel.NewUUID(), kernel.NewUUID(), "", "", nil, nil, "")
		require.NoError(t, err)
	})

	t.Run("rejects missing shipment reference", func(t *testing.T) {
		var zero kernel.UUID
		_, err := cargo.NewCargo(kernel.NewUUID(), zero, "Electronics", "", nil, nil, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCargoApplyUpdate(t *testing.T) {
	c, err := cargo.NewCargo(kernel.NewUUID(), kernel.NewUUID(), "Electronics", "TVs", nil, nil, "")
	require.NoError(t, err)

	value := 9999.0
	c.ApplyUpdate("Furniture", "Chairs", &value, nil, "")

	assert.Equal(t, "Furniture", c.CargoType())
	assert.Equal(t, value, *c.Value())
}
