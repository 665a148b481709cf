package delivery_test

import (
	"testing"
	"time"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	t.Run("creates delivery with valid fields", func(t *testing.T) {
		id := kernel.NewUUID()
		shipmentID := kernel.NewUUID()
		when := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

		d, err := delivery.NewDelivery(id, shipmentID, &when, "Customer at LA", delivery.Delivered)

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, when, *d.ActualDeliveryDate())
		assert.Equal(t, "Customer at LA", d.Recipient())
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("rejects missing shipment reference", func(t *testing.T) {
		var zero kernel.UUID
		_, err := delivery.NewDelivery(kernel.NewUUID(), zero, nil, "Customer", delivery.Pending)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty recipient", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), nil, "", delivery.Pending)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), nil, "Customer", delivery.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryValidate(t *testing.T) {
	var d delivery.Delivery
	require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
}

func TestDeliveryApplyUpdate(t *testing.T) {
	t.Run("replaces mutable fields", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), nil, "Customer", delivery.Pending)
		require.NoError(t, err)
		when := time.Now().UTC()

		require.NoError(t, d.ApplyUpdate(&when, "Warehouse B", delivery.Failed))

		assert.Equal(t, "Warehouse B", d.Recipient())
		assert.Equal(t, delivery.Failed, d.Status())
		assert.Equal(t, when, *d.ActualDeliveryDate())
	})

	t.Run("rejects invalid update and keeps state", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), nil, "Customer", delivery.Pending)
		require.NoError(t, err)

		require.Error(t, d.ApplyUpdate(nil, "", delivery.Delivered))

		assert.Equal(t, "Customer", d.Recipient())
		assert.Equal(t, delivery.Pending, d.Status())
	})
}

func TestDeliveryStatus(t *testing.T) {
	t.Run("string round trip", func(t *testing.T) {
		for _, name := range []string{"Pending", "Delivered", "Failed"} {
			s, err := delivery.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("parse rejects unknown names", func(t *testing.T) {
		_, err := delivery.StatusFromString("Lost")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
