package services_test

import (
	"testing"
	"time"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveredShipment(t *testing.T, eta *time.Time) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), "NYC", "LA", shipment.Delivered, eta, nil, nil)
	require.NoError(t, err)
	return s
}

func TestMaterializeDelivery(t *testing.T) {
	svc := services.NewDeliveryConsistencyService()

	t.Run("derives record from shipment with estimate", func(t *testing.T) {
		eta := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
		s := deliveredShipment(t, &eta)

		d, err := svc.MaterializeDelivery(kernel.NewUUID(), s, time.Now())

		require.NoError(t, err)
		assert.True(t, d.ShipmentID().IsEqual(s.ID()))
		assert.Equal(t, "Customer at LA", d.Recipient())
		assert.Equal(t, delivery.Delivered, d.Status())
		// Estimated delivery is date precision; the timestamp normalizes to midnight UTC.
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *d.ActualDeliveryDate())
	})

	t.Run("falls back to now without estimate", func(t *testing.T) {
		s := deliveredShipment(t, nil)
		now := time.Date(2024, 2, 1, 9, 45, 0, 0, time.UTC)

		d, err := svc.MaterializeDelivery(kernel.NewUUID(), s, now)

		require.NoError(t, err)
		assert.Equal(t, now, *d.ActualDeliveryDate())
	})

	t.Run("refuses non-delivered shipments", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), "NYC", "LA", shipment.InTransit, nil, nil, nil)
		require.NoError(t, err)

		_, err = svc.MaterializeDelivery(kernel.NewUUID(), s, time.Now())
		require.Error(t, err)
	})

	t.Run("refuses unconstructed shipment", func(t *testing.T) {
		var s shipment.Shipment
		_, err := svc.MaterializeDelivery(kernel.NewUUID(), &s, time.Now())
		require.ErrorIs(t, err, shipment.ErrShipmentIsNotConstructed)
	})
}

func TestSelectInconsistent(t *testing.T) {
	svc := services.NewDeliveryConsistencyService()

	newDelivery := func(t *testing.T, shipmentID kernel.UUID) *delivery.Delivery {
		t.Helper()
		d, err := delivery.NewDelivery(kernel.NewUUID(), shipmentID, nil, "Customer", delivery.Delivered)
		require.NoError(t, err)
		return d
	}

	deliveredID := kernel.NewUUID()
	flappedID := kernel.NewUUID()
	danglingID := kernel.NewUUID()

	deliveredS, err := shipment.NewShipment(deliveredID, "NYC", "LA", shipment.Delivered, nil, nil, nil)
	require.NoError(t, err)
	flappedS, err := shipment.NewShipment(flappedID, "NYC", "LA", shipment.InTransit, nil, nil, nil)
	require.NoError(t, err)

	shipments := map[kernel.UUID]*shipment.Shipment{
		deliveredID: deliveredS,
		flappedID:   flappedS,
	}

	keep := newDelivery(t, deliveredID)
	stale := newDelivery(t, flappedID)
	dangling := newDelivery(t, danglingID)

	inconsistent := svc.SelectInconsistent([]*delivery.Delivery{keep, stale, dangling}, shipments)

	assert.Len(t, inconsistent, 2)
	assert.Contains(t, inconsistent, stale)
	assert.Contains(t, inconsistent, dangling)
	assert.NotContains(t, inconsistent, keep)
}

func TestIsConsistent(t *testing.T) {
	svc := services.NewDeliveryConsistencyService()
	s := deliveredShipment(t, nil)
	d, err := delivery.NewDelivery(kernel.NewUUID(), s.ID(), nil, "Customer", delivery.Delivered)
	require.NoError(t, err)

	assert.True(t, svc.IsConsistent(d, s))
	assert.False(t, svc.IsConsistent(d, nil))
}
