package commands_test

import (
	"fmt"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCleanupHandler(factory commands.ShipmentUoWFactory, publisher ports.EventPublisher) commands.CleanupDeliveriesCommandHandler {
	return commands.NewCleanupDeliveriesCommandHandler(factory, services.NewDeliveryConsistencyService(), publisher)
}

func deliveryForShipment(t *testing.T, shipmentID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), shipmentID, nil, "Customer at Rotterdam", delivery.Delivered)
	require.NoError(t, err)
	return d
}

func TestCleanupDeliveriesCommandHandler_Handle_RemovesInconsistentOnly(t *testing.T) {
	ctx := t.Context()

	deliveredID := kernel.NewUUID()
	revertedID := kernel.NewUUID()
	orphanID := kernel.NewUUID()

	keep := deliveryForShipment(t, deliveredID)
	reverted := deliveryForShipment(t, revertedID)
	orphan := deliveryForShipment(t, orphanID)

	shipments := []*shipment.Shipment{
		storedShipment(t, deliveredID, shipment.Delivered),
		storedShipment(t, revertedID, shipment.InTransit),
		// no shipment row for orphanID
	}

	shipmentRepo := new(MockShipmentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockShipmentUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	deliveryRepo.On("GetAll", mock.Anything).
		Return([]*delivery.Delivery{keep, reverted, orphan}, nil).Once()
	shipmentRepo.On("GetAll", mock.Anything).Return(shipments, nil).Once()
	deliveryRepo.On("DeleteAll", mock.Anything, mock.AnythingOfType("[]*delivery.Delivery")).
		Run(func(args mock.Arguments) {
			removed := args.Get(1).([]*delivery.Delivery)
			require.Len(t, removed, 2)
			assert.Contains(t, removed, reverted)
			assert.Contains(t, removed, orphan)
		}).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ports.DeliveryEventsTopic,
		fmt.Sprintf("Delivery deleted: ID=%s", reverted.ID())).Once()
	publisher.On("Publish", ports.DeliveryEventsTopic,
		fmt.Sprintf("Delivery deleted: ID=%s", orphan.ID())).Once()

	h := newCleanupHandler(factory, publisher)
	removed, err := h.Handle(ctx, commands.NewCleanupDeliveriesCommand())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	deliveryRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCleanupDeliveriesCommandHandler_Handle_NothingToRemove(t *testing.T) {
	ctx := t.Context()

	deliveredID := kernel.NewUUID()
	keep := deliveryForShipment(t, deliveredID)

	shipmentRepo := new(MockShipmentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockShipmentUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	deliveryRepo.On("GetAll", mock.Anything).Return([]*delivery.Delivery{keep}, nil).Once()
	shipmentRepo.On("GetAll", mock.Anything).
		Return([]*shipment.Shipment{storedShipment(t, deliveredID, shipment.Delivered)}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := newCleanupHandler(factory, publisher)
	removed, err := h.Handle(ctx, commands.NewCleanupDeliveriesCommand())
	require.NoError(t, err)
	assert.Zero(t, removed)
	deliveryRepo.AssertNotCalled(t, "DeleteAll", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCleanupDeliveriesCommandHandler_Handle_EmptyStore(t *testing.T) {
	ctx := t.Context()

	shipmentRepo := new(MockShipmentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockShipmentUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("GetAll", mock.Anything).Return([]*delivery.Delivery{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := newCleanupHandler(factory, publisher)
	removed, err := h.Handle(ctx, commands.NewCleanupDeliveriesCommand())
	require.NoError(t, err)
	assert.Zero(t, removed)
	shipmentRepo.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestCleanupDeliveriesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockShipmentUoWFactory)
	publisher := new(MockEventPublisher)
	h := newCleanupHandler(factory, publisher)

	cmd := commands.CleanupDeliveriesCommand{} // not constructed properly
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCleanupDeliveriesCommandIsNotConstructed)
}
