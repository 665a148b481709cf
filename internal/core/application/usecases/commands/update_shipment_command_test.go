package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateShipmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	routeID := kernel.NewUUID()
	cmd, err := commands.NewUpdateShipmentCommand(id, "Shanghai", "Rotterdam", shipment.Delivered, nil, &routeID, nil)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, shipment.Delivered, cmd.Status())
	assert.Equal(t, &routeID, cmd.RouteID())
	assert.Nil(t, cmd.VendorID())
}

func TestNewUpdateShipmentCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateShipmentCommand(kernel.NewUUID(), "Shanghai", "Rotterdam", shipment.Unknown, nil, nil, nil)
	require.Error(t, err)
}

func TestNewUpdateShipmentCommand_EmptyDestination(t *testing.T) {
	_, err := commands.NewUpdateShipmentCommand(kernel.NewUUID(), "Shanghai", "", shipment.Created, nil, nil, nil)
	require.Error(t, err)
}

func TestUpdateShipmentCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateShipmentCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateShipmentCommandIsNotConstructed)
}
