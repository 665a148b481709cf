package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/ports"
)

// UpdateVendorCommandHandler handles the business logic for updating a
// vendor.
type UpdateVendorCommandHandler struct {
	uowFactory VendorUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateVendorCommandHandler creates a handler for vendor updates.
func NewUpdateVendorCommandHandler(uowFactory VendorUoWFactory, publisher ports.EventPublisher) UpdateVendorCommandHandler {
	return UpdateVendorCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the vendor update command.
func (h *UpdateVendorCommandHandler) Handle(ctx context.Context, cmd UpdateVendorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if err = aggregate.ApplyUpdate(cmd.Name(), cmd.ContactInfo(), cmd.ServiceType(), cmd.IsActive()); err != nil {
		return err
	}

	if err = uow.VendorRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.VendorEventsTopic,
		fmt.Sprintf("Vendor updated: ID=%s, Name=%s", aggregate.ID(), aggregate.Name()))
	return nil
}
