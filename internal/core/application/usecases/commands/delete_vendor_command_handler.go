package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// DeleteVendorCommandHandler handles the business logic for removing a
// vendor.
type DeleteVendorCommandHandler struct {
	uowFactory VendorUoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteVendorCommandHandler creates a handler for vendor deletion.
func NewDeleteVendorCommandHandler(uowFactory VendorUoWFactory, publisher ports.EventPublisher) DeleteVendorCommandHandler {
	return DeleteVendorCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the vendor deletion command.
func (h *DeleteVendorCommandHandler) Handle(ctx context.Context, cmd DeleteVendorCommand) error {
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

	exists, err := uow.VendorRepository().Exists(ctx, cmd.VendorID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("vendorId", cmd.VendorID())
	}

	if err = uow.VendorRepository().Delete(ctx, cmd.VendorID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.VendorEventsTopic,
		fmt.Sprintf("Vendor deleted: ID=%s", cmd.VendorID()))
	return nil
}
