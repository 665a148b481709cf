package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/domain/model/vendor"
	"supplychain/internal/core/ports"
)

// CreateVendorCommandHandler handles the business logic for registering a
// vendor. Name uniqueness is enforced by the store.
type CreateVendorCommandHandler struct {
	uowFactory VendorUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateVendorCommandHandler creates a handler for vendor creation.
func NewCreateVendorCommandHandler(uowFactory VendorUoWFactory, publisher ports.EventPublisher) CreateVendorCommandHandler {
	return CreateVendorCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the vendor creation command.
func (h *CreateVendorCommandHandler) Handle(ctx context.Context, cmd CreateVendorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := vendor.NewVendor(
		cmd.VendorID(),
		cmd.Name(),
		cmd.ContactInfo(),
		cmd.ServiceType(),
		cmd.IsActive(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VendorRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.VendorEventsTopic,
		fmt.Sprintf("Vendor created: ID=%s, Name=%s", aggregate.ID(), aggregate.Name()))
	return nil
}
