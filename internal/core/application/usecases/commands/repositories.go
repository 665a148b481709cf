// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, then a post-commit event publish.
package commands

import (
	"context"

	"supplychain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers declare the narrowest unit of work they need so tests
// can supply small mocks.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// CargoRepoFactory provides access to the cargo repository within a transaction.
	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	// ShipmentUoW manages transactions for shipment operations. Shipment
	// writes also touch delivery records (materialization on entering
	// Delivered status, cascade on delete), so both repositories share the
	// transaction.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		DeliveryRepoFactory
	}

	// ShipmentUoWFactory creates shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// DeliveryUoW manages transactions for delivery operations. Delivery
	// writes validate against shipment state, so both repositories share
	// the transaction.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		ShipmentRepoFactory
	}

	// DeliveryUoWFactory creates delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// RouteUoW manages transactions for route-only operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// VendorUoW manages transactions for vendor-only operations.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
	}

	// VendorUoWFactory creates vendor unit of work instances.
	VendorUoWFactory interface {
		Create() VendorUoW
	}

	// CargoUoW manages transactions for cargo operations. Cargo creation
	// validates the owning shipment exists, so the shipment repository
	// shares the transaction.
	CargoUoW interface {
		TxManager
		CargoRepoFactory
		ShipmentRepoFactory
	}

	// CargoUoWFactory creates cargo unit of work instances.
	CargoUoWFactory interface {
		Create() CargoUoW
	}
)
