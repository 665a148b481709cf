package cmd

import (
	httpadapter "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

// CreateCommandHandlers builds the full write-side handler set for the
// HTTP server.
func (c *CompositionRoot) CreateCommandHandlers() httpadapter.CommandHandlers {
	return httpadapter.CommandHandlers{
		CreateShipment:    c.CreateCreateShipmentCommandHandler(),
		UpdateShipment:    c.CreateUpdateShipmentCommandHandler(),
		DeleteShipment:    c.CreateDeleteShipmentCommandHandler(),
		CreateDelivery:    c.CreateCreateDeliveryCommandHandler(),
		UpdateDelivery:    c.CreateUpdateDeliveryCommandHandler(),
		DeleteDelivery:    c.CreateDeleteDeliveryCommandHandler(),
		CleanupDeliveries: c.CreateCleanupDeliveriesCommandHandler(),
		CreateRoute:       c.CreateCreateRouteCommandHandler(),
		UpdateRoute:       c.CreateUpdateRouteCommandHandler(),
		DeleteRoute:       c.CreateDeleteRouteCommandHandler(),
		CreateVendor:      c.CreateCreateVendorCommandHandler(),
		UpdateVendor:      c.CreateUpdateVendorCommandHandler(),
		DeleteVendor:      c.CreateDeleteVendorCommandHandler(),
		CreateCargo:       c.CreateCreateCargoCommandHandler(),
		UpdateCargo:       c.CreateUpdateCargoCommandHandler(),
		DeleteCargo:       c.CreateDeleteCargoCommandHandler(),
	}
}

// CreateQueryHandlers builds the full read-side handler set for the HTTP
// server.
func (c *CompositionRoot) CreateQueryHandlers() httpadapter.QueryHandlers {
	return httpadapter.QueryHandlers{
		GetAllShipments:  queries.NewGetAllShipmentsQueryHandler(c.gormDB),
		GetShipment:      queries.NewGetShipmentQueryHandler(c.gormDB),
		GetAllDeliveries: queries.NewGetAllDeliveriesQueryHandler(c.gormDB),
		GetDelivery:      queries.NewGetDeliveryQueryHandler(c.gormDB),
		GetAllRoutes:     queries.NewGetAllRoutesQueryHandler(c.gormDB),
		GetRoute:         queries.NewGetRouteQueryHandler(c.gormDB),
		GetAllVendors:    queries.NewGetAllVendorsQueryHandler(c.gormDB),
		GetVendor:        queries.NewGetVendorQueryHandler(c.gormDB),
		GetAllCargo:      queries.NewGetAllCargoQueryHandler(c.gormDB),
		GetCargo:         queries.NewGetCargoQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vendorUoWFactory() commands.VendorUoWFactory {
	return FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cargoUoWFactory() commands.CargoUoWFactory {
	return FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(
		c.shipmentUoWFactory(),
		services.NewDeliveryConsistencyService(),
		c.publisher,
	)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCleanupDeliveriesCommandHandler() commands.CleanupDeliveriesCommandHandler {
	return commands.NewCleanupDeliveriesCommandHandler(
		c.shipmentUoWFactory(),
		services.NewDeliveryConsistencyService(),
		c.publisher,
	)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateRouteCommandHandler() commands.UpdateRouteCommandHandler {
	return commands.NewUpdateRouteCommandHandler(c.routeUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteRouteCommandHandler() commands.DeleteRouteCommandHandler {
	return commands.NewDeleteRouteCommandHandler(c.routeUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateVendorCommandHandler() commands.CreateVendorCommandHandler {
	return commands.NewCreateVendorCommandHandler(c.vendorUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateVendorCommandHandler() commands.UpdateVendorCommandHandler {
	return commands.NewUpdateVendorCommandHandler(c.vendorUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteVendorCommandHandler() commands.DeleteVendorCommandHandler {
	return commands.NewDeleteVendorCommandHandler(c.vendorUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateCargoCommandHandler() commands.CreateCargoCommandHandler {
	return commands.NewCreateCargoCommandHandler(c.cargoUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateCargoCommandHandler() commands.UpdateCargoCommandHandler {
	return commands.NewUpdateCargoCommandHandler(c.cargoUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteCargoCommandHandler() commands.DeleteCargoCommandHandler {
	return commands.NewDeleteCargoCommandHandler(c.cargoUoWFactory(), c.publisher)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncCargoUoWFactory func() commands.CargoUoW

func (f FuncCargoUoWFactory) Create() commands.CargoUoW {
	return f()
}
