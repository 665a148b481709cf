package queries_test

import (
	"context"
	"testing"
	"time"

	"supplychain/internal/adapters/out/postgres/cargorepo"
	"supplychain/internal/adapters/out/postgres/routerepo"
	"supplychain/internal/adapters/out/postgres/shipmentrepo"
	"supplychain/internal/adapters/out/postgres/vendorrepo"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/cargo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/route"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/model/vendor"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ByIDQueryHandlersTestSuite exercises the route, vendor and cargo by-id
// read models against a real database.
type ByIDQueryHandlersTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	routeHandler  queries.GetRouteQueryHandler
	vendorHandler queries.GetVendorQueryHandler
	cargoHandler  queries.GetCargoQueryHandler
}

func (suite *ByIDQueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&routerepo.RouteDTO{},
		&vendorrepo.VendorDTO{},
		&cargorepo.CargoDTO{},
	)
	suite.Require().NoError(err)

	suite.routeHandler = queries.NewGetRouteQueryHandler(db)
	suite.vendorHandler = queries.NewGetVendorQueryHandler(db)
	suite.cargoHandler = queries.NewGetCargoQueryHandler(db)
}

func (suite *ByIDQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ByIDQueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE cargo, shipments, routes, vendors CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ByIDQueryHandlersTestSuite) TestGetRoute_Existing_ReturnsRoute() {
	ctx := context.Background()

	distance := 22000.0
	stored, err := route.NewRoute(
		kernel.NewUUID(), "Shanghai", "Rotterdam", 35,
		route.StatusActive, &distance, "Sea", nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(routerepo.NewGormRouteRepository(suite.db).Add(ctx, stored))

	query, err := queries.NewGetRouteQuery(stored.ID())
	suite.Require().NoError(err)

	result, err := suite.routeHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(stored.ID(), result.ID)
	suite.Equal("Shanghai", result.OriginPort)
	suite.Equal("Rotterdam", result.DestinationPort)
	suite.Equal(35, result.Duration)
	suite.Equal("Active", result.Status)
	suite.Require().NotNil(result.Distance)
	suite.InDelta(22000.0, *result.Distance, 0.001)
	suite.Nil(result.Cost)
}

func (suite *ByIDQueryHandlersTestSuite) TestGetRoute_NonExistent_ReturnsNotFoundError() {
	query, err := queries.NewGetRouteQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.routeHandler.Handle(context.Background(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ByIDQueryHandlersTestSuite) TestGetVendor_Existing_ReturnsVendor() {
	ctx := context.Background()

	stored, err := vendor.NewVendor(
		kernel.NewUUID(), "Maersk", "ops@maersk.example", vendor.ServiceTypeShippingLine, true,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(vendorrepo.NewGormVendorRepository(suite.db).Add(ctx, stored))

	query, err := queries.NewGetVendorQuery(stored.ID())
	suite.Require().NoError(err)

	result, err := suite.vendorHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(stored.ID(), result.ID)
	suite.Equal("Maersk", result.Name)
	suite.Equal("Shipping Line", result.ServiceType)
	suite.True(result.IsActive)
}

func (suite *ByIDQueryHandlersTestSuite) TestGetVendor_NonExistent_ReturnsNotFoundError() {
	query, err := queries.NewGetVendorQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.vendorHandler.Handle(context.Background(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ByIDQueryHandlersTestSuite) TestGetCargo_Existing_ReturnsCargoItem() {
	ctx := context.Background()

	owner, err := shipment.NewShipment(
		kernel.NewUUID(), "Shanghai", "Rotterdam", shipment.InTransit, nil, nil, nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(shipmentrepo.NewGormShipmentRepository(suite.db).Add(ctx, owner))

	weight := 1200.5
	stored, err := cargo.NewCargo(
		kernel.NewUUID(), owner.ID(), "Electronics", "Server racks", nil, &weight, "kg",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(cargorepo.NewGormCargoRepository(suite.db).Add(ctx, stored))

	query, err := queries.NewGetCargoQuery(stored.ID())
	suite.Require().NoError(err)

	result, err := suite.cargoHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(stored.ID(), result.ID)
	suite.Equal(owner.ID(), result.ShipmentID)
	suite.Equal("Electronics", result.CargoType)
	suite.Require().NotNil(result.Weight)
	suite.InDelta(1200.5, *result.Weight, 0.001)
	suite.Equal("kg", result.WeightUnit)
}

func (suite *ByIDQueryHandlersTestSuite) TestGetCargo_NonExistent_ReturnsNotFoundError() {
	query, err := queries.NewGetCargoQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.cargoHandler.Handle(context.Background(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ByIDQueryHandlersTestSuite) TestNotConstructedQueries_ReturnError() {
	ctx := context.Background()

	_, err := suite.routeHandler.Handle(ctx, queries.GetRouteQuery{})
	suite.Require().Error(err)

	_, err = suite.vendorHandler.Handle(ctx, queries.GetVendorQuery{})
	suite.Require().Error(err)

	_, err = suite.cargoHandler.Handle(ctx, queries.GetCargoQuery{})
	suite.Require().Error(err)
}

func TestByIDQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(ByIDQueryHandlersTestSuite))
}
