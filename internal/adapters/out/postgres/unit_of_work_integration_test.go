package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "supplychain/internal/adapters/out/postgres"
	"supplychain/internal/adapters/out/postgres/cargorepo"
	"supplychain/internal/adapters/out/postgres/deliveryrepo"
	"supplychain/internal/adapters/out/postgres/routerepo"
	"supplychain/internal/adapters/out/postgres/shipmentrepo"
	"supplychain/internal/adapters/out/postgres/vendorrepo"
	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes a PostgreSQL container and runs migrations so the
// schema matches production, including the unique index on
// deliveries.shipment_id and the cascading cargo foreign key.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
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
		&deliveryrepo.DeliveryDTO{},
		&routerepo.RouteDTO{},
		&vendorrepo.VendorDTO{},
		&cargorepo.CargoDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, deliveries, routes, vendors, cargo CASCADE").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated
// instances that each expose the full repository set.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow1.RouteRepository())
	suite.NotNil(uow1.VendorRepository())
	suite.NotNil(uow1.CargoRepository())
	suite.NotNil(uow2.ShipmentRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies operations without an active
// transaction fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_ShipmentDeliveryTransaction verifies a shipment status
// change and its delivery record commit atomically, the way the update
// handler materializes a delivery.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentDeliveryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment(suite.T(), shipment.Delivered)
	testDelivery := createTestDelivery(suite.T(), testShipment.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, testDelivery)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Both records are visible after commit.
	verifyUow := suite.factory.Create()
	storedShipment, err := verifyUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, storedShipment.Status())

	storedDelivery, err := verifyUow.DeliveryRepository().GetForShipment(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testDelivery.ID(), storedDelivery.ID())
}

// TestUnitOfWork_TransactionRollback verifies rolled back changes leave no
// trace in the database.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment(suite.T(), shipment.Created)
	testDelivery := createTestDelivery(suite.T(), testShipment.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, testDelivery)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	verifyUow := suite.factory.Create()
	_, err = verifyUow.ShipmentRepository().Get(ctx, testShipment.ID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr, "Rolled back shipment should not exist")

	_, err = verifyUow.DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().ErrorAs(err, &notFoundErr, "Rolled back delivery should not exist")
}

// TestUnitOfWork_DuplicateDeliveryInsideTransaction verifies the unique
// shipment index fires within a transaction and maps to the sentinel error.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateDeliveryInsideTransaction() {
	ctx := context.Background()

	setupUow := suite.factory.Create()
	testShipment := createTestShipment(suite.T(), shipment.Delivered)
	first := createTestDelivery(suite.T(), testShipment.ID())

	suite.Require().NoError(setupUow.Begin(ctx))
	suite.Require().NoError(setupUow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(setupUow.DeliveryRepository().Add(ctx, first))
	suite.Require().NoError(setupUow.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	second := createTestDelivery(suite.T(), testShipment.ID())
	err := uow.DeliveryRepository().Add(ctx, second)
	suite.Require().ErrorIs(err, ports.ErrDuplicateDelivery)

	suite.Require().NoError(uow.Rollback(ctx))
}

// TestUnitOfWork_LostDeliveryRaceKeepsShipmentUpdate replays the losing
// side of two racing Delivered transitions: the materializing insert hits
// an existing record inside the open transaction, and the shipment update
// sharing that transaction must still commit. A plain unique violation
// would abort the transaction and PostgreSQL would silently turn the
// COMMIT into a rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_LostDeliveryRaceKeepsShipmentUpdate() {
	ctx := context.Background()

	setupUow := suite.factory.Create()
	testShipment := createTestShipment(suite.T(), shipment.InTransit)
	winner := createTestDelivery(suite.T(), testShipment.ID())

	suite.Require().NoError(setupUow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(setupUow.DeliveryRepository().Add(ctx, winner))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ApplyUpdate("Shanghai", "Rotterdam", shipment.Delivered, nil, nil, nil))
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, loaded))

	loser := createTestDelivery(suite.T(), testShipment.ID())
	inserted, err := uow.DeliveryRepository().AddIfAbsent(ctx, loser)
	suite.Require().NoError(err)
	suite.False(inserted, "Conflicting insert should write nothing")

	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	stored, err := verifyUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, stored.Status(), "Shipment update must survive the lost insert race")

	storedDelivery, err := verifyUow.DeliveryRepository().GetForShipment(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(winner.ID(), storedDelivery.ID(), "Winning record stays untouched")
}

// TestUnitOfWork_DeleteShipmentRemovesDeliveries verifies the delete
// workflow: deliveries go first, then the shipment, in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeleteShipmentRemovesDeliveries() {
	ctx := context.Background()

	setupUow := suite.factory.Create()
	testShipment := createTestShipment(suite.T(), shipment.Delivered)
	testDelivery := createTestDelivery(suite.T(), testShipment.ID())

	suite.Require().NoError(setupUow.Begin(ctx))
	suite.Require().NoError(setupUow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(setupUow.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(setupUow.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().DeleteForShipment(ctx, testShipment.ID()))
	suite.Require().NoError(uow.ShipmentRepository().Delete(ctx, testShipment.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	exists, err := verifyUow.ShipmentRepository().Exists(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.False(exists)

	deliveryExists, err := verifyUow.DeliveryRepository().Exists(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.False(deliveryExists)
}

// TestUnitOfWork_ShipmentTimestampsAreStoreManaged verifies created_at is
// written once on insert and survives updates, while updated_at moves.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentTimestampsAreStoreManaged() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment(suite.T(), shipment.Created)
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))

	var created, updated time.Time
	row := suite.db.Raw("SELECT created_at, updated_at FROM shipments WHERE id = ?", testShipment.ID().Bytes()).Row()
	suite.Require().NoError(row.Scan(&created, &updated))
	suite.False(created.IsZero(), "created_at should be set on insert")
	suite.False(updated.IsZero(), "updated_at should be set on insert")

	suite.Require().NoError(testShipment.ApplyUpdate("Shanghai", "Rotterdam", shipment.InTransit, nil, nil, nil))
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, testShipment))

	var createdAfter, updatedAfter time.Time
	row = suite.db.Raw("SELECT created_at, updated_at FROM shipments WHERE id = ?", testShipment.ID().Bytes()).Row()
	suite.Require().NoError(row.Scan(&createdAfter, &updatedAfter))
	suite.True(created.Equal(createdAfter), "created_at must not change on update")
	suite.False(updatedAfter.Before(updated), "updated_at must not move backwards")
}

// TestUnitOfWork_WithoutTransaction verifies repositories work directly
// against the pool when no transaction was begun.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment(suite.T(), shipment.Created)

	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err, "Repository should work without explicit transaction")

	stored, err := uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), stored.ID())
}

func createTestShipment(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), "Shanghai", "Rotterdam", status, nil, nil, nil)
	if err != nil {
		t.Fatalf("failed to create test shipment: %v", err)
	}
	return s
}

func createTestDelivery(t *testing.T, shipmentID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), shipmentID, nil, "Customer at Rotterdam", delivery.Pending)
	if err != nil {
		t.Fatalf("failed to create test delivery: %v", err)
	}
	return d
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
