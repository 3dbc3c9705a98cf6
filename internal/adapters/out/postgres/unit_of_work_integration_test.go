package postgres_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/clientrepo"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/preparingrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/adapters/out/postgres/staffrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the unit of work commits and
// rolls back changes across several repositories as one transaction.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
		&clientrepo.ClientDTO{},
		&staffrepo.EmployeeDTO{},
		&staffrepo.CourierDTO{},
		&preparingrepo.PreparingOrderDTO{},
		&deliveryrepo.DeliveryDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_items, orders, products, clients, employees, couriers, preparing_orders, deliveries",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	testProduct, err := product.NewProduct(kernel.NewUUID(), "Bolt M6", 10, 250, "pcs")
	suite.Require().NoError(err)

	item, err := order.NewItem(testProduct.ID(), testProduct.Name(), 4, testProduct.Price(), testProduct.Unit())
	suite.Require().NoError(err)
	draft, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, time.Now().UTC(),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testProduct.Reserve(4))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, testProduct))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, draft))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loadedProduct, err := verify.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(6, loadedProduct.Quantity())

	loadedOrder, err := verify.OrderRepository().Get(ctx, draft.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Draft, loadedOrder.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()

	testProduct, err := product.NewProduct(kernel.NewUUID(), "Bolt M6", 10, 250, "pcs")
	suite.Require().NoError(err)

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.ProductRepository().Add(ctx, testProduct))
	suite.Require().NoError(seed.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Reserve(7))
	suite.Require().NoError(uow.ProductRepository().Update(ctx, loaded))

	item, err := order.NewItem(loaded.ID(), loaded.Name(), 7, loaded.Price(), loaded.Unit())
	suite.Require().NoError(err)
	draft, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, draft))

	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	untouched, err := verify.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(10, untouched.Quantity())

	_, err = verify.OrderRepository().Get(ctx, draft.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStaffRepositories_FlagRoundTrip() {
	ctx := context.Background()

	employee, err := staff.NewEmployee(kernel.NewUUID(), "Alice Smith")
	suite.Require().NoError(err)
	courier, err := staff.NewCourier(kernel.NewUUID(), "Bob Jones")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EmployeeRepository().Add(ctx, employee))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, courier))
	suite.Require().NoError(employee.MarkBusy())
	suite.Require().NoError(uow.EmployeeRepository().Update(ctx, employee))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loadedEmployee, err := verify.EmployeeRepository().Get(ctx, employee.ID())
	suite.Require().NoError(err)
	suite.False(loadedEmployee.IsActive())

	loadedCourier, err := verify.CourierRepository().Get(ctx, courier.ID())
	suite.Require().NoError(err)
	suite.True(loadedCourier.IsActive())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
