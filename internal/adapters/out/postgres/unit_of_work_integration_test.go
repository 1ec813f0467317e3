package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgres_adapter "printflow/internal/adapters/out/postgres"
	"printflow/internal/adapters/out/postgres/pgtest"
	"printflow/internal/adapters/out/postgres/userrepo"
	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises transaction boundaries across the
// repositories against a real postgres.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	for _, table := range postgres_adapter.Tables {
		suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsRepeatable() {
	suite.Require().NoError(postgres_adapter.Migrate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIndependentInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.AutomationRepository())
	suite.NotNil(uow1.ManualAutomationRepository())
	suite.NotNil(uow1.CatalogRepository())
	suite.NotNil(uow1.UserRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin reuses the open transaction")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitOrRollbackWithoutTransaction_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBatchAndOrders_CommitTogether() {
	ctx := context.Background()
	first, second := newActiveOrder(suite), newActiveOrder(suite)
	seed := suite.factory.Create()
	suite.Require().NoError(seed.OrderRepository().Add(ctx, first))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, second))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	locked, err := uow.OrderRepository().GetManyForUpdate(ctx, []kernel.UUID{first.ID(), second.ID()})
	suite.Require().NoError(err)
	for _, o := range locked {
		suite.Require().NoError(o.Automate())
		suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	}
	batch := newBatch(suite, first.ID(), second.ID())
	suite.Require().NoError(uow.AutomationRepository().Add(ctx, batch))
	suite.Require().NoError(uow.Commit(ctx))

	tracked, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Equal(3, tracked.TrackedCount())

	check := suite.factory.Create()
	for _, id := range []kernel.UUID{first.ID(), second.ID()} {
		o, err := check.OrderRepository().Get(ctx, id)
		suite.Require().NoError(err)
		suite.Equal(order.Automated, o.Status())
	}
	_, err = check.AutomationRepository().Get(ctx, batch.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEveryRepository() {
	ctx := context.Background()
	o := newActiveOrder(suite)
	manual, err := automation.NewManualBatch(kernel.NewUUID(), "Hand imposed", "", []kernel.UUID{o.ID()},
		"http://files.local/automation/layout.pdf")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.ManualAutomationRepository().Add(ctx, manual))
	_, err = uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err, "writes are visible inside the transaction")
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err = check.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = check.ManualAutomationRepository().Get(ctx, manual.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentUnits_AreIsolated() {
	ctx := context.Background()
	uow1, uow2 := suite.factory.Create(), suite.factory.Create()
	order1, order2 := newActiveOrder(suite), newActiveOrder(suite)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "uncommitted rows of another unit are invisible")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err)

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	check := suite.factory.Create()
	_, err = check.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = check.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err)
}

// cancelLocked runs a cancel the way the status handler does: lock, transition, write.
func (suite *UnitOfWorkIntegrationTestSuite) cancelLocked(ctx context.Context, id kernel.UUID) error {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if err = o.Cancel(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSingleOrderWrite_WaitsForBatchLock() {
	ctx := context.Background()
	o := newActiveOrder(suite)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	batchUoW := suite.factory.Create()
	suite.Require().NoError(batchUoW.Begin(ctx))
	locked, err := batchUoW.OrderRepository().GetManyForUpdate(ctx, []kernel.UUID{o.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)
	suite.Require().NoError(locked[0].Automate())
	suite.Require().NoError(batchUoW.OrderRepository().Update(ctx, locked[0]))

	cancelled := make(chan error, 1)
	go func() { cancelled <- suite.cancelLocked(ctx, o.ID()) }()

	select {
	case err = <-cancelled:
		suite.FailNow("cancel finished while the batch held the row", "err: %v", err)
	case <-time.After(300 * time.Millisecond):
	}
	suite.Require().NoError(batchUoW.Commit(ctx))

	select {
	case err = <-cancelled:
		suite.Require().ErrorIs(err, errs.ErrInvalidTransition)
	case <-time.After(10 * time.Second):
		suite.FailNow("cancel did not resume after the batch committed")
	}

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Automated, stored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAssignments_SecondConflicts() {
	ctx := context.Background()
	o := newActiveOrder(suite)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))
	first, second := kernel.NewUUID(), kernel.NewUUID()

	winner := suite.factory.Create()
	suite.Require().NoError(winner.Begin(ctx))
	locked, err := winner.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.Assign(first))
	suite.Require().NoError(winner.OrderRepository().Update(ctx, locked))

	assigned := make(chan error, 1)
	go func() {
		uow := suite.factory.Create()
		if beginErr := uow.Begin(ctx); beginErr != nil {
			assigned <- beginErr
			return
		}
		defer func() { _ = uow.Rollback(ctx) }()

		late, getErr := uow.OrderRepository().GetForUpdate(ctx, o.ID())
		if getErr != nil {
			assigned <- getErr
			return
		}
		assigned <- late.Assign(second)
	}()

	time.Sleep(300 * time.Millisecond)
	suite.Require().NoError(winner.Commit(ctx))

	select {
	case err = <-assigned:
		suite.Require().ErrorIs(err, errs.ErrConflict)
	case <-time.After(10 * time.Second):
		suite.FailNow("second assignment did not resume after the first committed")
	}

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.RaisedTo())
	suite.True(stored.RaisedTo().IsEqual(first))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_WritesImmediately() {
	ctx := context.Background()
	o := newActiveOrder(suite)

	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), restored.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUserRepository_ReadsSeededAccount() {
	ctx := context.Background()
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&userrepo.UserDTO{
		ID: id.Bytes(), Name: "Ada", Email: "ada@print.local", Role: "STAFF",
	}).Error)

	user, err := suite.factory.Create().UserRepository().Get(ctx, id)

	suite.Require().NoError(err)
	suite.True(user.CanBeAssigned())
}

func newActiveOrder(suite *UnitOfWorkIntegrationTestSuite) *order.Order {
	dims, err := kernel.NewDimensions(90, 55)
	suite.Require().NoError(err)
	details, err := order.NewDetails(order.DetailsParams{
		ProductID:   kernel.NewUUID(),
		ProductName: "Business card",
		Dimensions:  dims,
		Quantity:    500,
		Paper:       order.Paper{ID: kernel.NewUUID(), Type: "Matte", GSM: 350},
		Side:        catalog.SingleSide,
		Quality:     300,
		FileURL:     "http://files.local/designs/card.png",
	})
	suite.Require().NoError(err)

	now := time.Now().UTC()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, details,
		decimal.RequireFromString("0.12"), decimal.RequireFromString("60.00"), order.Active, now, now)
	suite.Require().NoError(err)
	return o
}

func newBatch(suite *UnitOfWorkIntegrationTestSuite, orderIDs ...kernel.UUID) *automation.Batch {
	layout, err := automation.NewLayout(74.5, "BOTTOM_LEFT_FILL", json.RawMessage(`{"placements":[]}`))
	suite.Require().NoError(err)

	b, err := automation.NewBatch(kernel.NewUUID(), "Cards", "", orderIDs, automation.Settings{
		SheetID:   kernel.NewUUID(),
		Algorithm: automation.MaxRects,
	}, layout)
	suite.Require().NoError(err)
	return b
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
