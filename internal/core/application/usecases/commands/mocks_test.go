package commands_test

import (
	"context"
	"testing"
	"time"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*access.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.User), args.Error(1)
}

type MockAutomationRepository struct{ mock.Mock }

func (m *MockAutomationRepository) Add(ctx context.Context, b *automation.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockAutomationRepository) Get(ctx context.Context, id kernel.UUID) (*automation.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*automation.Batch), args.Error(1)
}

func (m *MockAutomationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockManualAutomationRepository struct{ mock.Mock }

func (m *MockManualAutomationRepository) Add(ctx context.Context, b *automation.ManualBatch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockManualAutomationRepository) Get(ctx context.Context, id kernel.UUID) (*automation.ManualBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*automation.ManualBatch), args.Error(1)
}

func (m *MockManualAutomationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddProduct(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCatalogRepository) AddPageSize(ctx context.Context, s catalog.PageSize) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCatalogRepository) AddPaperConfig(ctx context.Context, p catalog.PaperConfig) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCatalogRepository) AddCostItem(ctx context.Context, c catalog.CostItem) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCatalogRepository) AddSheet(ctx context.Context, s catalog.Sheet) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetPageSizes(ctx context.Context, ids []kernel.UUID) ([]catalog.PageSize, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.PageSize), args.Error(1)
}

func (m *MockCatalogRepository) GetPaperConfigs(ctx context.Context, ids []kernel.UUID) ([]catalog.PaperConfig, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.PaperConfig), args.Error(1)
}

func (m *MockCatalogRepository) GetCostItems(ctx context.Context, ids []kernel.UUID) ([]catalog.CostItem, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.CostItem), args.Error(1)
}

func (m *MockCatalogRepository) GetSheet(ctx context.Context, id kernel.UUID) (catalog.Sheet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Sheet), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Product(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductCatalog) Sheet(ctx context.Context, id kernel.UUID) (catalog.Sheet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Sheet), args.Error(1)
}

type MockPackingOptimizer struct{ mock.Mock }

func (m *MockPackingOptimizer) Optimize(ctx context.Context, req ports.PackingRequest) (automation.Layout, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(automation.Layout), args.Error(1)
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) Upload(ctx context.Context, file ports.FileUpload) (ports.FileInfo, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(ports.FileInfo), args.Error(1)
}

func (m *MockFileStorage) Stat(ctx context.Context, url string) (ports.FileInfo, error) {
	args := m.Called(ctx, url)
	return args.Get(0).(ports.FileInfo), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) AutomationRepository() ports.AutomationRepository {
	return m.Called().Get(0).(ports.AutomationRepository)
}

func (m *MockUoW) ManualAutomationRepository() ports.ManualAutomationRepository {
	return m.Called().Get(0).(ports.ManualAutomationRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return m.Called().Get(0).(commands.AssignmentUoW)
}

type MockBatchUoWFactory struct{ mock.Mock }

func (m *MockBatchUoWFactory) Create() commands.BatchUoW {
	return m.Called().Get(0).(commands.BatchUoW)
}

type MockManualBatchUoWFactory struct{ mock.Mock }

func (m *MockManualBatchUoWFactory) Create() commands.ManualBatchUoW {
	return m.Called().Get(0).(commands.ManualBatchUoW)
}

type MockBatchRemovalUoWFactory struct{ mock.Mock }

func (m *MockBatchRemovalUoWFactory) Create() commands.BatchRemovalUoW {
	return m.Called().Get(0).(commands.BatchRemovalUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

func newSession(t *testing.T, role access.Role) access.Session {
	t.Helper()
	s, err := access.NewSession(kernel.NewUUID(), role)
	require.NoError(t, err)
	return s
}

func newOrderWithStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	dims, err := kernel.NewDimensions(90, 55)
	require.NoError(t, err)
	details, err := order.NewDetails(order.DetailsParams{
		ProductID:   kernel.NewUUID(),
		ProductName: "Business Card",
		Dimensions:  dims,
		Quantity:    1000,
		Paper:       order.Paper{ID: kernel.NewUUID(), Type: "Art Paper", GSM: 300},
		Side:        catalog.SingleSide,
		Quality:     300,
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, details,
		decimal.RequireFromString("2.8"), decimal.NewFromInt(2800), status, now, now)
	require.NoError(t, err)
	return o
}

type productFixture struct {
	product *catalog.Product
	size    catalog.PageSize
	paper   catalog.PaperConfig
	matte   catalog.CostItem
	gloss   catalog.CostItem
}

// newProductFixture builds a business card offered in one size and one paper
// with a two-option lamination.
func newProductFixture(t *testing.T) productFixture {
	t.Helper()
	dims, err := kernel.NewDimensions(90, 55)
	require.NoError(t, err)
	size, err := catalog.NewPageSize(kernel.NewUUID(), "Standard", dims, catalog.BusinessCard, decimal.Zero)
	require.NoError(t, err)
	paper, err := catalog.NewPaperConfig(kernel.NewUUID(), "Art Paper", 300, catalog.General, decimal.RequireFromString("0.3"))
	require.NoError(t, err)
	matte, err := catalog.NewCostItem(kernel.NewUUID(), catalog.Lamination, "Matte", catalog.General, decimal.Zero)
	require.NoError(t, err)
	gloss, err := catalog.NewCostItem(kernel.NewUUID(), catalog.Lamination, "Gloss", catalog.General, decimal.RequireFromString("0.1"))
	require.NoError(t, err)

	product, err := catalog.NewProduct(kernel.NewUUID(), "Business Card", "", catalog.BusinessCard,
		catalog.ProductPricing{
			BasePrice:           decimal.RequireFromString("2.5"),
			DoubleSideSurcharge: decimal.RequireFromString("0.5"),
		},
		[]catalog.PageSize{size}, []catalog.PaperConfig{paper}, []catalog.CostItem{matte, gloss})
	require.NoError(t, err)

	return productFixture{product: product, size: size, paper: paper, matte: matte, gloss: gloss}
}
