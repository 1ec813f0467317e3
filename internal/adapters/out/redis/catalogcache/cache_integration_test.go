package catalogcache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"printflow/internal/adapters/out/redis/catalogcache"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

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

type CatalogCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
	source    *MockProductCatalog
	cache     *catalogcache.Cache
}

func (suite *CatalogCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)
	suite.rdb = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.Require().NoError(suite.rdb.Ping(ctx).Err())
}

func (suite *CatalogCacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.rdb.FlushDB(context.Background()).Err())
	suite.source = new(MockProductCatalog)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.cache = catalogcache.New(suite.rdb, suite.source, time.Minute, logger)
}

func (suite *CatalogCacheIntegrationTestSuite) TearDownSuite() {
	if suite.rdb != nil {
		_ = suite.rdb.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogCacheIntegrationTestSuite) newProduct() *catalog.Product {
	dims, err := kernel.NewDimensions(90, 55)
	suite.Require().NoError(err)
	size, err := catalog.NewPageSize(kernel.NewUUID(), "Standard", dims, catalog.BusinessCard, decimal.Zero)
	suite.Require().NoError(err)
	paper, err := catalog.NewPaperConfig(kernel.NewUUID(), "Art Paper", 300, catalog.General, decimal.RequireFromString("0.3"))
	suite.Require().NoError(err)
	matte, err := catalog.NewCostItem(kernel.NewUUID(), catalog.Lamination, "Matte", catalog.General, decimal.Zero)
	suite.Require().NoError(err)

	product, err := catalog.NewProduct(kernel.NewUUID(), "Business Card", "cards", catalog.BusinessCard,
		catalog.ProductPricing{
			BasePrice:           decimal.RequireFromString("2.5"),
			AreaRate:            decimal.RequireFromString("0.01"),
			DoubleSideSurcharge: decimal.RequireFromString("0.5"),
		},
		[]catalog.PageSize{size}, []catalog.PaperConfig{paper}, []catalog.CostItem{matte})
	suite.Require().NoError(err)
	return product
}

func (suite *CatalogCacheIntegrationTestSuite) TestProduct_SecondReadIsServedFromRedis() {
	ctx := context.Background()
	product := suite.newProduct()
	suite.source.On("Product", ctx, product.ID()).Return(product, nil).Once()

	first, err := suite.cache.Product(ctx, product.ID())
	suite.Require().NoError(err)
	second, err := suite.cache.Product(ctx, product.ID())
	suite.Require().NoError(err)

	suite.Same(product, first)
	suite.Equal(product.Name(), second.Name())
	suite.Equal(product.Category(), second.Category())
	suite.True(product.Pricing().AreaRate.Equal(second.Pricing().AreaRate))
	suite.Require().Len(second.CostItems(), 1)
	suite.Equal("Matte", second.CostItems()[0].Value())
	suite.source.AssertNumberOfCalls(suite.T(), "Product", 1)

	ttl, err := suite.rdb.TTL(ctx, "printflow:catalog:product:"+product.ID().String()).Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, time.Duration(0))
}

func (suite *CatalogCacheIntegrationTestSuite) TestProduct_MissIsNotCached() {
	ctx := context.Background()
	id := kernel.NewUUID()
	suite.source.On("Product", ctx, id).Return(nil, errs.NewObjectNotFoundError("product", id.String())).Twice()

	_, err := suite.cache.Product(ctx, id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.cache.Product(ctx, id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.source.AssertExpectations(suite.T())
}

func (suite *CatalogCacheIntegrationTestSuite) TestProduct_CorruptEntryFallsBackToSource() {
	ctx := context.Background()
	product := suite.newProduct()
	key := "printflow:catalog:product:" + product.ID().String()
	suite.Require().NoError(suite.rdb.Set(ctx, key, "not json", time.Minute).Err())
	suite.source.On("Product", ctx, product.ID()).Return(product, nil).Once()

	got, err := suite.cache.Product(ctx, product.ID())

	suite.Require().NoError(err)
	suite.Same(product, got)
	raw, err := suite.rdb.Get(ctx, key).Result()
	suite.Require().NoError(err)
	suite.Contains(raw, `"name":"Business Card"`)
}

func (suite *CatalogCacheIntegrationTestSuite) TestSheet_CachedAfterFirstRead() {
	ctx := context.Background()
	dims, err := kernel.NewDimensions(320, 450)
	suite.Require().NoError(err)
	sheet, err := catalog.NewSheet(kernel.NewUUID(), "SRA3", dims)
	suite.Require().NoError(err)
	suite.source.On("Sheet", ctx, sheet.ID()).Return(sheet, nil).Once()

	_, err = suite.cache.Sheet(ctx, sheet.ID())
	suite.Require().NoError(err)
	cached, err := suite.cache.Sheet(ctx, sheet.ID())
	suite.Require().NoError(err)

	suite.True(sheet.Dimensions().IsEqual(cached.Dimensions()))
	suite.source.AssertNumberOfCalls(suite.T(), "Sheet", 1)
}

func (suite *CatalogCacheIntegrationTestSuite) TestRedisDown_ReadsGoToSource() {
	ctx := context.Background()
	product := suite.newProduct()
	broken := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	defer func() { _ = broken.Close() }()
	cache := catalogcache.New(broken, suite.source, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	suite.source.On("Product", ctx, product.ID()).Return(product, nil).Once()

	got, err := cache.Product(ctx, product.ID())

	suite.Require().NoError(err)
	suite.Same(product, got)
}

func TestCatalogCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogCacheIntegrationTestSuite))
}
