package ports

import (
	"context"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
)

// CatalogRepository is the transactional write side of the catalog, used by the
// admin commands. Unknown ids yield errs.ObjectNotFoundError.
type CatalogRepository interface {
	AddProduct(ctx context.Context, product *catalog.Product) error
	AddPageSize(ctx context.Context, size catalog.PageSize) error
	AddPaperConfig(ctx context.Context, paper catalog.PaperConfig) error
	AddCostItem(ctx context.Context, item catalog.CostItem) error
	AddSheet(ctx context.Context, sheet catalog.Sheet) error

	GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
	GetPageSizes(ctx context.Context, ids []kernel.UUID) ([]catalog.PageSize, error)
	GetPaperConfigs(ctx context.Context, ids []kernel.UUID) ([]catalog.PaperConfig, error)
	GetCostItems(ctx context.Context, ids []kernel.UUID) ([]catalog.CostItem, error)
	GetSheet(ctx context.Context, id kernel.UUID) (catalog.Sheet, error)
}

// ProductCatalog is the read-only view of the catalog consulted while pricing
// and batching. Implementations may serve it from a cache.
type ProductCatalog interface {
	Product(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
	Sheet(ctx context.Context, id kernel.UUID) (catalog.Sheet, error)
}
