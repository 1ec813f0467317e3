package catalogrepo

import (
	"context"
	"errors"

	"printflow/internal/adapters/out/postgres/pgerr"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository and, outside a
// transaction, ports.ProductCatalog.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AddProduct stores the product row and its join rows. The options must
// already exist.
func (r *GormCatalogRepository) AddProduct(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := ProductFromDomain(product)
	err := r.db.WithContext(ctx).Omit("Sizes.*", "Papers.*", "CostItems.*").Create(&dto).Error
	return pgerr.Translate("productId", product.ID().String(), err)
}

func (r *GormCatalogRepository) AddPageSize(ctx context.Context, size catalog.PageSize) error {
	if err := size.Validate(); err != nil {
		return err
	}
	dto := PageSizeFromDomain(size)
	return pgerr.Translate("pageSizeId", size.ID().String(), r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormCatalogRepository) AddPaperConfig(ctx context.Context, paper catalog.PaperConfig) error {
	if err := paper.Validate(); err != nil {
		return err
	}
	dto := PaperConfigFromDomain(paper)
	return pgerr.Translate("paperConfigId", paper.ID().String(), r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormCatalogRepository) AddCostItem(ctx context.Context, item catalog.CostItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	dto := CostItemFromDomain(item)
	return pgerr.Translate("costItemId", item.ID().String(), r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormCatalogRepository) AddSheet(ctx context.Context, sheet catalog.Sheet) error {
	if err := sheet.Validate(); err != nil {
		return err
	}
	dto := SheetFromDomain(sheet)
	return pgerr.Translate("sheetId", sheet.ID().String(), r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Preload("Papers").
		Preload("CostItems").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return dto.ToDomain()
}

// GetPageSizes returns the sizes in the order of ids. Any unknown id fails the
// whole call.
func (r *GormCatalogRepository) GetPageSizes(ctx context.Context, ids []kernel.UUID) ([]catalog.PageSize, error) {
	return findAll(ctx, r.db, "pageSize", ids,
		func(d PageSizeDTO) uuid.UUID { return d.ID }, PageSizeDTO.ToDomain)
}

func (r *GormCatalogRepository) GetPaperConfigs(ctx context.Context, ids []kernel.UUID) ([]catalog.PaperConfig, error) {
	return findAll(ctx, r.db, "paperConfig", ids,
		func(d PaperConfigDTO) uuid.UUID { return d.ID }, PaperConfigDTO.ToDomain)
}

func (r *GormCatalogRepository) GetCostItems(ctx context.Context, ids []kernel.UUID) ([]catalog.CostItem, error) {
	return findAll(ctx, r.db, "costItem", ids,
		func(d CostItemDTO) uuid.UUID { return d.ID }, CostItemDTO.ToDomain)
}

func (r *GormCatalogRepository) GetSheet(ctx context.Context, id kernel.UUID) (catalog.Sheet, error) {
	if err := id.Validate(); err != nil {
		return catalog.Sheet{}, err
	}

	var dto SheetDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Sheet{}, errs.NewObjectNotFoundError("sheet", id.String())
		}
		return catalog.Sheet{}, err
	}

	return dto.ToDomain()
}

// Product serves ports.ProductCatalog.
func (r *GormCatalogRepository) Product(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	return r.GetProduct(ctx, id)
}

// Sheet serves ports.ProductCatalog.
func (r *GormCatalogRepository) Sheet(ctx context.Context, id kernel.UUID) (catalog.Sheet, error) {
	return r.GetSheet(ctx, id)
}

func findAll[D any, T any](
	ctx context.Context,
	db *gorm.DB,
	param string,
	ids []kernel.UUID,
	idOf func(D) uuid.UUID,
	convert func(D) (T, error),
) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []D
	if err := db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]D, len(dtos))
	for _, dto := range dtos {
		byID[idOf(dto)] = dto
	}

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError(param, id.String())
		}
		v, err := convert(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
