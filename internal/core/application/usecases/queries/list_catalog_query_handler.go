package queries

import (
	"context"

	"gorm.io/gorm"
)

const (
	listProductsSQL = `
		SELECT
			p.id,
			p.name,
			p.description,
			p.category,
			p.base_price,
			p.area_rate,
			p.double_side_surcharge,
			ARRAY(SELECT j.page_size_id::text FROM product_page_sizes j WHERE j.product_id = p.id ORDER BY 1),
			ARRAY(SELECT j.paper_config_id::text FROM product_paper_configs j WHERE j.product_id = p.id ORDER BY 1),
			ARRAY(SELECT j.cost_item_id::text FROM product_cost_items j WHERE j.product_id = p.id ORDER BY 1)
		FROM products p
		ORDER BY p.name, p.id`
	listPageSizesSQL    = `SELECT id, name, width, height, applicability, associated_cost FROM page_sizes ORDER BY name, id`
	listPaperConfigsSQL = `SELECT id, type, gsm, applicability, associated_cost FROM paper_configs ORDER BY type, gsm, id`
	listCostItemsSQL    = `SELECT id, type, value, applicability, associated_cost FROM cost_items ORDER BY type, value, id`
	listSheetsSQL       = `SELECT id, name, width, height FROM sheets ORDER BY name, id`
)

// ListCatalogQueryHandler lists products, page sizes, paper configs, cost
// items and sheets straight from the catalog tables.
//
// Example:
//
//	handler := NewListCatalogQueryHandler(db)
//	query, _ := NewListQuery(session)
//	sizes, err := handler.PageSizes(ctx, query)
type ListCatalogQueryHandler struct {
	db *gorm.DB
}

func NewListCatalogQueryHandler(db *gorm.DB) ListCatalogQueryHandler {
	return ListCatalogQueryHandler{db: db}
}

func (h ListCatalogQueryHandler) Products(ctx context.Context, query ListQuery) ([]ProductView, error) {
	return listCatalog(ctx, h.db, query, listProductsSQL, scanProduct)
}

func (h ListCatalogQueryHandler) PageSizes(ctx context.Context, query ListQuery) ([]PageSizeView, error) {
	return listCatalog(ctx, h.db, query, listPageSizesSQL, scanPageSize)
}

func (h ListCatalogQueryHandler) PaperConfigs(ctx context.Context, query ListQuery) ([]PaperConfigView, error) {
	return listCatalog(ctx, h.db, query, listPaperConfigsSQL, scanPaperConfig)
}

func (h ListCatalogQueryHandler) CostItems(ctx context.Context, query ListQuery) ([]CostItemView, error) {
	return listCatalog(ctx, h.db, query, listCostItemsSQL, scanCostItem)
}

func (h ListCatalogQueryHandler) Sheets(ctx context.Context, query ListQuery) ([]SheetView, error) {
	return listCatalog(ctx, h.db, query, listSheetsSQL, scanSheet)
}

func listCatalog[T any](
	ctx context.Context,
	db *gorm.DB,
	query ListQuery,
	stmt string,
	scan func(rowScanner) (T, error),
) ([]T, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(stmt).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows, scan)
}
