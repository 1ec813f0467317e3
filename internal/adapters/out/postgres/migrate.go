package postgres

import (
	"printflow/internal/adapters/out/postgres/batchrepo"
	"printflow/internal/adapters/out/postgres/catalogrepo"
	"printflow/internal/adapters/out/postgres/orderrepo"
	"printflow/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&catalogrepo.PageSizeDTO{},
		&catalogrepo.PaperConfigDTO{},
		&catalogrepo.CostItemDTO{},
		&catalogrepo.SheetDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&batchrepo.BatchDTO{},
		&batchrepo.ManualBatchDTO{},
	)
}

// Tables lists the tables Migrate manages, join tables included.
var Tables = []string{
	"users",
	"page_sizes",
	"paper_configs",
	"cost_items",
	"sheets",
	"products",
	"product_page_sizes",
	"product_paper_configs",
	"product_cost_items",
	"orders",
	"automation_batches",
	"manual_automation_batches",
}
