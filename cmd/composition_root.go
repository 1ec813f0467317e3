package cmd

import (
	"log/slog"

	api "printflow/internal/adapters/in/http"
	"printflow/internal/adapters/out/postgres"
	"printflow/internal/adapters/out/postgres/catalogrepo"
	"printflow/internal/adapters/out/redis/catalogcache"
	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    ports.ProductCatalog
	files      ports.FileStorage
	optimizer  ports.PackingOptimizer
	pricing    services.PricingEngine
	batching   services.BatchEligibility
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	files ports.FileStorage,
	optimizer ports.PackingOptimizer,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogcache.New(rdb, catalogrepo.NewGormCatalogRepository(gormDB), cfg.CatalogCacheTTL, logger),
		files:      files,
		optimizer:  optimizer,
		pricing:    services.NewPricingEngine(),
		batching:   services.NewBatchEligibility(),
	}
}

// Handlers wires every use case the HTTP server dispatches to.
func (c *CompositionRoot) Handlers() api.Handlers {
	return api.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AssignOrder:       c.CreateAssignOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		UpdateQuantity:    c.CreateUpdateOrderQuantityCommandHandler(),
		UploadDesignFile:  commands.NewUploadDesignFileCommandHandler(c.files),
		CreateProduct:     c.CreateCreateProductCommandHandler(),
		AddCatalogOption:  c.CreateAddCatalogOptionCommandHandler(),
		SubmitBatch:       c.CreateSubmitBatchCommandHandler(),
		SubmitManualBatch: c.CreateSubmitManualBatchCommandHandler(),
		DeleteBatch:       c.CreateDeleteBatchCommandHandler(),
		UploadManualFile:  commands.NewUploadManualFileCommandHandler(c.files),

		ListOrdersByStatus: queries.NewListOrdersByStatusQueryHandler(c.gormDB),
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		ListCatalog:        queries.NewListCatalogQueryHandler(c.gormDB),
		ListEnumeration:    queries.NewListEnumerationQueryHandler(),
		GetFormSchema:      queries.NewGetFormSchemaQueryHandler(c.catalog),
		GetQuote:           queries.NewGetQuoteQueryHandler(c.catalog, c.pricing),
		ListBatches:        queries.NewListBatchesQueryHandler(c.gormDB),
		ListManualBatches:  queries.NewListManualBatchesQueryHandler(c.gormDB),
		GetBatch:           queries.NewGetBatchQueryHandler(c.gormDB),
		ExportBatch:        queries.NewExportBatchQueryHandler(c.gormDB),
		ListStaff:          queries.NewListStaffQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog, c.pricing)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderQuantityCommandHandler() commands.UpdateOrderQuantityCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderQuantityCommandHandler(f, c.pricing)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCatalogOptionCommandHandler() commands.AddCatalogOptionCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCatalogOptionCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitBatchCommandHandler() commands.SubmitBatchCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitBatchCommandHandler(f, c.catalog, c.optimizer, c.batching)
}

func (c *CompositionRoot) CreateSubmitManualBatchCommandHandler() commands.SubmitManualBatchCommandHandler {
	var f commands.ManualBatchUoWFactory = FuncManualBatchUoWFactory(func() commands.ManualBatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitManualBatchCommandHandler(f, c.files, c.batching)
}

func (c *CompositionRoot) CreateDeleteBatchCommandHandler() commands.DeleteBatchCommandHandler {
	var f commands.BatchRemovalUoWFactory = FuncBatchRemovalUoWFactory(func() commands.BatchRemovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrphanedOrdersQueryHandler() queries.ListOrphanedOrdersQueryHandler {
	return queries.NewListOrphanedOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncManualBatchUoWFactory func() commands.ManualBatchUoW

func (f FuncManualBatchUoWFactory) Create() commands.ManualBatchUoW {
	return f()
}

type FuncBatchRemovalUoWFactory func() commands.BatchRemovalUoW

func (f FuncBatchRemovalUoWFactory) Create() commands.BatchRemovalUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
