// Package http exposes the printflow use cases as a JSON API under /api/v1.
package http

import (
	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/generated/servers"

	"github.com/google/uuid"
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	AssignOrder       commands.AssignOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	UpdateQuantity    commands.UpdateOrderQuantityCommandHandler
	UploadDesignFile  commands.UploadDesignFileCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	AddCatalogOption  commands.AddCatalogOptionCommandHandler
	SubmitBatch       commands.SubmitBatchCommandHandler
	SubmitManualBatch commands.SubmitManualBatchCommandHandler
	DeleteBatch       commands.DeleteBatchCommandHandler
	UploadManualFile  commands.UploadManualFileCommandHandler

	ListOrdersByStatus queries.ListOrdersByStatusQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	ListCatalog        queries.ListCatalogQueryHandler
	ListEnumeration    queries.ListEnumerationQueryHandler
	GetFormSchema      queries.GetFormSchemaQueryHandler
	GetQuote           queries.GetQuoteQueryHandler
	ListBatches        queries.ListBatchesQueryHandler
	ListManualBatches  queries.ListManualBatchesQueryHandler
	GetBatch           queries.GetBatchQueryHandler
	ExportBatch        queries.ExportBatchQueryHandler
	ListStaff          queries.ListStaffQueryHandler
}

// Server implements servers.ServerInterface. Every handler reads the caller's
// session, builds the command or query and renders the outcome in the envelope.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

var _ servers.ServerInterface = (*Server)(nil)

func toKernelID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
