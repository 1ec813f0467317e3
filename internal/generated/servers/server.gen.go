// Package servers holds the echo bindings for openapi.yaml.
package servers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi.yaml. Path parameters
// arrive bound and typed.
type ServerInterface interface {
	// (GET /products/product)
	ListProducts(ctx echo.Context) error
	// (POST /products/product)
	CreateProduct(ctx echo.Context) error
	// (GET /products/product/:id/form-schema)
	GetFormSchema(ctx echo.Context, id uuid.UUID) error
	// (POST /products/product/:id/quote)
	GetQuote(ctx echo.Context, id uuid.UUID) error
	// (GET /products/page-size)
	ListPageSizes(ctx echo.Context) error
	// (POST /products/page-size)
	CreatePageSize(ctx echo.Context) error
	// (GET /products/paper-config)
	ListPaperConfigs(ctx echo.Context) error
	// (POST /products/paper-config)
	CreatePaperConfig(ctx echo.Context) error
	// (GET /products/cost-item)
	ListCostItems(ctx echo.Context) error
	// (POST /products/cost-item)
	CreateCostItem(ctx echo.Context) error
	// (GET /products/cost-item/enums)
	ListCostItemTypes(ctx echo.Context) error
	// (GET /products/applicability)
	ListApplicabilities(ctx echo.Context) error
	// (GET /products/sheets)
	ListSheets(ctx echo.Context) error
	// (POST /products/sheets)
	CreateSheet(ctx echo.Context) error
	// (POST /order)
	CreateOrder(ctx echo.Context) error
	// (POST /order/upload)
	UploadDesignFile(ctx echo.Context) error
	// (GET /order/status/:status)
	ListOrdersByStatus(ctx echo.Context, status string) error
	// (GET /order/:id)
	GetOrder(ctx echo.Context, id uuid.UUID) error
	// (DELETE /order/:id)
	DeleteOrder(ctx echo.Context, id uuid.UUID) error
	// (PATCH /order/:id/assign)
	AssignOrder(ctx echo.Context, id uuid.UUID) error
	// (PATCH /order/:id/approve)
	ApproveOrder(ctx echo.Context, id uuid.UUID) error
	// (PATCH /order/:id/quantity)
	UpdateOrderQuantity(ctx echo.Context, id uuid.UUID) error
	// (PATCH /order/:id/cancel)
	CancelOrder(ctx echo.Context, id uuid.UUID) error
	// (PATCH /order/:id/complete)
	CompleteOrder(ctx echo.Context, id uuid.UUID) error
	// (GET /automate)
	ListBatches(ctx echo.Context) error
	// (POST /automate)
	SubmitBatch(ctx echo.Context) error
	// (GET /automate/algorithms)
	ListAlgorithms(ctx echo.Context) error
	// (GET /automate/manual)
	ListManualBatches(ctx echo.Context) error
	// (POST /automate/manual)
	SubmitManualBatch(ctx echo.Context) error
	// (POST /automate/manual/upload)
	UploadManualFile(ctx echo.Context) error
	// (DELETE /automate/manual/:id)
	DeleteManualBatch(ctx echo.Context, id uuid.UUID) error
	// (GET /automate/:id)
	GetBatch(ctx echo.Context, id uuid.UUID) error
	// (DELETE /automate/:id)
	DeleteBatch(ctx echo.Context, id uuid.UUID) error
	// (GET /automate/:id/export)
	ExportBatch(ctx echo.Context, id uuid.UUID) error
	// (GET /user/staff)
	ListStaff(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path parameters and forwards to the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	return w.Handler.ListProducts(ctx)
}

func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

func (w *ServerInterfaceWrapper) GetFormSchema(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetFormSchema(ctx, id)
}

func (w *ServerInterfaceWrapper) GetQuote(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetQuote(ctx, id)
}

func (w *ServerInterfaceWrapper) ListPageSizes(ctx echo.Context) error {
	return w.Handler.ListPageSizes(ctx)
}

func (w *ServerInterfaceWrapper) CreatePageSize(ctx echo.Context) error {
	return w.Handler.CreatePageSize(ctx)
}

func (w *ServerInterfaceWrapper) ListPaperConfigs(ctx echo.Context) error {
	return w.Handler.ListPaperConfigs(ctx)
}

func (w *ServerInterfaceWrapper) CreatePaperConfig(ctx echo.Context) error {
	return w.Handler.CreatePaperConfig(ctx)
}

func (w *ServerInterfaceWrapper) ListCostItems(ctx echo.Context) error {
	return w.Handler.ListCostItems(ctx)
}

func (w *ServerInterfaceWrapper) CreateCostItem(ctx echo.Context) error {
	return w.Handler.CreateCostItem(ctx)
}

func (w *ServerInterfaceWrapper) ListCostItemTypes(ctx echo.Context) error {
	return w.Handler.ListCostItemTypes(ctx)
}

func (w *ServerInterfaceWrapper) ListApplicabilities(ctx echo.Context) error {
	return w.Handler.ListApplicabilities(ctx)
}

func (w *ServerInterfaceWrapper) ListSheets(ctx echo.Context) error {
	return w.Handler.ListSheets(ctx)
}

func (w *ServerInterfaceWrapper) CreateSheet(ctx echo.Context) error {
	return w.Handler.CreateSheet(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) UploadDesignFile(ctx echo.Context) error {
	return w.Handler.UploadDesignFile(ctx)
}

func (w *ServerInterfaceWrapper) ListOrdersByStatus(ctx echo.Context) error {
	var err error

	var status string
	err = runtime.BindStyledParameterWithOptions("simple", "status", ctx.Param("status"), &status, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListOrdersByStatus(ctx, status)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.DeleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) AssignOrder(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.AssignOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ApproveOrder(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.ApproveOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrderQuantity(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.UpdateOrderQuantity(ctx, id)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.CancelOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.CompleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ListBatches(ctx echo.Context) error {
	return w.Handler.ListBatches(ctx)
}

func (w *ServerInterfaceWrapper) SubmitBatch(ctx echo.Context) error {
	return w.Handler.SubmitBatch(ctx)
}

func (w *ServerInterfaceWrapper) ListAlgorithms(ctx echo.Context) error {
	return w.Handler.ListAlgorithms(ctx)
}

func (w *ServerInterfaceWrapper) ListManualBatches(ctx echo.Context) error {
	return w.Handler.ListManualBatches(ctx)
}

func (w *ServerInterfaceWrapper) SubmitManualBatch(ctx echo.Context) error {
	return w.Handler.SubmitManualBatch(ctx)
}

func (w *ServerInterfaceWrapper) UploadManualFile(ctx echo.Context) error {
	return w.Handler.UploadManualFile(ctx)
}

func (w *ServerInterfaceWrapper) DeleteManualBatch(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.DeleteManualBatch(ctx, id)
}

func (w *ServerInterfaceWrapper) GetBatch(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetBatch(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteBatch(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.DeleteBatch(ctx, id)
}

func (w *ServerInterfaceWrapper) ExportBatch(ctx echo.Context) error {
	var err error

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.ExportBatch(ctx, id)
}

func (w *ServerInterfaceWrapper) ListStaff(ctx echo.Context) error {
	return w.Handler.ListStaff(ctx)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every route to router under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/products/product", wrapper.ListProducts)
	router.POST(baseURL+"/products/product", wrapper.CreateProduct)
	router.GET(baseURL+"/products/product/:id/form-schema", wrapper.GetFormSchema)
	router.POST(baseURL+"/products/product/:id/quote", wrapper.GetQuote)
	router.GET(baseURL+"/products/page-size", wrapper.ListPageSizes)
	router.POST(baseURL+"/products/page-size", wrapper.CreatePageSize)
	router.GET(baseURL+"/products/paper-config", wrapper.ListPaperConfigs)
	router.POST(baseURL+"/products/paper-config", wrapper.CreatePaperConfig)
	router.GET(baseURL+"/products/cost-item", wrapper.ListCostItems)
	router.POST(baseURL+"/products/cost-item", wrapper.CreateCostItem)
	router.GET(baseURL+"/products/cost-item/enums", wrapper.ListCostItemTypes)
	router.GET(baseURL+"/products/applicability", wrapper.ListApplicabilities)
	router.GET(baseURL+"/products/sheets", wrapper.ListSheets)
	router.POST(baseURL+"/products/sheets", wrapper.CreateSheet)
	router.POST(baseURL+"/order", wrapper.CreateOrder)
	router.POST(baseURL+"/order/upload", wrapper.UploadDesignFile)
	router.GET(baseURL+"/order/status/:status", wrapper.ListOrdersByStatus)
	router.GET(baseURL+"/order/:id", wrapper.GetOrder)
	router.DELETE(baseURL+"/order/:id", wrapper.DeleteOrder)
	router.PATCH(baseURL+"/order/:id/assign", wrapper.AssignOrder)
	router.PATCH(baseURL+"/order/:id/approve", wrapper.ApproveOrder)
	router.PATCH(baseURL+"/order/:id/quantity", wrapper.UpdateOrderQuantity)
	router.PATCH(baseURL+"/order/:id/cancel", wrapper.CancelOrder)
	router.PATCH(baseURL+"/order/:id/complete", wrapper.CompleteOrder)
	router.GET(baseURL+"/automate", wrapper.ListBatches)
	router.POST(baseURL+"/automate", wrapper.SubmitBatch)
	router.GET(baseURL+"/automate/algorithms", wrapper.ListAlgorithms)
	router.GET(baseURL+"/automate/manual", wrapper.ListManualBatches)
	router.POST(baseURL+"/automate/manual", wrapper.SubmitManualBatch)
	router.POST(baseURL+"/automate/manual/upload", wrapper.UploadManualFile)
	router.DELETE(baseURL+"/automate/manual/:id", wrapper.DeleteManualBatch)
	router.GET(baseURL+"/automate/:id", wrapper.GetBatch)
	router.DELETE(baseURL+"/automate/:id", wrapper.DeleteBatch)
	router.GET(baseURL+"/automate/:id/export", wrapper.ExportBatch)
	router.GET(baseURL+"/user/staff", wrapper.ListStaff)
}
