package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// CreateOrderCommandHandler validates an order form against the product's
// schema, prices it and stores it as PENDING.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, productCatalog, services.NewPricingEngine())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	pricing    services.PricingEngine
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	pricing services.PricingEngine,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		pricing:    pricing,
	}
}

// Handle fails with errs.ValidationError listing every problem of the form,
// or errs.ObjectNotFoundError when the product does not exist.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := h.catalog.Product(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	newOrder, err := h.buildOrder(cmd, product)
	if err != nil {
		return errs.NewValidationErrorFrom(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateOrderCommandHandler) buildOrder(cmd CreateOrderCommand, product *catalog.Product) (*order.Order, error) {
	values := cmd.Values()
	if strings.TrimSpace(values[catalog.FieldProductName]) == "" {
		values[catalog.FieldProductName] = product.Name()
	}

	form := parseOrderForm(values)
	if err := errors.Join(product.FormSchema().Validate(values), form.err()); err != nil {
		return nil, err
	}

	selection, err := product.Select(form.choice)
	if err != nil {
		return nil, err
	}

	params := order.DetailsFromSelection(product, selection)
	params.Dimensions = form.dimensions
	params.Quantity = form.quantity
	params.Quality = form.quality
	params.AdditionalNote = values[catalog.FieldAdditionalNote]
	params.FileURL = values[catalog.FieldFileURL]
	params.DeliveryDate = cmd.DeliveryDate()

	details, err := order.NewDetails(params)
	if err != nil {
		return nil, err
	}

	quote, err := h.pricing.Quote(product, selection, form.dimensions, form.quantity)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(cmd.OrderID(), cmd.Session().UserID(), details, quote.Unit, quote.Total)
}

// orderForm is the typed content of an order form. Blank fields are left at
// their zero value; the schema reports them as missing.
type orderForm struct {
	choice     catalog.Choice
	dimensions kernel.Dimensions
	quantity   int
	quality    int
	problems   []error
}

func parseOrderForm(values catalog.FormValues) orderForm {
	var f orderForm

	width := f.positiveInt(values, catalog.FieldWidth)
	height := f.positiveInt(values, catalog.FieldHeight)
	f.quantity = f.positiveInt(values, catalog.FieldQuantity)
	f.quality = f.positiveInt(values, catalog.FieldQuality)

	if width > 0 && height > 0 {
		dims, err := kernel.NewDimensions(kernel.Millimeters(width), kernel.Millimeters(height))
		if err != nil {
			f.problems = append(f.problems, err)
		}
		f.dimensions = dims
	}

	if raw := strings.TrimSpace(values[catalog.FieldPageSize]); raw != "" {
		if id, err := kernel.UUIDFromString(raw); err == nil {
			f.choice.PageSizeID = &id
		}
	}
	if raw := strings.TrimSpace(values[catalog.FieldPaperConfig]); raw != "" {
		if id, err := kernel.UUIDFromString(raw); err == nil {
			f.choice.PaperConfigID = id
		}
	}
	if raw := strings.TrimSpace(values[catalog.FieldPrintingSide]); raw != "" {
		if side, err := catalog.ParsePrintingSide(raw); err == nil {
			f.choice.Side = side
		}
	}

	f.choice.Finishing = make(map[catalog.CostItemType]string)
	for _, t := range catalog.CostItemTypes() {
		if v := strings.TrimSpace(values[t.FieldName()]); v != "" {
			f.choice.Finishing[t] = v
		}
	}

	return f
}

func (f *orderForm) positiveInt(values catalog.FormValues, field string) int {
	raw := strings.TrimSpace(values[field])
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		f.problems = append(f.problems, errs.NewValueIsInvalidErrorWithCause(
			field, fmt.Errorf("%q is not a positive integer", raw)))
		return 0
	}
	return n
}

func (f orderForm) err() error {
	return errors.Join(f.problems...)
}
