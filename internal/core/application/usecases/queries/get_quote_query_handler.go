package queries

import (
	"context"

	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type QuoteView struct {
	ProductID string          `json:"productId"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// GetQuoteQueryHandler runs the same pricing as order creation, so a quote
// matches the price the order would be stored with.
type GetQuoteQueryHandler struct {
	catalog ports.ProductCatalog
	pricing services.PricingEngine
}

func NewGetQuoteQueryHandler(catalog ports.ProductCatalog, pricing services.PricingEngine) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{catalog: catalog, pricing: pricing}
}

func (h GetQuoteQueryHandler) Handle(ctx context.Context, query GetQuoteQuery) (QuoteView, error) {
	if err := query.Validate(); err != nil {
		return QuoteView{}, err
	}

	product, err := h.catalog.Product(ctx, query.ProductID())
	if err != nil {
		return QuoteView{}, err
	}

	selection, err := product.Select(query.Choice())
	if err != nil {
		return QuoteView{}, errs.NewValidationErrorFrom(err)
	}

	quote, err := h.pricing.Quote(product, selection, query.Dimensions(), query.Quantity())
	if err != nil {
		return QuoteView{}, errs.NewValidationErrorFrom(err)
	}

	return QuoteView{
		ProductID: product.ID().String(),
		UnitPrice: quote.Unit,
		Quantity:  quote.Quantity,
		Price:     quote.Total,
	}, nil
}
