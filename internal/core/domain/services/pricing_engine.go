package services

import (
	"fmt"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// PricePrecision is the number of decimal places of an order total.
	PricePrecision int32 = 2
	// UnitPricePrecision keeps enough places for area based costs of small items.
	UnitPricePrecision int32 = 6
)

// Quote is the outcome of a price computation.
type Quote struct {
	Unit     decimal.Decimal
	Quantity int
	Total    decimal.Decimal
}

// PricingEngine computes order prices from catalog attributes:
//
//	unit  = basePrice + paper + size + side + Σ finishing
//	size  = width*height/10000 * areaRate (+ page size cost when a catalog size is chosen)
//	side  = doubleSideSurcharge for DOUBLE, 0 for SINGLE
//	total = round(quantity * unit, 2)
//
// The engine is pure: equal inputs always give equal quotes. Rounding is half
// away from zero.
//
// Example:
//
//	engine := services.NewPricingEngine()
//	quote, err := engine.Quote(product, selection, dims, 1000)
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// UnitPrice returns the per-copy price of a resolved selection.
func (e PricingEngine) UnitPrice(
	product *catalog.Product,
	selection catalog.Selection,
	dimensions kernel.Dimensions,
) (decimal.Decimal, error) {
	if err := product.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := dimensions.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := selection.Side.Validate(); err != nil {
		return decimal.Zero, err
	}

	pricing := product.Pricing()

	unit := pricing.BasePrice.Add(selection.Paper.AssociatedCost())

	unit = unit.Add(dimensions.NormalizedArea().Mul(pricing.AreaRate))
	if selection.Size != nil {
		unit = unit.Add(selection.Size.AssociatedCost())
	}

	if selection.Side == catalog.DoubleSide {
		unit = unit.Add(pricing.DoubleSideSurcharge)
	}

	for _, item := range selection.CostItems {
		unit = unit.Add(item.AssociatedCost())
	}

	return unit.Round(UnitPricePrecision), nil
}

// Total multiplies a unit price by a positive quantity and rounds to cents.
func (e PricingEngine) Total(unit decimal.Decimal, quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(
			catalog.FieldQuantity, fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unit.IsNegative() {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unit))
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity))).Round(PricePrecision), nil
}

// Quote prices quantity copies of a selection.
func (e PricingEngine) Quote(
	product *catalog.Product,
	selection catalog.Selection,
	dimensions kernel.Dimensions,
	quantity int,
) (Quote, error) {
	unit, err := e.UnitPrice(product, selection, dimensions)
	if err != nil {
		return Quote{}, err
	}

	total, err := e.Total(unit, quantity)
	if err != nil {
		return Quote{}, err
	}

	return Quote{Unit: unit, Quantity: quantity, Total: total}, nil
}
