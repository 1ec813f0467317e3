package catalog

import (
	"errors"
	"fmt"
	"strings"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPageSizeIsNotConstructed    = errors.New("PageSize must be created via NewPageSize constructor")
	ErrPaperConfigIsNotConstructed = errors.New("PaperConfig must be created via NewPaperConfig constructor")
	ErrCostItemIsNotConstructed    = errors.New("CostItem must be created via NewCostItem constructor")
	ErrSheetIsNotConstructed       = errors.New("Sheet must be created via NewSheet constructor")
)

// PageSize is a named finished size. AssociatedCost is added per unit when an
// order selects it.
type PageSize struct {
	id             kernel.UUID
	name           string
	dimensions     kernel.Dimensions
	applicability  Applicability
	associatedCost decimal.Decimal
	guard          guard.ConstructorGuard
}

func NewPageSize(
	id kernel.UUID,
	name string,
	dimensions kernel.Dimensions,
	applicability Applicability,
	associatedCost decimal.Decimal,
) (PageSize, error) {
	if err := errors.Join(
		id.Validate(),
		requireText("name", name),
		dimensions.Validate(),
		applicability.Validate(),
		requireNonNegative("associatedCost", associatedCost),
	); err != nil {
		return PageSize{}, err
	}

	return PageSize{
		id:             id,
		name:           strings.TrimSpace(name),
		dimensions:     dimensions,
		applicability:  applicability,
		associatedCost: associatedCost,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (p PageSize) Validate() error { return p.guard.Validate(ErrPageSizeIsNotConstructed) }
func (p PageSize) ID() kernel.UUID { return p.id }
func (p PageSize) Name() string { return p.name }
func (p PageSize) Dimensions() kernel.Dimensions { return p.dimensions }
func (p PageSize) Applicability() Applicability { return p.applicability }
func (p PageSize) AssociatedCost() decimal.Decimal { return p.associatedCost }

// PaperConfig is a stock type at a grammage. AssociatedCost is the per unit paper cost.
type PaperConfig struct {
	id             kernel.UUID
	paperType      string
	gsm            int
	applicability  Applicability
	associatedCost decimal.Decimal
	guard          guard.ConstructorGuard
}

const maxGSM = 1000

func NewPaperConfig(
	id kernel.UUID,
	paperType string,
	gsm int,
	applicability Applicability,
	associatedCost decimal.Decimal,
) (PaperConfig, error) {
	var gsmErr error
	if gsm < 1 || gsm > maxGSM {
		gsmErr = errs.NewValueIsOutOfRangeError("gsm", gsm, 1, maxGSM)
	}

	if err := errors.Join(
		id.Validate(),
		requireText("type", paperType),
		gsmErr,
		applicability.Validate(),
		requireNonNegative("associatedCost", associatedCost),
	); err != nil {
		return PaperConfig{}, err
	}

	return PaperConfig{
		id:             id,
		paperType:      strings.TrimSpace(paperType),
		gsm:            gsm,
		applicability:  applicability,
		associatedCost: associatedCost,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (p PaperConfig) Validate() error { return p.guard.Validate(ErrPaperConfigIsNotConstructed) }
func (p PaperConfig) ID() kernel.UUID { return p.id }
func (p PaperConfig) Type() string { return p.paperType }
func (p PaperConfig) GSM() int { return p.gsm }
func (p PaperConfig) Applicability() Applicability { return p.applicability }
func (p PaperConfig) AssociatedCost() decimal.Decimal { return p.associatedCost }

// Label is the "type-gsm" notation used on order forms, e.g. "Art Paper-300".
func (p PaperConfig) Label() string {
	return fmt.Sprintf("%s-%d", p.paperType, p.gsm)
}

// CostItem is one priced finishing option such as LAMINATION=MATT.
type CostItem struct {
	id             kernel.UUID
	itemType       CostItemType
	value          string
	applicability  Applicability
	associatedCost decimal.Decimal
	guard          guard.ConstructorGuard
}

func NewCostItem(
	id kernel.UUID,
	itemType CostItemType,
	value string,
	applicability Applicability,
	associatedCost decimal.Decimal,
) (CostItem, error) {
	if err := errors.Join(
		id.Validate(),
		itemType.Validate(),
		requireText("value", value),
		applicability.Validate(),
		requireNonNegative("associatedCost", associatedCost),
	); err != nil {
		return CostItem{}, err
	}

	return CostItem{
		id:             id,
		itemType:       itemType,
		value:          strings.TrimSpace(value),
		applicability:  applicability,
		associatedCost: associatedCost,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CostItem) Validate() error { return c.guard.Validate(ErrCostItemIsNotConstructed) }
func (c CostItem) ID() kernel.UUID { return c.id }
func (c CostItem) Type() CostItemType { return c.itemType }
func (c CostItem) Value() string { return c.value }
func (c CostItem) Applicability() Applicability { return c.applicability }
func (c CostItem) AssociatedCost() decimal.Decimal { return c.associatedCost }

// Sheet is the physical stock a packing layout is computed on.
type Sheet struct {
	id         kernel.UUID
	name       string
	dimensions kernel.Dimensions
	guard      guard.ConstructorGuard
}

func NewSheet(id kernel.UUID, name string, dimensions kernel.Dimensions) (Sheet, error) {
	if err := errors.Join(id.Validate(), requireText("name", name), dimensions.Validate()); err != nil {
		return Sheet{}, err
	}

	return Sheet{
		id:         id,
		name:       strings.TrimSpace(name),
		dimensions: dimensions,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (s Sheet) Validate() error { return s.guard.Validate(ErrSheetIsNotConstructed) }
func (s Sheet) ID() kernel.UUID { return s.id }
func (s Sheet) Name() string { return s.name }
func (s Sheet) Dimensions() kernel.Dimensions { return s.dimensions }

func requireText(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func requireNonNegative(param string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is negative", value))
	}
	return nil
}
