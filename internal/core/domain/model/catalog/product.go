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

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// ProductPricing holds the per unit rates of a product.
//
// AreaRate is applied to the normalized area (width*height/10000) of the ordered
// item; DoubleSideSurcharge is added per unit for double sided printing.
type ProductPricing struct {
	BasePrice           decimal.Decimal
	AreaRate            decimal.Decimal
	DoubleSideSurcharge decimal.Decimal
}

func (p ProductPricing) validate() error {
	return errors.Join(
		requireNonNegative("basePrice", p.BasePrice),
		requireNonNegative("areaRate", p.AreaRate),
		requireNonNegative("doubleSideSurcharge", p.DoubleSideSurcharge),
	)
}

// Product is a sellable print product together with the sizes, papers and
// finishing options it can be ordered with.
//
// Invariants:
//   - at least one size and one paper
//   - no option attached twice
//   - every option's applicability covers the product category
type Product struct {
	id          kernel.UUID
	name        string
	description string
	category    Applicability
	pricing     ProductPricing
	sizes       []PageSize
	papers      []PaperConfig
	costItems   []CostItem
	guard       guard.ConstructorGuard
}

func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	category Applicability,
	pricing ProductPricing,
	sizes []PageSize,
	papers []PaperConfig,
	costItems []CostItem,
) (*Product, error) {
	p := &Product{
		description: strings.TrimSpace(description),
		pricing:     pricing,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		pricing.validate(),
	); err != nil {
		return nil, err
	}

	if err := errors.Join(
		p.setSizes(sizes),
		p.setPapers(papers),
		p.setCostItems(costItems),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Category() Applicability { return p.category }
func (p *Product) Pricing() ProductPricing { return p.pricing }
func (p *Product) AvailableSizes() []PageSize { return append([]PageSize(nil), p.sizes...) }
func (p *Product) AvailablePapers() []PaperConfig { return append([]PaperConfig(nil), p.papers...) }
func (p *Product) CostItems() []CostItem { return append([]CostItem(nil), p.costItems...) }

// Size returns the attached page size with the given id.
func (p *Product) Size(id kernel.UUID) (PageSize, bool) {
	for _, s := range p.sizes {
		if s.ID().IsEqual(id) {
			return s, true
		}
	}
	return PageSize{}, false
}

// Paper returns the attached paper config with the given id.
func (p *Product) Paper(id kernel.UUID) (PaperConfig, bool) {
	for _, paper := range p.papers {
		if paper.ID().IsEqual(id) {
			return paper, true
		}
	}
	return PaperConfig{}, false
}

// OptionsOf returns the cost items of one type, in attachment order.
func (p *Product) OptionsOf(t CostItemType) []CostItem {
	options := make([]CostItem, 0)
	for _, item := range p.costItems {
		if item.Type() == t {
			options = append(options, item)
		}
	}
	return options
}

// OfferedTypes returns the finishing types the product defines, in CostItemTypes order.
func (p *Product) OfferedTypes() []CostItemType {
	offered := make([]CostItemType, 0)
	for _, t := range CostItemTypes() {
		if len(p.OptionsOf(t)) > 0 {
			offered = append(offered, t)
		}
	}
	return offered
}

// ResolveFinishing turns an order's finishing selections into cost items.
//
// A selection is only accepted for a type the product offers and only with one
// of that type's values. A type offered with exactly one value is selected
// implicitly; any other offered type left unselected is a missing field.
func (p *Product) ResolveFinishing(selections map[CostItemType]string) ([]CostItem, error) {
	var problems []error

	for t := range selections {
		if err := t.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	for _, t := range CostItemTypes() {
		if strings.TrimSpace(selections[t]) != "" && len(p.OptionsOf(t)) == 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				t.FieldName(),
				fmt.Errorf("%s finishing is not offered for %s", t, p.name),
			))
		}
	}

	resolved := make([]CostItem, 0)
	for _, t := range p.OfferedTypes() {
		options := p.OptionsOf(t)
		value := strings.TrimSpace(selections[t])

		if value == "" {
			if len(options) == 1 {
				resolved = append(resolved, options[0])
				continue
			}
			problems = append(problems, errs.NewValueIsRequiredError(t.FieldName()))
			continue
		}

		item, ok := findOption(options, value)
		if !ok {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				t.FieldName(),
				fmt.Errorf("%q is not a %s option of %s", value, t, p.name),
			))
			continue
		}
		resolved = append(resolved, item)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return resolved, nil
}

func findOption(options []CostItem, value string) (CostItem, bool) {
	for _, o := range options {
		if strings.EqualFold(o.Value(), value) {
			return o, true
		}
	}
	return CostItem{}, false
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if err := requireText("name", name); err != nil {
		return err
	}
	p.name = strings.TrimSpace(name)
	return nil
}

func (p *Product) setCategory(category Applicability) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) setSizes(sizes []PageSize) error {
	if len(sizes) == 0 {
		return errs.NewValueIsRequiredError("availableSizes")
	}

	seen := make(map[kernel.UUID]struct{}, len(sizes))
	for _, s := range sizes {
		if err := s.Validate(); err != nil {
			return err
		}
		if err := p.checkAttachment("availableSizes", s.ID(), s.Name(), s.Applicability(), seen); err != nil {
			return err
		}
	}
	p.sizes = append([]PageSize(nil), sizes...)
	return nil
}

func (p *Product) setPapers(papers []PaperConfig) error {
	if len(papers) == 0 {
		return errs.NewValueIsRequiredError("availablePapers")
	}

	seen := make(map[kernel.UUID]struct{}, len(papers))
	for _, paper := range papers {
		if err := paper.Validate(); err != nil {
			return err
		}
		if err := p.checkAttachment("availablePapers", paper.ID(), paper.Label(), paper.Applicability(), seen); err != nil {
			return err
		}
	}
	p.papers = append([]PaperConfig(nil), papers...)
	return nil
}

func (p *Product) setCostItems(items []CostItem) error {
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		label := item.Type().String() + "=" + item.Value()
		if err := p.checkAttachment("costItems", item.ID(), label, item.Applicability(), seen); err != nil {
			return err
		}
	}
	p.costItems = append([]CostItem(nil), items...)
	return nil
}

func (p *Product) checkAttachment(
	param string,
	id kernel.UUID,
	label string,
	applicability Applicability,
	seen map[kernel.UUID]struct{},
) error {
	if _, dup := seen[id]; dup {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is attached twice", label))
	}
	seen[id] = struct{}{}

	if !applicability.Covers(p.category) {
		return errs.NewValueIsInvalidErrorWithCause(
			param,
			fmt.Errorf("%s is tagged %s and does not apply to %s", label, applicability, p.category),
		)
	}
	return nil
}
