package catalog

import (
	"errors"
	"fmt"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// Choice is what an order picks from a product, by reference.
type Choice struct {
	PageSizeID    *kernel.UUID
	PaperConfigID kernel.UUID
	Side          PrintingSide
	Finishing     map[CostItemType]string
}

// Selection is a Choice resolved against a product: the catalog entries the
// pricing engine consumes.
type Selection struct {
	Size      *PageSize
	Paper     PaperConfig
	Side      PrintingSide
	CostItems []CostItem
}

// Select resolves a choice. Every referenced size, paper and finishing option
// must belong to the product; all violations are reported together.
func (p *Product) Select(choice Choice) (Selection, error) {
	var (
		selection Selection
		problems  []error
	)

	if choice.PageSizeID != nil {
		size, ok := p.Size(*choice.PageSizeID)
		if ok {
			selection.Size = &size
		} else {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				FieldPageSize,
				fmt.Errorf("size %s is not available for %s", choice.PageSizeID, p.name),
			))
		}
	}

	if err := choice.PaperConfigID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredError(FieldPaperConfig))
	} else if paper, ok := p.Paper(choice.PaperConfigID); ok {
		selection.Paper = paper
	} else {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			FieldPaperConfig,
			fmt.Errorf("paper %s is not available for %s", choice.PaperConfigID, p.name),
		))
	}

	if err := choice.Side.Validate(); err != nil {
		problems = append(problems, err)
	} else {
		selection.Side = choice.Side
	}

	items, err := p.ResolveFinishing(choice.Finishing)
	if err != nil {
		problems = append(problems, err)
	}
	selection.CostItems = items

	if err = errors.Join(problems...); err != nil {
		return Selection{}, err
	}
	return selection, nil
}
