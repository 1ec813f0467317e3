package commands

import (
	"errors"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/pkg/guard"
)

var ErrAddCatalogOptionCommandIsNotConstructed = errors.New(
	"AddCatalogOptionCommand must be created via one of the NewAdd*Command constructors",
)

// AddCatalogOptionCommand stores one catalog option. Exactly one of the option
// fields is set, depending on the constructor used.
type AddCatalogOptionCommand struct { //nolint:recvcheck //using for validation
	session  access.Session
	pageSize *catalog.PageSize
	paper    *catalog.PaperConfig
	costItem *catalog.CostItem
	sheet    *catalog.Sheet

	guard guard.ConstructorGuard
}

func NewAddPageSizeCommand(session access.Session, size catalog.PageSize) (AddCatalogOptionCommand, error) {
	if err := errors.Join(session.Validate(), size.Validate()); err != nil {
		return AddCatalogOptionCommand{}, err
	}
	return AddCatalogOptionCommand{session: session, pageSize: &size, guard: guard.NewConstructorGuard()}, nil
}

func NewAddPaperConfigCommand(session access.Session, paper catalog.PaperConfig) (AddCatalogOptionCommand, error) {
	if err := errors.Join(session.Validate(), paper.Validate()); err != nil {
		return AddCatalogOptionCommand{}, err
	}
	return AddCatalogOptionCommand{session: session, paper: &paper, guard: guard.NewConstructorGuard()}, nil
}

func NewAddCostItemCommand(session access.Session, item catalog.CostItem) (AddCatalogOptionCommand, error) {
	if err := errors.Join(session.Validate(), item.Validate()); err != nil {
		return AddCatalogOptionCommand{}, err
	}
	return AddCatalogOptionCommand{session: session, costItem: &item, guard: guard.NewConstructorGuard()}, nil
}

func NewAddSheetCommand(session access.Session, sheet catalog.Sheet) (AddCatalogOptionCommand, error) {
	if err := errors.Join(session.Validate(), sheet.Validate()); err != nil {
		return AddCatalogOptionCommand{}, err
	}
	return AddCatalogOptionCommand{session: session, sheet: &sheet, guard: guard.NewConstructorGuard()}, nil
}

func (c AddCatalogOptionCommand) Validate() error {
	return c.guard.Validate(ErrAddCatalogOptionCommandIsNotConstructed)
}

func (c AddCatalogOptionCommand) Session() access.Session { return c.session }
