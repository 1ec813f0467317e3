package commands

import (
	"context"
	"errors"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/pkg/errs"
)

// CreateProductCommandHandler resolves the referenced options and stores the
// product. Unknown option ids and applicability mismatches are reported as
// validation errors.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Session().Require("manage the catalog", access.Admin); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CatalogRepository()
	sizes, err := repo.GetPageSizes(ctx, cmd.SizeIDs())
	if err != nil {
		return unknownOption("availableSizes", err)
	}
	papers, err := repo.GetPaperConfigs(ctx, cmd.PaperIDs())
	if err != nil {
		return unknownOption("availablePapers", err)
	}
	items, err := repo.GetCostItems(ctx, cmd.CostItemIDs())
	if err != nil {
		return unknownOption("costItems", err)
	}

	product, err := catalog.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Category(),
		cmd.Pricing(),
		sizes,
		papers,
		items,
	)
	if err != nil {
		return errs.NewValidationErrorFrom(err)
	}

	if err = repo.AddProduct(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// unknownOption turns a missing reference into a field issue and passes any
// other failure through.
func unknownOption(field string, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return errs.NewValidationError(errs.FieldIssue{
			Field:  field,
			Reason: notFound.Error(),
		})
	}
	return err
}
