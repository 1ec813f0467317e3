package commands

import (
	"context"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/ports"
)

type AddCatalogOptionCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddCatalogOptionCommandHandler(uowFactory CatalogUoWFactory) AddCatalogOptionCommandHandler {
	return AddCatalogOptionCommandHandler{uowFactory: uowFactory}
}

func (h *AddCatalogOptionCommandHandler) Handle(ctx context.Context, cmd AddCatalogOptionCommand) error {
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

	if err := h.add(ctx, uow.CatalogRepository(), cmd); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *AddCatalogOptionCommandHandler) add(ctx context.Context, repo ports.CatalogRepository, cmd AddCatalogOptionCommand) error {
	switch {
	case cmd.pageSize != nil:
		return repo.AddPageSize(ctx, *cmd.pageSize)
	case cmd.paper != nil:
		return repo.AddPaperConfig(ctx, *cmd.paper)
	case cmd.costItem != nil:
		return repo.AddCostItem(ctx, *cmd.costItem)
	default:
		return repo.AddSheet(ctx, *cmd.sheet)
	}
}
