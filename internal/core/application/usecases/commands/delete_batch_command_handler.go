package commands

import (
	"context"

	"printflow/internal/core/domain/model/access"
)

type DeleteBatchCommandHandler struct {
	uowFactory BatchRemovalUoWFactory
}

func NewDeleteBatchCommandHandler(uowFactory BatchRemovalUoWFactory) DeleteBatchCommandHandler {
	return DeleteBatchCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteBatchCommandHandler) Handle(ctx context.Context, cmd DeleteBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Session().Require("delete batches", access.Admin); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var err error
	if cmd.Kind() == ManualBatch {
		err = uow.ManualAutomationRepository().Delete(ctx, cmd.BatchID())
	} else {
		err = uow.AutomationRepository().Delete(ctx, cmd.BatchID())
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
