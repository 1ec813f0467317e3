package commands

import (
	"context"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// SubmitManualBatchCommandHandler moves orders to MANUALLY_AUTOMATED and stores
// the manual batch. The layout file size is checked against the store before
// any row is locked.
type SubmitManualBatchCommandHandler struct {
	uowFactory  ManualBatchUoWFactory
	files       ports.FileStorage
	eligibility services.BatchEligibility
}

func NewSubmitManualBatchCommandHandler(
	uowFactory ManualBatchUoWFactory,
	files ports.FileStorage,
	eligibility services.BatchEligibility,
) SubmitManualBatchCommandHandler {
	return SubmitManualBatchCommandHandler{uowFactory: uowFactory, files: files, eligibility: eligibility}
}

func (h *SubmitManualBatchCommandHandler) Handle(ctx context.Context, cmd SubmitManualBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Session().Require("automate orders", access.Staff, access.Admin); err != nil {
		return err
	}

	info, err := h.files.Stat(ctx, cmd.FileURL())
	if err != nil {
		return err
	}
	if info.Size > automation.MaxManualFileSize {
		return errs.NewPayloadTooLargeError("automationFile", info.Size, automation.MaxManualFileSize)
	}

	ids := cmd.OrderIDs()
	batch, err := automation.NewManualBatch(cmd.BatchID(), cmd.Name(), cmd.Description(), ids, cmd.FileURL())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	locked, err := orderRepo.GetManyForUpdate(ctx, ids)
	if err != nil {
		return err
	}
	if err = h.eligibility.Check(ids, locked); err != nil {
		return err
	}

	for _, o := range h.eligibility.Ordered(ids, locked) {
		if err = o.AutomateManually(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.ManualAutomationRepository().Add(ctx, batch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
