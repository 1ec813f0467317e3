package commands

import (
	"context"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// SubmitBatchCommandHandler runs the optimizer path of batch automation.
//
// The orders are read without locks first so that ineligible batches and
// optimizer failures never open a transaction. Only after the optimizer has
// answered are the rows locked, checked again and moved to AUTOMATED together
// with the insert of the batch.
type SubmitBatchCommandHandler struct {
	uowFactory  BatchUoWFactory
	catalog     ports.ProductCatalog
	optimizer   ports.PackingOptimizer
	eligibility services.BatchEligibility
}

func NewSubmitBatchCommandHandler(
	uowFactory BatchUoWFactory,
	catalog ports.ProductCatalog,
	optimizer ports.PackingOptimizer,
	eligibility services.BatchEligibility,
) SubmitBatchCommandHandler {
	return SubmitBatchCommandHandler{
		uowFactory:  uowFactory,
		catalog:     catalog,
		optimizer:   optimizer,
		eligibility: eligibility,
	}
}

func (h *SubmitBatchCommandHandler) Handle(ctx context.Context, cmd SubmitBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Session().Require("automate orders", access.Staff, access.Admin); err != nil {
		return err
	}

	ids := cmd.OrderIDs()
	uow := h.uowFactory.Create()

	found, err := uow.OrderRepository().GetMany(ctx, ids)
	if err != nil {
		return err
	}
	if err = h.eligibility.Check(ids, found); err != nil {
		return err
	}

	sheet, err := h.catalog.Sheet(ctx, cmd.Settings().SheetID)
	if err != nil {
		return err
	}
	if _, err = cmd.Settings().Margins.PrintableArea(sheet.Dimensions()); err != nil {
		return errs.NewValidationErrorFrom(err)
	}

	layout, err := h.optimize(ctx, cmd, sheet, h.eligibility.Ordered(ids, found))
	if err != nil {
		return err
	}

	batch, err := automation.NewBatch(cmd.BatchID(), cmd.Name(), cmd.Description(), ids, cmd.Settings(), layout)
	if err != nil {
		return err
	}

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
		if err = o.Automate(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.AutomationRepository().Add(ctx, batch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *SubmitBatchCommandHandler) optimize(
	ctx context.Context,
	cmd SubmitBatchCommand,
	sheet catalog.Sheet,
	orders []*order.Order,
) (automation.Layout, error) {
	ctx, cancel := context.WithTimeout(ctx, cmd.Timeout())
	defer cancel()

	settings := cmd.Settings()
	request := ports.PackingRequest{
		Sheet:            sheet.Dimensions(),
		Bleed:            settings.Bleed,
		RotationsAllowed: settings.RotationsAllowed,
		Algorithm:        settings.Algorithm,
		Margins:          settings.Margins,
		Items:            make([]ports.PackingItem, 0, len(orders)),
	}
	for _, o := range orders {
		d := o.Details()
		request.Items = append(request.Items, ports.PackingItem{
			OrderID:  o.ID(),
			Width:    d.Dimensions().Width(),
			Height:   d.Dimensions().Height(),
			Quantity: d.Quantity(),
		})
	}

	layout, err := h.optimizer.Optimize(ctx, request)
	if err != nil {
		return automation.Layout{}, errs.NewAutomationFailedError(err)
	}
	if err = layout.Validate(); err != nil {
		return automation.Layout{}, errs.NewAutomationFailedError(err)
	}
	return layout, nil
}
