package commands

import (
	"context"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/services"
)

// UpdateOrderQuantityCommandHandler recomputes the total from the unit price
// captured when the order was placed and re-opens the order as ACTIVE. The
// catalog is not consulted again.
type UpdateOrderQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingEngine
}

func NewUpdateOrderQuantityCommandHandler(
	uowFactory OrderUoWFactory,
	pricing services.PricingEngine,
) UpdateOrderQuantityCommandHandler {
	return UpdateOrderQuantityCommandHandler{uowFactory: uowFactory, pricing: pricing}
}

func (h *UpdateOrderQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateOrderQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Session().Require("update order quantities", access.Staff, access.Admin); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	price, err := h.pricing.Total(o.UnitPrice(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = o.ChangeQuantity(cmd.Quantity(), price); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
