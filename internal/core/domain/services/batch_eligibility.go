package services

import (
	"fmt"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
)

// BatchEligibility decides whether a set of orders may enter a batch: every
// requested order must exist and be ACTIVE. The check runs twice per batch,
// once on an advisory read and again on the locked rows.
type BatchEligibility struct{}

func NewBatchEligibility() BatchEligibility {
	return BatchEligibility{}
}

// Check returns nil when every requested order is eligible. Otherwise it returns
// an errs.BatchValidationError naming exactly the offending orders, in request
// order.
func (b BatchEligibility) Check(requested []kernel.UUID, found []*order.Order) error {
	byID := make(map[kernel.UUID]*order.Order, len(found))
	for _, o := range found {
		if o != nil {
			byID[o.ID()] = o
		}
	}

	var offending []errs.OffendingOrder
	for _, id := range requested {
		o, ok := byID[id]
		switch {
		case !ok:
			offending = append(offending, errs.OffendingOrder{ID: id.String(), Reason: "not found"})
		case o.Status() != order.Active:
			offending = append(offending, errs.OffendingOrder{
				ID:     id.String(),
				Reason: fmt.Sprintf("status is %s", o.Status()),
			})
		}
	}

	if len(offending) > 0 {
		return errs.NewBatchValidationError(offending...)
	}
	return nil
}

// Ordered returns the found orders rearranged in request order. Callers run
// Check first, so every requested id is present.
func (b BatchEligibility) Ordered(requested []kernel.UUID, found []*order.Order) []*order.Order {
	byID := make(map[kernel.UUID]*order.Order, len(found))
	for _, o := range found {
		byID[o.ID()] = o
	}

	ordered := make([]*order.Order, 0, len(requested))
	for _, id := range requested {
		if o, ok := byID[id]; ok {
			ordered = append(ordered, o)
		}
	}
	return ordered
}
