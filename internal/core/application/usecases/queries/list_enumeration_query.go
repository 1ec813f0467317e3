package queries

import (
	"fmt"

	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
)

// Enumeration names a closed set of values the clients render as choices.
type Enumeration string

const (
	ApplicabilityEnumeration Enumeration = "applicability"
	CostItemTypeEnumeration  Enumeration = "costItemType"
	AlgorithmEnumeration     Enumeration = "algorithm"
	OrderStatusEnumeration   Enumeration = "orderStatus"
)

// ListEnumerationQueryHandler needs no storage; the values come from the
// domain types.
type ListEnumerationQueryHandler struct{}

func NewListEnumerationQueryHandler() ListEnumerationQueryHandler {
	return ListEnumerationQueryHandler{}
}

func (h ListEnumerationQueryHandler) Handle(kind Enumeration) ([]string, error) {
	switch kind {
	case ApplicabilityEnumeration:
		return names(catalog.Applicabilities()), nil
	case CostItemTypeEnumeration:
		return names(catalog.CostItemTypes()), nil
	case AlgorithmEnumeration:
		return names(automation.AlgorithmTypes()), nil
	case OrderStatusEnumeration:
		return names(order.Statuses()), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("enumeration", fmt.Errorf("%q is not known", kind))
	}
}

func names[T fmt.Stringer](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}
