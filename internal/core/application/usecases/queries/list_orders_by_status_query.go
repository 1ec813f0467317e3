package queries

import (
	"errors"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

// ListOrdersByStatusQuery lists orders in one status. Clients only see the
// orders they raised.
type ListOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	session access.Session
	status  order.Status
	guard   guard.ConstructorGuard
}

func NewListOrdersByStatusQuery(session access.Session, status string) (ListOrdersByStatusQuery, error) {
	if err := session.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return ListOrdersByStatusQuery{}, errs.NewValidationErrorFrom(err)
	}

	return ListOrdersByStatusQuery{
		session: session,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

func (q ListOrdersByStatusQuery) Session() access.Session { return q.session }
func (q ListOrdersByStatusQuery) Status() order.Status { return q.status }
