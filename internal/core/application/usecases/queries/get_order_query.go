package queries

import (
	"errors"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

type GetOrderQuery struct { //nolint:recvcheck //using for validation
	session access.Session
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(session access.Session, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(session.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		session: session,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Session() access.Session { return q.session }
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
