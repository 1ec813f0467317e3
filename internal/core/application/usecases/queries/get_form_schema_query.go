package queries

import (
	"errors"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrGetFormSchemaQueryIsNotConstructed = errors.New(
	"GetFormSchemaQuery must be created via NewGetFormSchemaQuery constructor",
)

// GetFormSchemaQuery asks for the order form of a product.
type GetFormSchemaQuery struct { //nolint:recvcheck //using for validation
	session   access.Session
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetFormSchemaQuery(session access.Session, productID kernel.UUID) (GetFormSchemaQuery, error) {
	if err := errors.Join(session.Validate(), productID.Validate()); err != nil {
		return GetFormSchemaQuery{}, err
	}

	return GetFormSchemaQuery{
		session:   session,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetFormSchemaQuery) Validate() error {
	return q.guard.Validate(ErrGetFormSchemaQueryIsNotConstructed)
}

func (q GetFormSchemaQuery) Session() access.Session { return q.session }
func (q GetFormSchemaQuery) ProductID() kernel.UUID { return q.productID }
