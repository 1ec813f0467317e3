package queries

import (
	"errors"
	"fmt"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrGetQuoteQueryIsNotConstructed = errors.New("GetQuoteQuery must be created via NewGetQuoteQuery constructor")

// GetQuoteQuery prices a prospective order without storing anything.
type GetQuoteQuery struct { //nolint:recvcheck //using for validation
	session    access.Session
	productID  kernel.UUID
	choice     catalog.Choice
	dimensions kernel.Dimensions
	quantity   int
	guard      guard.ConstructorGuard
}

func NewGetQuoteQuery(
	session access.Session,
	productID kernel.UUID,
	choice catalog.Choice,
	width, height kernel.Millimeters,
	quantity int,
) (GetQuoteQuery, error) {
	if err := errors.Join(session.Validate(), productID.Validate()); err != nil {
		return GetQuoteQuery{}, err
	}

	dims, dimsErr := kernel.NewDimensions(width, height)
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(catalog.FieldQuantity,
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(dimsErr, quantityErr); err != nil {
		return GetQuoteQuery{}, errs.NewValidationErrorFrom(err)
	}

	return GetQuoteQuery{
		session:    session,
		productID:  productID,
		choice:     choice,
		dimensions: dims,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

func (q GetQuoteQuery) Session() access.Session { return q.session }
func (q GetQuoteQuery) ProductID() kernel.UUID { return q.productID }
func (q GetQuoteQuery) Choice() catalog.Choice { return q.choice }
func (q GetQuoteQuery) Dimensions() kernel.Dimensions { return q.dimensions }
func (q GetQuoteQuery) Quantity() int { return q.quantity }
