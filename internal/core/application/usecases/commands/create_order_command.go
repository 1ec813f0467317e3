package commands

import (
	"errors"
	"maps"
	"time"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a print order for a catalog product.
//
// The order form travels as raw field values keyed by the names of the
// product's form schema (catalog.Field* and the finishing field names), so
// that the handler can report every missing or malformed field in one error.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(session, kernel.NewUUID(), productID, catalog.FormValues{
//	    catalog.FieldWidth:        "90",
//	    catalog.FieldHeight:       "55",
//	    catalog.FieldQuantity:     "1000",
//	    catalog.FieldPaperConfig:  paperID.String(),
//	    catalog.FieldPrintingSide: "SINGLE",
//	    catalog.FieldQuality:      "300",
//	}, nil)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	session      access.Session
	orderID      kernel.UUID
	productID    kernel.UUID
	values       catalog.FormValues
	deliveryDate *time.Time

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	session access.Session,
	orderID kernel.UUID,
	productID kernel.UUID,
	values catalog.FormValues,
	deliveryDate *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		values:       maps.Clone(values),
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}
	if cmd.values == nil {
		cmd.values = catalog.FormValues{}
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Session() access.Session {
	return c.session
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Values returns a copy of the submitted form.
func (c CreateOrderCommand) Values() catalog.FormValues {
	return maps.Clone(c.values)
}

func (c CreateOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

func (c *CreateOrderCommand) setSession(session access.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	c.session = session
	return nil
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	c.productID = id
	return nil
}
