package order

import (
	"errors"
	"fmt"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a print job. It carries the snapshot of what
// was ordered, the price agreed at creation and the lifecycle status.
//
// Invariants:
//   - quantity, width and height are positive
//   - price equals quantity times the unit price captured at creation
//   - raisedTo is set at most once
//   - status changes only along the edges defined by Status
type Order struct {
	id        kernel.UUID
	raisedBy  kernel.UUID
	raisedTo  *kernel.UUID
	details   Details
	unitPrice decimal.Decimal
	price     decimal.Decimal
	status    Status
	createdAt time.Time
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewOrder creates a PENDING order raised by the given user.
//
// unitPrice is the per-copy amount and price the total for details.Quantity();
// both come from the pricing engine. A delivery date, when present, must lie in
// the future.
//
// Example:
//
//	quote := engine.Quote(product, selection, dims, 10)
//	o, err := order.NewOrder(kernel.NewUUID(), session.UserID(), details, quote.Unit, quote.Total)
func NewOrder(
	id kernel.UUID,
	raisedBy kernel.UUID,
	details Details,
	unitPrice decimal.Decimal,
	price decimal.Decimal,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRaisedBy(raisedBy),
		o.setDetails(details),
		o.setPrices(unitPrice, price),
		checkDeliveryDate(details.DeliveryDate(), now),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. The delivery date is not
// re-checked since it was valid when the order was placed.
func RestoreOrder(
	id kernel.UUID,
	raisedBy kernel.UUID,
	raisedTo *kernel.UUID,
	details Details,
	unitPrice decimal.Decimal,
	price decimal.Decimal,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		raisedTo:  raisedTo,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRaisedBy(raisedBy),
		o.setDetails(details),
		o.setPrices(unitPrice, price),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// RaisedBy returns the user who placed the order.
func (o *Order) RaisedBy() kernel.UUID {
	return o.raisedBy
}

// RaisedTo returns the staff member the order is assigned to, nil if unassigned.
func (o *Order) RaisedTo() *kernel.UUID {
	return o.raisedTo
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) UnitPrice() decimal.Decimal {
	return o.unitPrice
}

func (o *Order) Price() decimal.Decimal {
	return o.price
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.raisedBy.IsEqual(userID)
}

// Assign hands the order to a staff member. An order is assigned once; a second
// call fails with ConflictError whatever the target.
func (o *Order) Assign(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("staffId", err)
	}
	if o.raisedTo != nil {
		return errs.NewConflictErrorWithCause("orderId", o.id, fmt.Errorf("already assigned to %s", o.raisedTo))
	}

	o.raisedTo = &staffID
	o.touch()
	return nil
}

// Approve moves a PENDING order to ACTIVE.
func (o *Order) Approve() error {
	return o.apply(o.status.Approve)
}

// Automate marks the order as laid out by the packing optimizer.
func (o *Order) Automate() error {
	return o.apply(o.status.Automate)
}

// AutomateManually marks the order as laid out by hand.
func (o *Order) AutomateManually() error {
	return o.apply(o.status.AutomateManually)
}

func (o *Order) Complete() error {
	return o.apply(o.status.Complete)
}

func (o *Order) Cancel() error {
	return o.apply(o.status.Cancel)
}

// Delete soft-deletes a cancelled order. The row is kept with status DELETED.
func (o *Order) Delete() error {
	return o.apply(o.status.Delete)
}

// ChangeQuantity sets a new quantity and total and re-opens the order as ACTIVE.
// Any layout produced for the previous quantity is stale from here on, so the
// order has to be batched again. Terminal orders are rejected.
func (o *Order) ChangeQuantity(quantity int, price decimal.Decimal) error {
	next, err := o.status.Reopen()
	if err != nil {
		return err
	}

	details, err := o.details.withQuantity(quantity)
	if err != nil {
		return err
	}

	if err := o.setPrices(o.unitPrice, price); err != nil {
		return err
	}

	o.details = details
	o.status = next
	o.touch()
	return nil
}

func (o *Order) apply(transition func() (Status, error)) error {
	next, err := transition()
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRaisedBy(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("raisedBy", err)
	}
	o.raisedBy = userID
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	o.details = details
	return nil
}

func (o *Order) setPrices(unitPrice, price decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	o.unitPrice = unitPrice
	o.price = price
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func checkDeliveryDate(date *time.Time, now time.Time) error {
	if date == nil {
		return nil
	}
	if !date.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate", fmt.Errorf("%s is not in the future", date.Format(time.DateOnly)))
	}
	return nil
}
