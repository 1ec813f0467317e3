package commands

import (
	"errors"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product built from existing catalog options,
// referenced by id.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	session     access.Session
	productID   kernel.UUID
	name        string
	description string
	category    catalog.Applicability
	pricing     catalog.ProductPricing
	sizeIDs     []kernel.UUID
	paperIDs    []kernel.UUID
	costItemIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	session access.Session,
	productID kernel.UUID,
	name string,
	description string,
	category catalog.Applicability,
	pricing catalog.ProductPricing,
	sizeIDs []kernel.UUID,
	paperIDs []kernel.UUID,
	costItemIDs []kernel.UUID,
) (CreateProductCommand, error) {
	if err := errors.Join(session.Validate(), productID.Validate()); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		session:     session,
		productID:   productID,
		name:        name,
		description: description,
		category:    category,
		pricing:     pricing,
		sizeIDs:     append([]kernel.UUID(nil), sizeIDs...),
		paperIDs:    append([]kernel.UUID(nil), paperIDs...),
		costItemIDs: append([]kernel.UUID(nil), costItemIDs...),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Session() access.Session { return c.session }
func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c CreateProductCommand) Name() string { return c.name }
func (c CreateProductCommand) Description() string { return c.description }
func (c CreateProductCommand) Category() catalog.Applicability { return c.category }
func (c CreateProductCommand) Pricing() catalog.ProductPricing { return c.pricing }
func (c CreateProductCommand) SizeIDs() []kernel.UUID { return c.sizeIDs }
func (c CreateProductCommand) PaperIDs() []kernel.UUID { return c.paperIDs }
func (c CreateProductCommand) CostItemIDs() []kernel.UUID { return c.costItemIDs }
