package queries

import (
	"context"

	"printflow/internal/core/ports"
)

type FormSchemaView struct {
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	Category       string          `json:"category"`
	Fields         []FormFieldView `json:"fields"`
	RequiredFields []string        `json:"requiredFields"`
}

type FormFieldView struct {
	Name         string           `json:"name"`
	Required     bool             `json:"required"`
	Options      []FormOptionView `json:"options,omitempty"`
	AutoSelected string           `json:"autoSelected,omitempty"`
}

type FormOptionView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GetFormSchemaQueryHandler reads the product through the catalog port, which
// is served from the cache.
type GetFormSchemaQueryHandler struct {
	catalog ports.ProductCatalog
}

func NewGetFormSchemaQueryHandler(catalog ports.ProductCatalog) GetFormSchemaQueryHandler {
	return GetFormSchemaQueryHandler{catalog: catalog}
}

func (h GetFormSchemaQueryHandler) Handle(ctx context.Context, query GetFormSchemaQuery) (FormSchemaView, error) {
	if err := query.Validate(); err != nil {
		return FormSchemaView{}, err
	}

	product, err := h.catalog.Product(ctx, query.ProductID())
	if err != nil {
		return FormSchemaView{}, err
	}

	schema := product.FormSchema()
	view := FormSchemaView{
		ProductID:      product.ID().String(),
		ProductName:    product.Name(),
		Category:       product.Category().String(),
		Fields:         make([]FormFieldView, 0, len(schema.Fields)),
		RequiredFields: schema.RequiredFields(),
	}
	for _, f := range schema.Fields {
		field := FormFieldView{Name: f.Name, Required: f.Required, AutoSelected: f.AutoSelected}
		for _, o := range f.Options {
			field.Options = append(field.Options, FormOptionView{Value: o.Value, Label: o.Label})
		}
		view.Fields = append(view.Fields, field)
	}
	return view, nil
}
