package catalog

import (
	"errors"
	"fmt"
	"strings"

	"printflow/internal/pkg/errs"
)

// Order form field names.
const (
	FieldProductName    = "productName"
	FieldPageSize       = "pageSize"
	FieldWidth          = "width"
	FieldHeight         = "height"
	FieldQuantity       = "quantity"
	FieldPaperConfig    = "paperConfig"
	FieldPrintingSide   = "printingSide"
	FieldAdditionalNote = "additionalNote"
	FieldQuality        = "quality"
	FieldFileURL        = "fileUrl"
)

// FormOption is one selectable value of a form field.
type FormOption struct {
	Value string
	Label string
}

// FormField describes one order form input for a product.
type FormField struct {
	Name         string
	Required     bool
	Options      []FormOption
	AutoSelected string
}

// FormValues is the raw content of a submitted order form keyed by field name.
// Absent and blank entries count as missing.
type FormValues map[string]string

// FormSchema is the order form of one product: the base fields every order needs
// plus one field per finishing type the product offers.
type FormSchema struct {
	Fields []FormField
}

// FormSchema derives the order form from the product's options.
func (p *Product) FormSchema() FormSchema {
	sizeOptions := make([]FormOption, 0, len(p.sizes))
	for _, s := range p.sizes {
		sizeOptions = append(sizeOptions, FormOption{Value: s.ID().String(), Label: s.Name()})
	}
	paperOptions := make([]FormOption, 0, len(p.papers))
	for _, paper := range p.papers {
		paperOptions = append(paperOptions, FormOption{Value: paper.ID().String(), Label: paper.Label()})
	}

	fields := []FormField{
		{Name: FieldProductName, Required: true},
		{Name: FieldPageSize, Options: sizeOptions},
		{Name: FieldWidth, Required: true},
		{Name: FieldHeight, Required: true},
		{Name: FieldQuantity, Required: true},
		{Name: FieldPaperConfig, Required: true, Options: paperOptions},
		{Name: FieldPrintingSide, Required: true, Options: []FormOption{
			{Value: SingleSide.String(), Label: "Single sided"},
			{Value: DoubleSide.String(), Label: "Double sided"},
		}},
		{Name: FieldAdditionalNote, Required: true},
		{Name: FieldQuality, Required: true},
		{Name: FieldFileURL},
	}

	for _, t := range p.OfferedTypes() {
		items := p.OptionsOf(t)
		field := FormField{Name: t.FieldName(), Required: true}
		for _, item := range items {
			field.Options = append(field.Options, FormOption{Value: item.Value(), Label: item.Value()})
		}
		if len(items) == 1 {
			field.AutoSelected = items[0].Value()
		}
		fields = append(fields, field)
	}

	return FormSchema{Fields: fields}
}

// Field looks a field up by name.
func (s FormSchema) Field(name string) (FormField, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FormField{}, false
}

// RequiredFields lists the names of the required fields in schema order.
func (s FormSchema) RequiredFields() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Validate walks the schema: required fields must be present (an auto-selected
// field counts as present) and fields with options only take listed values.
// Every problem is reported.
func (s FormSchema) Validate(values FormValues) error {
	var problems []error
	for _, f := range s.Fields {
		value := strings.TrimSpace(values[f.Name])
		if value == "" {
			if f.Required && f.AutoSelected == "" {
				problems = append(problems, errs.NewValueIsRequiredError(f.Name))
			}
			continue
		}
		if len(f.Options) > 0 && !f.accepts(value) {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				f.Name,
				fmt.Errorf("%q is not one of the offered options", value),
			))
		}
	}
	return errors.Join(problems...)
}

func (f FormField) accepts(value string) bool {
	for _, o := range f.Options {
		if strings.EqualFold(o.Value, value) {
			return true
		}
	}
	return false
}
