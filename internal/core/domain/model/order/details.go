package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// MaxQuality is the highest scan resolution (DPI) accepted for artwork.
const MaxQuality = 4800

var ErrDetailsIsNotConstructed = errs.NewValueIsRequiredError("order details must be created via NewDetails")

// Paper is the snapshot of the paper config an order was priced with.
type Paper struct {
	ID   kernel.UUID
	Type string
	GSM  int
}

// Label returns the "type-gsm" notation.
func (p Paper) Label() string {
	return fmt.Sprintf("%s-%d", p.Type, p.GSM)
}

// Finishing is the snapshot of one selected cost item.
type Finishing struct {
	CostItemID kernel.UUID
	Type       catalog.CostItemType
	Value      string
}

// DetailsParams carries the fields of an order's details.
type DetailsParams struct {
	ProductID      kernel.UUID
	ProductName    string
	PageSizeID     *kernel.UUID
	Dimensions     kernel.Dimensions
	Quantity       int
	Paper          Paper
	Side           catalog.PrintingSide
	Finishing      []Finishing
	AdditionalNote string
	Quality        int
	FileURL        string
	DeliveryDate   *time.Time
}

// Details is what was ordered. Catalog references are copied in at creation so
// that later catalog edits never change an existing order.
type Details struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	productName    string
	pageSizeID     *kernel.UUID
	dimensions     kernel.Dimensions
	quantity       int
	paper          Paper
	side           catalog.PrintingSide
	finishing      []Finishing
	additionalNote string
	quality        int
	fileURL        string
	deliveryDate   *time.Time
	guard          guard.ConstructorGuard
}

// NewDetails validates every field and reports all violations at once.
func NewDetails(p DetailsParams) (Details, error) {
	d := Details{
		pageSizeID:     p.PageSizeID,
		additionalNote: strings.TrimSpace(p.AdditionalNote),
		fileURL:        strings.TrimSpace(p.FileURL),
		deliveryDate:   p.DeliveryDate,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setProduct(p.ProductID, p.ProductName),
		d.setDimensions(p.Dimensions),
		d.setQuantity(p.Quantity),
		d.setPaper(p.Paper),
		d.setSide(p.Side),
		d.setFinishing(p.Finishing),
		d.setQuality(p.Quality),
	); err != nil {
		return Details{}, err
	}

	return d, nil
}

// DetailsFromSelection fills the catalog part of DetailsParams from a resolved selection.
func DetailsFromSelection(product *catalog.Product, selection catalog.Selection) DetailsParams {
	params := DetailsParams{
		ProductID:   product.ID(),
		ProductName: product.Name(),
		Paper: Paper{
			ID:   selection.Paper.ID(),
			Type: selection.Paper.Type(),
			GSM:  selection.Paper.GSM(),
		},
		Side: selection.Side,
	}

	if selection.Size != nil {
		id := selection.Size.ID()
		params.PageSizeID = &id
	}

	for _, item := range selection.CostItems {
		params.Finishing = append(params.Finishing, Finishing{
			CostItemID: item.ID(),
			Type:       item.Type(),
			Value:      item.Value(),
		})
	}

	return params
}

func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsIsNotConstructed)
}

func (d Details) ProductID() kernel.UUID { return d.productID }
func (d Details) ProductName() string { return d.productName }
func (d Details) PageSizeID() *kernel.UUID { return d.pageSizeID }
func (d Details) Dimensions() kernel.Dimensions { return d.dimensions }
func (d Details) Quantity() int { return d.quantity }
func (d Details) Paper() Paper { return d.paper }
func (d Details) Side() catalog.PrintingSide { return d.side }
func (d Details) Finishing() []Finishing { return append([]Finishing(nil), d.finishing...) }
func (d Details) AdditionalNote() string { return d.additionalNote }
func (d Details) Quality() int { return d.quality }
func (d Details) FileURL() string { return d.fileURL }
func (d Details) DeliveryDate() *time.Time { return d.deliveryDate }

func (d Details) withQuantity(quantity int) (Details, error) {
	if err := d.setQuantity(quantity); err != nil {
		return Details{}, err
	}
	return d, nil
}

func (d *Details) setProduct(id kernel.UUID, name string) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(catalog.FieldProductName, err)
	}
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError(catalog.FieldProductName)
	}
	d.productID = id
	d.productName = strings.TrimSpace(name)
	return nil
}

func (d *Details) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	d.dimensions = dimensions
	return nil
}

func (d *Details) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(catalog.FieldQuantity, fmt.Errorf("%d is not greater than 0", quantity))
	}
	d.quantity = quantity
	return nil
}

func (d *Details) setPaper(paper Paper) error {
	if paper.ID.Validate() != nil || strings.TrimSpace(paper.Type) == "" {
		return errs.NewValueIsRequiredError(catalog.FieldPaperConfig)
	}
	if paper.GSM <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(catalog.FieldPaperConfig, fmt.Errorf("gsm %d is not greater than 0", paper.GSM))
	}
	d.paper = paper
	return nil
}

func (d *Details) setSide(side catalog.PrintingSide) error {
	if err := side.Validate(); err != nil {
		return err
	}
	d.side = side
	return nil
}

func (d *Details) setFinishing(finishing []Finishing) error {
	seen := make(map[catalog.CostItemType]struct{}, len(finishing))
	for _, f := range finishing {
		if err := f.Type.Validate(); err != nil {
			return err
		}
		if _, dup := seen[f.Type]; dup {
			return errs.NewValueIsInvalidErrorWithCause(f.Type.FieldName(), errors.New("selected more than once"))
		}
		seen[f.Type] = struct{}{}
	}
	d.finishing = append([]Finishing(nil), finishing...)
	return nil
}

func (d *Details) setQuality(quality int) error {
	if quality < 1 || quality > MaxQuality {
		return errs.NewValueIsOutOfRangeError(catalog.FieldQuality, quality, 1, MaxQuality)
	}
	d.quality = quality
	return nil
}
