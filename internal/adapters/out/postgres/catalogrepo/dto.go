// Package catalogrepo persists products and their options. The DTOs are
// exported because the catalog cache stores them as JSON.
package catalogrepo

import (
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PageSizeDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string             `gorm:"type:varchar(255);not null" json:"name"`
	Width          kernel.Millimeters `json:"width"`
	Height         kernel.Millimeters `json:"height"`
	Applicability  int                `json:"applicability"`
	AssociatedCost decimal.Decimal    `gorm:"type:numeric(18,6)" json:"associatedCost"`
}

func (PageSizeDTO) TableName() string {
	return "page_sizes"
}

type PaperConfigDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Type           string          `gorm:"type:varchar(255);not null" json:"type"`
	GSM            int             `json:"gsm"`
	Applicability  int             `json:"applicability"`
	AssociatedCost decimal.Decimal `gorm:"type:numeric(18,6)" json:"associatedCost"`
}

func (PaperConfigDTO) TableName() string {
	return "paper_configs"
}

type CostItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Type           int             `gorm:"index" json:"type"`
	Value          string          `gorm:"type:varchar(255);not null" json:"value"`
	Applicability  int             `json:"applicability"`
	AssociatedCost decimal.Decimal `gorm:"type:numeric(18,6)" json:"associatedCost"`
}

func (CostItemDTO) TableName() string {
	return "cost_items"
}

type SheetDTO struct {
	ID     uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string             `gorm:"type:varchar(255);not null" json:"name"`
	Width  kernel.Millimeters `json:"width"`
	Height kernel.Millimeters `json:"height"`
}

func (SheetDTO) TableName() string {
	return "sheets"
}

// ProductDTO links to its options through join tables keyed by product_id and
// page_size_id, paper_config_id or cost_item_id.
type ProductDTO struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string           `gorm:"type:varchar(255);not null" json:"name"`
	Description         string           `gorm:"type:text" json:"description"`
	Category            int              `gorm:"index" json:"category"`
	BasePrice           decimal.Decimal  `gorm:"type:numeric(18,6)" json:"basePrice"`
	AreaRate            decimal.Decimal  `gorm:"type:numeric(18,6)" json:"areaRate"`
	DoubleSideSurcharge decimal.Decimal  `gorm:"type:numeric(18,6)" json:"doubleSideSurcharge"`
	Sizes               []PageSizeDTO    `gorm:"many2many:product_page_sizes;joinForeignKey:ProductID;joinReferences:PageSizeID" json:"sizes"`
	Papers              []PaperConfigDTO `gorm:"many2many:product_paper_configs;joinForeignKey:ProductID;joinReferences:PaperConfigID" json:"papers"`
	CostItems           []CostItemDTO    `gorm:"many2many:product_cost_items;joinForeignKey:ProductID;joinReferences:CostItemID" json:"costItems"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func PageSizeFromDomain(s catalog.PageSize) PageSizeDTO {
	return PageSizeDTO{
		ID:             s.ID().Bytes(),
		Name:           s.Name(),
		Width:          s.Dimensions().Width(),
		Height:         s.Dimensions().Height(),
		Applicability:  int(s.Applicability()),
		AssociatedCost: s.AssociatedCost(),
	}
}

func (d PageSizeDTO) ToDomain() (catalog.PageSize, error) {
	id, err := kernel.UUIDFromBytes(d.ID[:])
	if err != nil {
		return catalog.PageSize{}, err
	}
	dims, err := kernel.NewDimensions(d.Width, d.Height)
	if err != nil {
		return catalog.PageSize{}, err
	}
	return catalog.NewPageSize(id, d.Name, dims, catalog.Applicability(d.Applicability), d.AssociatedCost)
}

func PaperConfigFromDomain(p catalog.PaperConfig) PaperConfigDTO {
	return PaperConfigDTO{
		ID:             p.ID().Bytes(),
		Type:           p.Type(),
		GSM:            p.GSM(),
		Applicability:  int(p.Applicability()),
		AssociatedCost: p.AssociatedCost(),
	}
}

func (d PaperConfigDTO) ToDomain() (catalog.PaperConfig, error) {
	id, err := kernel.UUIDFromBytes(d.ID[:])
	if err != nil {
		return catalog.PaperConfig{}, err
	}
	return catalog.NewPaperConfig(id, d.Type, d.GSM, catalog.Applicability(d.Applicability), d.AssociatedCost)
}

func CostItemFromDomain(c catalog.CostItem) CostItemDTO {
	return CostItemDTO{
		ID:             c.ID().Bytes(),
		Type:           int(c.Type()),
		Value:          c.Value(),
		Applicability:  int(c.Applicability()),
		AssociatedCost: c.AssociatedCost(),
	}
}

func (d CostItemDTO) ToDomain() (catalog.CostItem, error) {
	id, err := kernel.UUIDFromBytes(d.ID[:])
	if err != nil {
		return catalog.CostItem{}, err
	}
	return catalog.NewCostItem(id, catalog.CostItemType(d.Type), d.Value,
		catalog.Applicability(d.Applicability), d.AssociatedCost)
}

func SheetFromDomain(s catalog.Sheet) SheetDTO {
	return SheetDTO{
		ID:     s.ID().Bytes(),
		Name:   s.Name(),
		Width:  s.Dimensions().Width(),
		Height: s.Dimensions().Height(),
	}
}

func (d SheetDTO) ToDomain() (catalog.Sheet, error) {
	id, err := kernel.UUIDFromBytes(d.ID[:])
	if err != nil {
		return catalog.Sheet{}, err
	}
	dims, err := kernel.NewDimensions(d.Width, d.Height)
	if err != nil {
		return catalog.Sheet{}, err
	}
	return catalog.NewSheet(id, d.Name, dims)
}

func ProductFromDomain(p *catalog.Product) ProductDTO {
	dto := ProductDTO{
		ID:                  p.ID().Bytes(),
		Name:                p.Name(),
		Description:         p.Description(),
		Category:            int(p.Category()),
		BasePrice:           p.Pricing().BasePrice,
		AreaRate:            p.Pricing().AreaRate,
		DoubleSideSurcharge: p.Pricing().DoubleSideSurcharge,
	}
	for _, s := range p.AvailableSizes() {
		dto.Sizes = append(dto.Sizes, PageSizeFromDomain(s))
	}
	for _, paper := range p.AvailablePapers() {
		dto.Papers = append(dto.Papers, PaperConfigFromDomain(paper))
	}
	for _, c := range p.CostItems() {
		dto.CostItems = append(dto.CostItems, CostItemFromDomain(c))
	}
	return dto
}

func (d ProductDTO) ToDomain() (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(d.ID[:])
	if err != nil {
		return nil, err
	}

	sizes, err := convertAll(d.Sizes, PageSizeDTO.ToDomain)
	if err != nil {
		return nil, err
	}
	papers, err := convertAll(d.Papers, PaperConfigDTO.ToDomain)
	if err != nil {
		return nil, err
	}
	items, err := convertAll(d.CostItems, CostItemDTO.ToDomain)
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(id, d.Name, d.Description, catalog.Applicability(d.Category),
		catalog.ProductPricing{
			BasePrice:           d.BasePrice,
			AreaRate:            d.AreaRate,
			DoubleSideSurcharge: d.DoubleSideSurcharge,
		},
		sizes, papers, items)
}

func convertAll[D any, T any](dtos []D, convert func(D) (T, error)) ([]T, error) {
	out := make([]T, 0, len(dtos))
	for _, dto := range dtos {
		v, err := convert(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
