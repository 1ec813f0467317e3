// Package orderrepo persists the order aggregate. Details are flattened into
// columns of the orders table and finishing selections are kept as jsonb.
package orderrepo

import (
	"time"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is one row of the orders table.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RaisedBy       uuid.UUID  `gorm:"type:uuid;not null;index"`
	RaisedTo       *uuid.UUID `gorm:"type:uuid;index"`
	ProductID      uuid.UUID  `gorm:"type:uuid;not null"`
	ProductName    string     `gorm:"not null"`
	PageSizeID     *uuid.UUID `gorm:"type:uuid"`
	Width          kernel.Millimeters
	Height         kernel.Millimeters
	Quantity       int
	Paper          PaperDTO `gorm:"embedded;embeddedPrefix:paper_"`
	PrintingSide   int
	Finishing      datatypes.JSONSlice[FinishingDTO] `gorm:"type:jsonb"`
	AdditionalNote string
	Quality        int
	FileURL        string
	DeliveryDate   *time.Time
	UnitPrice      decimal.Decimal `gorm:"type:numeric(18,6)"`
	Price          decimal.Decimal `gorm:"type:numeric(18,2)"`
	Status         int             `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// PaperDTO is the paper snapshot embedded in the orders table.
type PaperDTO struct {
	ID   uuid.UUID `gorm:"type:uuid"`
	Type string
	GSM  int
}

// FinishingDTO is one element of the finishing jsonb array.
type FinishingDTO struct {
	CostItemID string `json:"costItemId"`
	Type       string `json:"type"`
	Value      string `json:"value"`
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()

	finishing := make(datatypes.JSONSlice[FinishingDTO], 0, len(d.Finishing()))
	for _, f := range d.Finishing() {
		finishing = append(finishing, FinishingDTO{
			CostItemID: f.CostItemID.String(),
			Type:       f.Type.String(),
			Value:      f.Value,
		})
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		RaisedBy:    o.RaisedBy().Bytes(),
		RaisedTo:    optionalBytes(o.RaisedTo()),
		ProductID:   d.ProductID().Bytes(),
		ProductName: d.ProductName(),
		PageSizeID:  optionalBytes(d.PageSizeID()),
		Width:       d.Dimensions().Width(),
		Height:      d.Dimensions().Height(),
		Quantity:    d.Quantity(),
		Paper: PaperDTO{
			ID:   d.Paper().ID.Bytes(),
			Type: d.Paper().Type,
			GSM:  d.Paper().GSM,
		},
		PrintingSide:   int(d.Side()),
		Finishing:      finishing,
		AdditionalNote: d.AdditionalNote(),
		Quality:        d.Quality(),
		FileURL:        d.FileURL(),
		DeliveryDate:   d.DeliveryDate(),
		UnitPrice:      o.UnitPrice(),
		Price:          o.Price(),
		Status:         int(o.Status()),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	raisedBy, err := kernel.UUIDFromBytes(dto.RaisedBy[:])
	if err != nil {
		return nil, err
	}
	raisedTo, err := optionalUUID(dto.RaisedTo)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	pageSizeID, err := optionalUUID(dto.PageSizeID)
	if err != nil {
		return nil, err
	}
	paperID, err := kernel.UUIDFromBytes(dto.Paper.ID[:])
	if err != nil {
		return nil, err
	}
	dims, err := kernel.NewDimensions(dto.Width, dto.Height)
	if err != nil {
		return nil, err
	}

	finishing := make([]order.Finishing, 0, len(dto.Finishing))
	for _, f := range dto.Finishing {
		itemID, idErr := kernel.UUIDFromString(f.CostItemID)
		if idErr != nil {
			return nil, idErr
		}
		itemType, typeErr := catalog.ParseCostItemType(f.Type)
		if typeErr != nil {
			return nil, typeErr
		}
		finishing = append(finishing, order.Finishing{CostItemID: itemID, Type: itemType, Value: f.Value})
	}

	details, err := order.NewDetails(order.DetailsParams{
		ProductID:      productID,
		ProductName:    dto.ProductName,
		PageSizeID:     pageSizeID,
		Dimensions:     dims,
		Quantity:       dto.Quantity,
		Paper:          order.Paper{ID: paperID, Type: dto.Paper.Type, GSM: dto.Paper.GSM},
		Side:           catalog.PrintingSide(dto.PrintingSide),
		Finishing:      finishing,
		AdditionalNote: dto.AdditionalNote,
		Quality:        dto.Quality,
		FileURL:        dto.FileURL,
		DeliveryDate:   dto.DeliveryDate,
	})
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		raisedBy,
		raisedTo,
		details,
		dto.UnitPrice,
		dto.Price,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
