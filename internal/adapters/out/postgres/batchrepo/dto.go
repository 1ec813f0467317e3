// Package batchrepo persists optimizer batches and manual batches. The ordered
// order id list of a batch is a text[] column.
package batchrepo

import (
	"time"

	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// BatchDTO is one row of automation_batches.
type BatchDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name             string         `gorm:"type:varchar(255);not null"`
	Description      string         `gorm:"type:text"`
	OrderIDs         pq.StringArray `gorm:"type:text[];not null"`
	SheetID          uuid.UUID      `gorm:"type:uuid;not null"`
	Bleed            kernel.Millimeters
	RotationsAllowed bool
	Algorithm        int
	Margins          MarginsDTO `gorm:"embedded;embeddedPrefix:margin_"`
	Efficiency       float64
	PlacementType    string
	Layout           datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time      `gorm:"index"`
}

func (BatchDTO) TableName() string {
	return "automation_batches"
}

type MarginsDTO struct {
	Top    kernel.Millimeters
	Bottom kernel.Millimeters
	Left   kernel.Millimeters
	Right  kernel.Millimeters
}

// ManualBatchDTO is one row of manual_automation_batches.
type ManualBatchDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	OrderIDs    pq.StringArray `gorm:"type:text[];not null"`
	FileURL     string         `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"index"`
}

func (ManualBatchDTO) TableName() string {
	return "manual_automation_batches"
}

func idStrings(ids []kernel.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func batchFromDomain(b *automation.Batch) BatchDTO {
	s := b.Settings()
	return BatchDTO{
		ID:               b.ID().Bytes(),
		Name:             b.Name(),
		Description:      b.Description(),
		OrderIDs:         idStrings(b.OrderIDs()),
		SheetID:          s.SheetID.Bytes(),
		Bleed:            s.Bleed,
		RotationsAllowed: s.RotationsAllowed,
		Algorithm:        int(s.Algorithm),
		Margins: MarginsDTO{
			Top:    s.Margins.Top,
			Bottom: s.Margins.Bottom,
			Left:   s.Margins.Left,
			Right:  s.Margins.Right,
		},
		Efficiency:    b.Layout().Efficiency(),
		PlacementType: b.Layout().PlacementType(),
		Layout:        datatypes.JSON(b.Layout().Raw()),
		CreatedAt:     b.CreatedAt(),
	}
}

func batchToDomain(dto BatchDTO) (*automation.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sheetID, err := kernel.UUIDFromBytes(dto.SheetID[:])
	if err != nil {
		return nil, err
	}
	orderIDs, err := kernel.ParseUUIDs("orderIds", dto.OrderIDs)
	if err != nil {
		return nil, err
	}
	layout, err := automation.NewLayout(dto.Efficiency, dto.PlacementType, []byte(dto.Layout))
	if err != nil {
		return nil, err
	}

	settings := automation.Settings{
		SheetID:          sheetID,
		Bleed:            dto.Bleed,
		RotationsAllowed: dto.RotationsAllowed,
		Algorithm:        automation.AlgorithmType(dto.Algorithm),
		Margins: automation.Margins{
			Top:    dto.Margins.Top,
			Bottom: dto.Margins.Bottom,
			Left:   dto.Margins.Left,
			Right:  dto.Margins.Right,
		},
	}

	return automation.RestoreBatch(id, dto.Name, dto.Description, orderIDs, settings, layout, dto.CreatedAt)
}

func manualFromDomain(b *automation.ManualBatch) ManualBatchDTO {
	return ManualBatchDTO{
		ID:          b.ID().Bytes(),
		Name:        b.Name(),
		Description: b.Description(),
		OrderIDs:    idStrings(b.OrderIDs()),
		FileURL:     b.FileURL(),
		CreatedAt:   b.CreatedAt(),
	}
}

func manualToDomain(dto ManualBatchDTO) (*automation.ManualBatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderIDs, err := kernel.ParseUUIDs("orderIds", dto.OrderIDs)
	if err != nil {
		return nil, err
	}
	return automation.RestoreManualBatch(id, dto.Name, dto.Description, orderIDs, dto.FileURL, dto.CreatedAt)
}
