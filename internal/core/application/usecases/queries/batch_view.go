package queries

import (
	"encoding/json"
	"time"

	"printflow/internal/core/domain/model/automation"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BatchView is the read model of an optimizer batch. Layout is only filled
// when a single batch is fetched.
type BatchView struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	OrderIDs         []string        `json:"orderIds"`
	SheetID          string          `json:"sheetId"`
	Bleed            int             `json:"bleed"`
	RotationsAllowed bool            `json:"rotationsAllowed"`
	Algorithm        string          `json:"type"`
	Margins          MarginsView     `json:"margins"`
	Efficiency       float64         `json:"efficiency"`
	PlacementType    string          `json:"placementType"`
	Layout           json.RawMessage `json:"layout,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type MarginsView struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// ManualBatchView is the read model of a hand-made batch.
type ManualBatchView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OrderIDs    []string  `json:"orderIds"`
	FileURL     string    `json:"automationFile"`
	CreatedAt   time.Time `json:"createdAt"`
}

const batchColumns = `
	b.id,
	b.name,
	b.description,
	b.order_ids,
	b.sheet_id,
	b.bleed,
	b.rotations_allowed,
	b.algorithm,
	b.margin_top,
	b.margin_bottom,
	b.margin_left,
	b.margin_right,
	b.efficiency,
	b.placement_type,
	b.created_at`

func scanBatches(rows rowScanner, withLayout bool) ([]BatchView, error) {
	views := make([]BatchView, 0)
	for rows.Next() {
		var (
			v           BatchView
			id, sheetID uuid.UUID
			orderIDs    pq.StringArray
			algorithm   int
			layout      []byte
		)

		dest := []any{
			&id,
			&v.Name,
			&v.Description,
			&orderIDs,
			&sheetID,
			&v.Bleed,
			&v.RotationsAllowed,
			&algorithm,
			&v.Margins.Top,
			&v.Margins.Bottom,
			&v.Margins.Left,
			&v.Margins.Right,
			&v.Efficiency,
			&v.PlacementType,
			&v.CreatedAt,
		}
		if withLayout {
			dest = append(dest, &layout)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		v.ID = id.String()
		v.SheetID = sheetID.String()
		v.OrderIDs = []string(orderIDs)
		v.Algorithm = automation.AlgorithmType(algorithm).String()
		if withLayout && len(layout) > 0 {
			v.Layout = json.RawMessage(layout)
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func scanManualBatches(rows rowScanner) ([]ManualBatchView, error) {
	views := make([]ManualBatchView, 0)
	for rows.Next() {
		var (
			v        ManualBatchView
			id       uuid.UUID
			orderIDs pq.StringArray
		)

		if err := rows.Scan(&id, &v.Name, &v.Description, &orderIDs, &v.FileURL, &v.CreatedAt); err != nil {
			return nil, err
		}

		v.ID = id.String()
		v.OrderIDs = []string(orderIDs)
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
