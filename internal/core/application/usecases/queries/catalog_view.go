package queries

import (
	"printflow/internal/core/domain/model/catalog"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type ProductView struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	Category            string          `json:"category"`
	BasePrice           decimal.Decimal `json:"basePrice"`
	AreaRate            decimal.Decimal `json:"areaRate"`
	DoubleSideSurcharge decimal.Decimal `json:"doubleSideSurcharge"`
	AvailableSizes      []string        `json:"availableSizes"`
	AvailablePapers     []string        `json:"availablePapers"`
	CostItems           []string        `json:"costItems"`
}

type PageSizeView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Applicability  string          `json:"applicability"`
	AssociatedCost decimal.Decimal `json:"associatedCost"`
}

type PaperConfigView struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	GSM            int             `json:"gsm"`
	Applicability  string          `json:"applicability"`
	AssociatedCost decimal.Decimal `json:"associatedCost"`
}

type CostItemView struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Value          string          `json:"value"`
	Applicability  string          `json:"applicability"`
	AssociatedCost decimal.Decimal `json:"associatedCost"`
}

type SheetView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func scanProduct(rows rowScanner) (ProductView, error) {
	var (
		v                      ProductView
		id                     uuid.UUID
		category               int
		sizes, papers, options pq.StringArray
	)
	err := rows.Scan(&id, &v.Name, &v.Description, &category, &v.BasePrice, &v.AreaRate,
		&v.DoubleSideSurcharge, &sizes, &papers, &options)
	v.ID = id.String()
	v.Category = catalog.Applicability(category).String()
	v.AvailableSizes, v.AvailablePapers, v.CostItems = []string(sizes), []string(papers), []string(options)
	return v, err
}

func scanPageSize(rows rowScanner) (PageSizeView, error) {
	var (
		v             PageSizeView
		id            uuid.UUID
		applicability int
	)
	err := rows.Scan(&id, &v.Name, &v.Width, &v.Height, &applicability, &v.AssociatedCost)
	v.ID = id.String()
	v.Applicability = catalog.Applicability(applicability).String()
	return v, err
}

func scanPaperConfig(rows rowScanner) (PaperConfigView, error) {
	var (
		v             PaperConfigView
		id            uuid.UUID
		applicability int
	)
	err := rows.Scan(&id, &v.Type, &v.GSM, &applicability, &v.AssociatedCost)
	v.ID = id.String()
	v.Applicability = catalog.Applicability(applicability).String()
	return v, err
}

func scanCostItem(rows rowScanner) (CostItemView, error) {
	var (
		v                       CostItemView
		id                      uuid.UUID
		itemType, applicability int
	)
	err := rows.Scan(&id, &itemType, &v.Value, &applicability, &v.AssociatedCost)
	v.ID = id.String()
	v.Type = catalog.CostItemType(itemType).String()
	v.Applicability = catalog.Applicability(applicability).String()
	return v, err
}

func scanSheet(rows rowScanner) (SheetView, error) {
	var (
		v  SheetView
		id uuid.UUID
	)
	err := rows.Scan(&id, &v.Name, &v.Width, &v.Height)
	v.ID = id.String()
	return v, err
}

func collect[T any](rows rowScanner, scan func(rowScanner) (T, error)) ([]T, error) {
	views := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
