package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the read model of an order.
type OrderView struct {
	ID             string          `json:"id"`
	RaisedBy       string          `json:"raisedBy"`
	RaisedTo       *string         `json:"raisedTo,omitempty"`
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	PageSizeID     *string         `json:"pageSizeId,omitempty"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Quantity       int             `json:"quantity"`
	PaperType      string          `json:"paperType"`
	PaperGSM       int             `json:"paperGsm"`
	PrintingSide   string          `json:"printingSide"`
	Finishing      []FinishingView `json:"finishing"`
	AdditionalNote string          `json:"additionalNote,omitempty"`
	Quality        int             `json:"quality"`
	FileURL        string          `json:"fileUrl"`
	DeliveryDate   *time.Time      `json:"deliveryDate,omitempty"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Price          decimal.Decimal `json:"price"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type FinishingView struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Paper is the "type-gsm" label printed on job tickets.
func (v OrderView) Paper() string {
	return order.Paper{Type: v.PaperType, GSM: v.PaperGSM}.Label()
}

const orderColumns = `
	o.id,
	o.raised_by,
	o.raised_to,
	o.product_id,
	o.product_name,
	o.page_size_id,
	o.width,
	o.height,
	o.quantity,
	o.paper_type,
	o.paper_gsm,
	o.printing_side,
	o.finishing,
	o.additional_note,
	o.quality,
	o.file_url,
	o.delivery_date,
	o.unit_price,
	o.price,
	o.status,
	o.created_at,
	o.updated_at`

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanOrders(rows rowScanner) ([]OrderView, error) {
	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			v                     OrderView
			id, raisedBy, product uuid.UUID
			raisedTo, pageSize    uuid.NullUUID
			side, status          int
			finishing             []byte
			note                  sql.NullString
			delivery              sql.NullTime
		)

		if err := rows.Scan(
			&id,
			&raisedBy,
			&raisedTo,
			&product,
			&v.ProductName,
			&pageSize,
			&v.Width,
			&v.Height,
			&v.Quantity,
			&v.PaperType,
			&v.PaperGSM,
			&side,
			&finishing,
			&note,
			&v.Quality,
			&v.FileURL,
			&delivery,
			&v.UnitPrice,
			&v.Price,
			&status,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}

		v.ID = id.String()
		v.RaisedBy = raisedBy.String()
		v.ProductID = product.String()
		v.RaisedTo = nullableID(raisedTo)
		v.PageSizeID = nullableID(pageSize)
		v.PrintingSide = catalog.PrintingSide(side).String()
		v.Status = order.Status(status).String()
		v.AdditionalNote = note.String
		if delivery.Valid {
			d := delivery.Time.UTC()
			v.DeliveryDate = &d
		}

		var err error
		if v.Finishing, err = finishingViews(finishing); err != nil {
			return nil, err
		}

		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func finishingViews(raw []byte) ([]FinishingView, error) {
	views := make([]FinishingView, 0)
	if len(raw) == 0 {
		return views, nil
	}
	if err := json.Unmarshal(raw, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func nullableID(id uuid.NullUUID) *string {
	if !id.Valid {
		return nil
	}
	s := id.UUID.String()
	return &s
}
