package queries

import (
	"context"
	"fmt"
	"strings"

	"printflow/internal/core/domain/model/access"

	"github.com/lib/pq"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	exportSummarySheet = "Batch"
	exportOrdersSheet  = "Orders"
)

var exportOrderHeaders = []string{
	"#", "Order", "Product", "Width (mm)", "Height (mm)", "Quantity",
	"Paper", "Side", "Finishing", "Quality (dpi)", "Delivery date", "Artwork",
}

// BatchExport is a production ticket for one optimizer batch.
type BatchExport struct {
	Batch    BatchView
	Orders   []OrderView
	Workbook *excelize.File
}

// FileName is the attachment name offered to the browser.
func (e BatchExport) FileName() string {
	name := strings.Map(func(r rune) rune {
		if r == ' ' || r == '/' || r == '\\' || r == ':' {
			return '_'
		}
		return r
	}, e.Batch.Name)
	return fmt.Sprintf("%s_%s.xlsx", name, e.Batch.ID[:8])
}

// ExportBatchQueryHandler renders a batch and its orders, in batch order, as
// an XLSX workbook. The caller closes the workbook.
type ExportBatchQueryHandler struct {
	db *gorm.DB
}

func NewExportBatchQueryHandler(db *gorm.DB) ExportBatchQueryHandler {
	return ExportBatchQueryHandler{db: db}
}

func (h ExportBatchQueryHandler) Handle(ctx context.Context, query GetBatchQuery) (BatchExport, error) {
	if err := query.Validate(); err != nil {
		return BatchExport{}, err
	}
	if err := query.Session().Require("export batches", access.Staff, access.Admin); err != nil {
		return BatchExport{}, err
	}

	batch, err := fetchBatch(ctx, h.db, query)
	if err != nil {
		return BatchExport{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT`+orderColumns+`
		FROM unnest(?::uuid[]) WITH ORDINALITY AS b(id, pos)
		JOIN orders o ON o.id = b.id
		ORDER BY b.pos`, pq.StringArray(batch.OrderIDs)).Rows()
	if err != nil {
		return BatchExport{}, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return BatchExport{}, err
	}

	workbook, err := renderBatchWorkbook(batch, orders)
	if err != nil {
		return BatchExport{}, err
	}
	return BatchExport{Batch: batch, Orders: orders, Workbook: workbook}, nil
}

func renderBatchWorkbook(batch BatchView, orders []OrderView) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSummarySheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	summary := [][]any{
		{"Batch", batch.Name},
		{"Description", batch.Description},
		{"Created", batch.CreatedAt.Format("2006-01-02 15:04")},
		{"Algorithm", batch.Algorithm},
		{"Sheet", batch.SheetID},
		{"Bleed (mm)", batch.Bleed},
		{"Rotations allowed", batch.RotationsAllowed},
		{"Margins (mm)", fmt.Sprintf("%d/%d/%d/%d",
			batch.Margins.Top, batch.Margins.Bottom, batch.Margins.Left, batch.Margins.Right)},
		{"Efficiency (%)", batch.Efficiency},
		{"Placement", batch.PlacementType},
		{"Orders", len(batch.OrderIDs)},
	}
	for i, row := range summary {
		if err = f.SetSheetRow(exportSummarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	_ = f.SetCellStyle(exportSummarySheet, "A1", fmt.Sprintf("A%d", len(summary)), bold)
	_ = f.SetColWidth(exportSummarySheet, "A", "A", 20)
	_ = f.SetColWidth(exportSummarySheet, "B", "B", 40)

	if _, err = f.NewSheet(exportOrdersSheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	for i, h := range exportOrderHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetCellValue(exportOrdersSheet, col+"1", h)
		_ = f.SetCellStyle(exportOrdersSheet, col+"1", col+"1", bold)
	}

	for i, o := range orders {
		delivery := ""
		if o.DeliveryDate != nil {
			delivery = o.DeliveryDate.Format("2006-01-02")
		}
		row := []any{
			i + 1, o.ID, o.ProductName, o.Width, o.Height, o.Quantity,
			o.Paper(), o.PrintingSide, finishingLabel(o.Finishing), o.Quality, delivery, o.FileURL,
		}
		if err = f.SetSheetRow(exportOrdersSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	colWidths := []float64{5, 38, 20, 11, 11, 10, 16, 8, 30, 13, 14, 40}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(exportOrdersSheet, col, col, w)
	}

	return f, nil
}

func finishingLabel(finishing []FinishingView) string {
	parts := make([]string, 0, len(finishing))
	for _, fv := range finishing {
		parts = append(parts, fv.Type+"="+fv.Value)
	}
	return strings.Join(parts, ", ")
}
