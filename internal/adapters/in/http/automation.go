package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) ListBatches(c echo.Context) error {
	return list(c, s.h.ListBatches.Handle)
}

func (s *Server) ListManualBatches(c echo.Context) error {
	return list(c, s.h.ListManualBatches.Handle)
}

type marginsRequest struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

type batchRequest struct {
	OrderIDs         []string       `json:"orderIds"`
	SheetID          string         `json:"sheetId"`
	Bleed            int            `json:"bleed"`
	RotationsAllowed bool           `json:"rotationsAllowed"`
	Type             string         `json:"type"`
	Margins          marginsRequest `json:"margins"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	TimeoutSeconds   int            `json:"timeoutSeconds"`
}

func (r batchRequest) settings() (automation.Settings, error) {
	sheetID, sheetErr := kernel.UUIDFromString(r.SheetID)
	if sheetErr != nil {
		sheetErr = errs.NewValueIsInvalidErrorWithCause("sheetId", sheetErr)
	}
	algorithm, algorithmErr := automation.ParseAlgorithmType(r.Type)

	return automation.Settings{
		SheetID:          sheetID,
		Bleed:            kernel.Millimeters(r.Bleed),
		RotationsAllowed: r.RotationsAllowed,
		Algorithm:        algorithm,
		Margins: automation.Margins{
			Top:    kernel.Millimeters(r.Margins.Top),
			Bottom: kernel.Millimeters(r.Margins.Bottom),
			Left:   kernel.Millimeters(r.Margins.Left),
			Right:  kernel.Millimeters(r.Margins.Right),
		},
	}, errors.Join(sheetErr, algorithmErr)
}

func (s *Server) SubmitBatch(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}

	var body batchRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}

	orderIDs, idsErr := kernel.ParseUUIDs("orderIds", body.OrderIDs)
	settings, settingsErr := body.settings()
	if err = errors.Join(idsErr, settingsErr); err != nil {
		return fail(c, errs.NewValidationErrorFrom(err))
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBatchCommand(
		session,
		batchID,
		orderIDs,
		settings,
		body.Name,
		body.Description,
		time.Duration(body.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.SubmitBatch.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, createdID{ID: batchID.String()})
}

type manualBatchRequest struct {
	OrderIDs       []string `json:"orderIds"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	AutomationFile string   `json:"automationFile"`
}

func (s *Server) SubmitManualBatch(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}

	var body manualBatchRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}

	orderIDs, err := kernel.ParseUUIDs("orderIds", body.OrderIDs)
	if err != nil {
		return fail(c, errs.NewValidationErrorFrom(err))
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewSubmitManualBatchCommand(
		session, batchID, orderIDs, body.Name, body.Description, body.AutomationFile,
	)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.SubmitManualBatch.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, createdID{ID: batchID.String()})
}

type manualFileResponse struct {
	FileURL string `json:"fileUrl"`
}

func (s *Server) UploadManualFile(c echo.Context) error {
	cmd, closeFile, err := uploadCommand(c)
	if err != nil {
		return fail(c, err)
	}
	defer closeFile()

	url, err := s.h.UploadManualFile.Handle(c.Request().Context(), cmd)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, manualFileResponse{FileURL: url})
}

func (s *Server) GetBatch(c echo.Context, id uuid.UUID) error {
	query, err := batchQuery(c, id)
	if err != nil {
		return fail(c, err)
	}

	view, err := s.h.GetBatch.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, view)
}

// ExportBatch streams the production ticket of a batch as an XLSX workbook.
func (s *Server) ExportBatch(c echo.Context, id uuid.UUID) error {
	query, err := batchQuery(c, id)
	if err != nil {
		return fail(c, err)
	}

	export, err := s.h.ExportBatch.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}
	defer func() { _ = export.Workbook.Close() }()

	buf, err := export.Workbook.WriteToBuffer()
	if err != nil {
		return fail(c, fmt.Errorf("render workbook: %w", err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName()))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func batchQuery(c echo.Context, id uuid.UUID) (queries.GetBatchQuery, error) {
	session, err := sessionOf(c)
	if err != nil {
		return queries.GetBatchQuery{}, err
	}
	batchID, err := toKernelID(id)
	if err != nil {
		return queries.GetBatchQuery{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return queries.NewGetBatchQuery(session, batchID)
}

func (s *Server) DeleteBatch(c echo.Context, id uuid.UUID) error {
	return s.deleteBatch(c, id, commands.OptimizedBatch)
}

func (s *Server) DeleteManualBatch(c echo.Context, id uuid.UUID) error {
	return s.deleteBatch(c, id, commands.ManualBatch)
}

func (s *Server) deleteBatch(c echo.Context, id uuid.UUID, kind commands.BatchKind) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}
	batchID, err := toKernelID(id)
	if err != nil {
		return badRequest(c, "id", err)
	}

	cmd, err := commands.NewDeleteBatchCommand(session, batchID, kind)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.DeleteBatch.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, nil)
}
