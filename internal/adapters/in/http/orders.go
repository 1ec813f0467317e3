package http

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	productIDField    = "productId"
	deliveryDateField = "deliveryDate"
)

// CreateOrder accepts the order form as a flat JSON object. Form fields may be
// strings or numbers.
func (s *Server) CreateOrder(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}

	var body map[string]json.RawMessage
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}

	productID, values, deliveryDate, err := parseOrderForm(body)
	if err != nil {
		return fail(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(session, orderID, productID, values, deliveryDate)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusCreated, createdID{ID: orderID.String()})
}

func parseOrderForm(body map[string]json.RawMessage) (kernel.UUID, catalog.FormValues, *time.Time, error) {
	var (
		issues       []errs.FieldIssue
		productID    kernel.UUID
		deliveryDate *time.Time
	)
	values := make(catalog.FormValues, len(body))

	for _, field := range slices.Sorted(maps.Keys(body)) {
		value, isScalar := scalarText(body[field])
		if !isScalar {
			issues = append(issues, errs.FieldIssue{Field: field, Reason: "must be a string or a number"})
			continue
		}

		switch field {
		case productIDField:
			if value == "" {
				continue
			}
			id, err := kernel.UUIDFromString(value)
			if err != nil {
				issues = append(issues, errs.FieldIssue{Field: field, Reason: "is not a valid identifier"})
				continue
			}
			productID = id
		case deliveryDateField:
			if value == "" {
				continue
			}
			date, err := time.Parse(time.RFC3339, value)
			if err != nil {
				issues = append(issues, errs.FieldIssue{Field: field, Reason: "must be an RFC 3339 timestamp"})
				continue
			}
			deliveryDate = &date
		default:
			values[field] = value
		}
	}

	if raw, seen := body[productIDField]; !seen || isBlank(raw) {
		issues = append(issues, errs.FieldIssue{Field: productIDField, Reason: "is required"})
	}
	if len(issues) > 0 {
		return kernel.UUID{}, nil, nil, errs.NewValidationError(issues...)
	}
	return productID, values, deliveryDate, nil
}

// scalarText renders a JSON string, number or boolean as form text. null
// reads as blank.
func scalarText(raw json.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	switch {
	case trimmed == "" || trimmed == "null":
		return "", true
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), true
	case strings.HasPrefix(trimmed, "{"), strings.HasPrefix(trimmed, "["):
		return "", false
	default:
		return trimmed, true
	}
}

func isBlank(raw json.RawMessage) bool {
	value, isScalar := scalarText(raw)
	return isScalar && value == ""
}

type designFileResponse struct {
	FileURL  string        `json:"fileUrl"`
	Metadata imageMetadata `json:"metadata"`
}

type imageMetadata struct {
	Format   string `json:"format"`
	WidthPx  int    `json:"widthPx"`
	HeightPx int    `json:"heightPx"`
	Density  int    `json:"density"`
}

func (s *Server) UploadDesignFile(c echo.Context) error {
	cmd, closeFile, err := uploadCommand(c)
	if err != nil {
		return fail(c, err)
	}
	defer closeFile()

	design, err := s.h.UploadDesignFile.Handle(c.Request().Context(), cmd)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusCreated, designFileResponse{
		FileURL: design.FileURL,
		Metadata: imageMetadata{
			Format:   design.Metadata.Format,
			WidthPx:  design.Metadata.WidthPx,
			HeightPx: design.Metadata.HeightPx,
			Density:  design.Metadata.Density,
		},
	})
}

// uploadCommand reads the multipart "file" field. The returned func closes
// the part and must be called once the command has been handled.
func uploadCommand(c echo.Context) (commands.UploadFileCommand, func(), error) {
	session, err := sessionOf(c)
	if err != nil {
		return commands.UploadFileCommand{}, nil, err
	}

	header, err := c.FormFile("file")
	if err != nil {
		return commands.UploadFileCommand{}, nil,
			errs.NewValidationError(errs.FieldIssue{Field: "file", Reason: "is required"})
	}
	file, err := header.Open()
	if err != nil {
		return commands.UploadFileCommand{}, nil, fmt.Errorf("open uploaded file: %w", err)
	}

	cmd, err := commands.NewUploadFileCommand(session, header.Filename, header.Header.Get(echo.HeaderContentType), header.Size, file)
	if err != nil {
		_ = file.Close()
		return commands.UploadFileCommand{}, nil, err
	}
	return cmd, func() { _ = file.Close() }, nil
}

func (s *Server) ListOrdersByStatus(c echo.Context, status string) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}

	query, err := queries.NewListOrdersByStatusQuery(session, status)
	if err != nil {
		return fail(c, err)
	}
	orders, err := s.h.ListOrdersByStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, orders)
}

func (s *Server) GetOrder(c echo.Context, id uuid.UUID) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}
	orderID, err := toKernelID(id)
	if err != nil {
		return badRequest(c, "id", err)
	}

	query, err := queries.NewGetOrderQuery(session, orderID)
	if err != nil {
		return fail(c, err)
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, view)
}

type assignRequest struct {
	StaffID string `json:"staffId"`
}

func (s *Server) AssignOrder(c echo.Context, id uuid.UUID) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}
	orderID, err := toKernelID(id)
	if err != nil {
		return badRequest(c, "id", err)
	}

	var body assignRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}
	staffID, err := kernel.UUIDFromString(body.StaffID)
	if err != nil {
		return badRequest(c, "staffId", err)
	}

	cmd, err := commands.NewAssignOrderCommand(session, orderID, staffID)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.AssignOrder.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, nil)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) UpdateOrderQuantity(c echo.Context, id uuid.UUID) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}
	orderID, err := toKernelID(id)
	if err != nil {
		return badRequest(c, "id", err)
	}

	var body quantityRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}

	cmd, err := commands.NewUpdateOrderQuantityCommand(session, orderID, body.Quantity)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.UpdateQuantity.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, nil)
}

func (s *Server) ApproveOrder(c echo.Context, id uuid.UUID) error {
	return s.changeStatus(c, id, commands.Approve)
}

func (s *Server) CancelOrder(c echo.Context, id uuid.UUID) error {
	return s.changeStatus(c, id, commands.Cancel)
}

func (s *Server) CompleteOrder(c echo.Context, id uuid.UUID) error {
	return s.changeStatus(c, id, commands.Complete)
}

// DeleteOrder soft deletes a cancelled order.
func (s *Server) DeleteOrder(c echo.Context, id uuid.UUID) error {
	return s.changeStatus(c, id, commands.SoftDelete)
}

func (s *Server) changeStatus(c echo.Context, id uuid.UUID, transition commands.OrderTransition) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}
	orderID, err := toKernelID(id)
	if err != nil {
		return badRequest(c, "id", err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(session, orderID, transition)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, nil)
}
