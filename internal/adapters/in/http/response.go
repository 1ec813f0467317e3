package http

import (
	"errors"
	"net/http"

	"printflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every JSON answer of the API.
type Envelope struct {
	Success      bool         `json:"success"`
	Data         any          `json:"data,omitempty"`
	Message      string       `json:"message,omitempty"`
	Fields       []FieldError `json:"fields,omitempty"`
	OffendingIDs []string     `json:"offendingIds,omitempty"`
}

// FieldError is one rejected input field.
type FieldError struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

type createdID struct {
	ID string `json:"id"`
}

// StatusOf maps an application error to its HTTP status.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrBatchValidation):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errs.ErrAutomationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an envelope. Internal errors are logged by the request
// logger and never echoed to the caller.
func fail(c echo.Context, err error) error {
	status := StatusOf(err)
	body := Envelope{Success: false, Message: err.Error()}

	var (
		validation *errs.ValidationError
		batch      *errs.BatchValidationError
	)
	if errors.As(err, &validation) {
		for _, issue := range validation.Issues {
			body.Fields = append(body.Fields, FieldError{Field: issue.Field, Reason: issue.Reason})
		}
	}
	if errors.As(err, &batch) {
		body.OffendingIDs = batch.OffendingIDs()
	}
	if status == http.StatusInternalServerError {
		body.Message = http.StatusText(status)
		c.Set(internalErrorKey, err)
	}

	return c.JSON(status, body)
}

const internalErrorKey = "internalError"

// badRequest reports a body or parameter that could not be decoded.
func badRequest(c echo.Context, field string, err error) error {
	return fail(c, errs.NewValidationError(errs.FieldIssue{Field: field, Reason: err.Error()}))
}

// ErrorHandler renders errors escaping the handlers, echo's own included, in the envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, isString := httpErr.Message.(string); isString {
			message = m
		}
		_ = c.JSON(httpErr.Code, Envelope{Success: false, Message: message})
		return
	}

	_ = fail(c, err)
}
