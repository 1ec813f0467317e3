package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
	ErrBatchValidation   = errors.New("batch validation failed")
	ErrAutomationFailed  = errors.New("automation failed")
	ErrPayloadTooLarge   = errors.New("payload too large")
	ErrForbidden         = errors.New("forbidden")
)

// FieldIssue names one rejected input field.
type FieldIssue struct {
	Field  string
	Reason string
}

// ValidationError lists every missing or malformed field of a request so the
// caller can correct all of them at once.
type ValidationError struct {
	Issues []FieldIssue
}

func NewValidationError(issues ...FieldIssue) *ValidationError {
	return &ValidationError{Issues: issues}
}

// NewValidationErrorFrom flattens a (possibly joined) error tree into field issues.
// Typed value errors contribute their ParamName, anything else becomes an issue
// with an empty field name.
func NewValidationErrorFrom(err error) *ValidationError {
	if existing, ok := err.(*ValidationError); ok {
		return existing
	}

	issues := make([]FieldIssue, 0)
	collectIssues(err, &issues)
	return &ValidationError{Issues: issues}
}

func collectIssues(err error, issues *[]FieldIssue) {
	if err == nil {
		return
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectIssues(e, issues)
		}
		return
	}

	var (
		required   *ValueIsRequiredError
		invalid    *ValueIsInvalidError
		outOfRange *ValueIsOutOfRangeError
		nested     *ValidationError
	)
	switch {
	case errors.As(err, &nested):
		*issues = append(*issues, nested.Issues...)
	case errors.As(err, &required):
		*issues = append(*issues, FieldIssue{Field: required.ParamName, Reason: "is required"})
	case errors.As(err, &invalid):
		reason := "is invalid"
		if invalid.Cause != nil {
			reason = invalid.Cause.Error()
		}
		*issues = append(*issues, FieldIssue{Field: invalid.ParamName, Reason: reason})
	case errors.As(err, &outOfRange):
		*issues = append(*issues, FieldIssue{
			Field:  outOfRange.ParamName,
			Reason: fmt.Sprintf("must be between %v and %v", outOfRange.Min, outOfRange.Max),
		})
	default:
		*issues = append(*issues, FieldIssue{Reason: err.Error()})
	}
}

// Fields returns the names of the rejected fields in report order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		fields = append(fields, issue.Field)
	}
	return fields
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		switch {
		case issue.Field == "":
			parts = append(parts, issue.Reason)
		case issue.Reason == "":
			parts = append(parts, issue.Field)
		default:
			parts = append(parts, fmt.Sprintf("%s (%s)", issue.Field, issue.Reason))
		}
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidTransitionError reports an illegal status change.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConflictError reports a write that collides with existing state.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %v)", ErrConflict, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrConflict, e.ParamName, e.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// OffendingOrder is one order that made a batch ineligible.
type OffendingOrder struct {
	ID     string
	Reason string
}

// BatchValidationError rejects a whole batch and names exactly the orders
// responsible for it.
type BatchValidationError struct {
	Offending []OffendingOrder
}

func NewBatchValidationError(offending ...OffendingOrder) *BatchValidationError {
	return &BatchValidationError{Offending: offending}
}

// OffendingIDs returns the ids of the rejected orders in request order.
func (e *BatchValidationError) OffendingIDs() []string {
	ids := make([]string, 0, len(e.Offending))
	for _, o := range e.Offending {
		ids = append(ids, o.ID)
	}
	return ids
}

func (e *BatchValidationError) Error() string {
	parts := make([]string, 0, len(e.Offending))
	for _, o := range e.Offending {
		parts = append(parts, fmt.Sprintf("%s (%s)", o.ID, o.Reason))
	}
	return fmt.Sprintf("%s: %s", ErrBatchValidation, strings.Join(parts, ", "))
}

func (e *BatchValidationError) Unwrap() error {
	return ErrBatchValidation
}

// AutomationFailedError wraps a failure of the external packing optimizer.
type AutomationFailedError struct {
	Cause error
}

func NewAutomationFailedError(cause error) *AutomationFailedError {
	return &AutomationFailedError{Cause: cause}
}

func (e *AutomationFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrAutomationFailed, e.Cause)
	}
	return ErrAutomationFailed.Error()
}

func (e *AutomationFailedError) Unwrap() error {
	return ErrAutomationFailed
}

// PayloadTooLargeError reports an upload above its byte limit.
type PayloadTooLargeError struct {
	ParamName string
	Size      int64
	Limit     int64
}

func NewPayloadTooLargeError(paramName string, size, limit int64) *PayloadTooLargeError {
	return &PayloadTooLargeError{ParamName: paramName, Size: size, Limit: limit}
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("%s: %s is %d bytes, limit is %d bytes", ErrPayloadTooLarge, e.ParamName, e.Size, e.Limit)
}

func (e *PayloadTooLargeError) Unwrap() error {
	return ErrPayloadTooLarge
}

// ForbiddenError reports a role that may not perform an action.
type ForbiddenError struct {
	Role   string
	Action string
}

func NewForbiddenError(role, action string) *ForbiddenError {
	return &ForbiddenError{Role: role, Action: action}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrForbidden, e.Role, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
