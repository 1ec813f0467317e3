package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	api "printflow/internal/adapters/in/http"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errs.NewValidationError(errs.FieldIssue{Field: "width"}), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("quantity"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("bleed", 60, 0, 50), http.StatusBadRequest},
		{"forbidden", errs.NewForbiddenError("CLIENT", "approve orders"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"conflict", errs.NewConflictError("order", "x"), http.StatusConflict},
		{"transition", errs.NewInvalidTransitionError("PENDING", "COMPLETED"), http.StatusConflict},
		{"batch", errs.NewBatchValidationError(errs.OffendingOrder{ID: "x"}), http.StatusConflict},
		{"payload", errs.NewPayloadTooLargeError("file", 2, 1), http.StatusRequestEntityTooLarge},
		{"automation", errs.NewAutomationFailedError(errors.New("timeout")), http.StatusBadGateway},
		{"wrapped", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("batch", "x")), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run("should map "+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.StatusOf(tt.err))
		})
	}
}
