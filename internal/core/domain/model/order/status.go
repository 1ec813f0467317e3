package order

import (
	"fmt"
	"strings"

	"printflow/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	PENDING ──approve──> ACTIVE ──batch──> AUTOMATED ─────────┐
//	   │                   │   └─manual──> MANUALLY_AUTOMATED ─┴─complete──> COMPLETED
//	   └──────cancel───────┴──> CANCELLED ──delete──> DELETED
//
// A quantity update re-opens any non-terminal order to ACTIVE.
// COMPLETED, CANCELLED and DELETED are never re-entered.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Active
	Automated
	ManuallyAutomated
	Completed
	Cancelled
	Deleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		Pending:           "PENDING",
		Active:            "ACTIVE",
		Automated:         "AUTOMATED",
		ManuallyAutomated: "MANUALLY_AUTOMATED",
		Completed:         "COMPLETED",
		Cancelled:         "CANCELLED",
		Deleted:           "DELETED",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Active, Automated, ManuallyAutomated, Completed, Cancelled, Deleted}
}

// ParseStatus accepts status names case-insensitively.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range Statuses() {
		if status.String() == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out of range values, e.g. from a corrupted row.
func (s Status) Validate() error {
	if s < Pending || s > Deleted {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal is true for statuses that end the order's working life.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Deleted
}

// Approve moves PENDING to ACTIVE.
func (s Status) Approve() (Status, error) {
	return s.transition(Active, Pending)
}

// Automate moves ACTIVE to AUTOMATED when a packing batch succeeds.
func (s Status) Automate() (Status, error) {
	return s.transition(Automated, Active)
}

// AutomateManually moves ACTIVE to MANUALLY_AUTOMATED when a manual batch is recorded.
func (s Status) AutomateManually() (Status, error) {
	return s.transition(ManuallyAutomated, Active)
}

// Complete finishes a batch-resolved order.
func (s Status) Complete() (Status, error) {
	return s.transition(Completed, Automated, ManuallyAutomated)
}

// Cancel is legal before the order enters a batch.
func (s Status) Cancel() (Status, error) {
	return s.transition(Cancelled, Pending, Active)
}

// Delete soft-deletes a cancelled order.
func (s Status) Delete() (Status, error) {
	return s.transition(Deleted, Cancelled)
}

// Reopen returns a non-terminal order to ACTIVE after its quantity changed so it
// can be automated again.
func (s Status) Reopen() (Status, error) {
	return s.transition(Active, Pending, Active, Automated, ManuallyAutomated)
}

func (s Status) transition(to Status, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return s, errs.NewInvalidTransitionError(s.String(), to.String())
}
