package order_test

import (
	"fmt"
	"testing"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "42 is not a valid status")
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should render names", func(t *testing.T) {
		assert.Equal(t, "PENDING", order.Pending.String())
		assert.Equal(t, "MANUALLY_AUTOMATED", order.ManuallyAutomated.String())
		assert.Equal(t, "DELETED", order.Deleted.String())
		assert.Equal(t, "UNKNOWN", order.Status(99).String())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse names case-insensitively", func(t *testing.T) {
		status, err := order.ParseStatus(" manually_automated ")

		require.NoError(t, err)
		assert.Equal(t, order.ManuallyAutomated, status)
	})

	t.Run("should round trip every status", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("SHIPPED")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	approve := func(s order.Status) (order.Status, error) { return s.Approve() }
	automate := func(s order.Status) (order.Status, error) { return s.Automate() }
	manual := func(s order.Status) (order.Status, error) { return s.AutomateManually() }
	complete := func(s order.Status) (order.Status, error) { return s.Complete() }
	cancel := func(s order.Status) (order.Status, error) { return s.Cancel() }
	remove := func(s order.Status) (order.Status, error) { return s.Delete() }
	reopen := func(s order.Status) (order.Status, error) { return s.Reopen() }

	cases := []struct {
		name    string
		apply   transition
		to      order.Status
		allowed []order.Status
	}{
		{"approve", approve, order.Active, []order.Status{order.Pending}},
		{"automate", automate, order.Automated, []order.Status{order.Active}},
		{"automate manually", manual, order.ManuallyAutomated, []order.Status{order.Active}},
		{"complete", complete, order.Completed, []order.Status{order.Automated, order.ManuallyAutomated}},
		{"cancel", cancel, order.Cancelled, []order.Status{order.Pending, order.Active}},
		{"delete", remove, order.Deleted, []order.Status{order.Cancelled}},
		{"reopen", reopen, order.Active, []order.Status{order.Pending, order.Active, order.Automated, order.ManuallyAutomated}},
	}

	for _, tc := range cases {
		allowed := make(map[order.Status]bool, len(tc.allowed))
		for _, s := range tc.allowed {
			allowed[s] = true
		}

		for _, from := range order.Statuses() {
			if allowed[from] {
				t.Run(fmt.Sprintf("should %s from %s", tc.name, from), func(t *testing.T) {
					next, err := tc.apply(from)

					require.NoError(t, err)
					assert.Equal(t, tc.to, next)
				})
				continue
			}

			t.Run(fmt.Sprintf("should not %s from %s", tc.name, from), func(t *testing.T) {
				next, err := tc.apply(from)

				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, from, next)

				var transitionErr *errs.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, from.String(), transitionErr.From)
				assert.Equal(t, tc.to.String(), transitionErr.To)
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should flag completed cancelled and deleted only", func(t *testing.T) {
		for _, status := range order.Statuses() {
			expected := status == order.Completed || status == order.Cancelled || status == order.Deleted
			assert.Equal(t, expected, status.IsTerminal(), status.String())
		}
	})
}
