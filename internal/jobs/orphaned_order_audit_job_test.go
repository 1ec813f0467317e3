package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrphanedOrderFinder struct{ mock.Mock }

func (m *MockOrphanedOrderFinder) Handle(ctx context.Context, query queries.ListOrphanedOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestOrphanedOrderAuditJob_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("should log the orphaned order ids", func(t *testing.T) {
		finder := &MockOrphanedOrderFinder{}
		finder.On("Handle", ctx, mock.Anything).Return([]queries.OrderView{{ID: "a"}, {ID: "b"}}, nil)
		logger, buf := newLogger()

		found := jobs.NewOrphanedOrderAuditJob(finder, "@every 1m", logger).Run(ctx)

		assert.Equal(t, 2, found)
		assert.Contains(t, buf.String(), `"orderIds":["a","b"]`)
		assert.Contains(t, buf.String(), `"component":"orphaned_order_audit_job"`)
	})

	t.Run("should stay quiet when nothing is orphaned", func(t *testing.T) {
		finder := &MockOrphanedOrderFinder{}
		finder.On("Handle", ctx, mock.Anything).Return([]queries.OrderView{}, nil)
		logger, buf := newLogger()

		found := jobs.NewOrphanedOrderAuditJob(finder, "@every 1m", logger).Run(ctx)

		assert.Zero(t, found)
		assert.Empty(t, buf.String())
	})

	t.Run("should log a failed pass", func(t *testing.T) {
		finder := &MockOrphanedOrderFinder{}
		finder.On("Handle", ctx, mock.Anything).Return(nil, errors.New("connection refused"))
		logger, buf := newLogger()

		found := jobs.NewOrphanedOrderAuditJob(finder, "@every 1m", logger).Run(ctx)

		assert.Zero(t, found)
		assert.Contains(t, buf.String(), "connection refused")
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should reject a malformed schedule", func(t *testing.T) {
		logger, _ := newLogger()
		manager := jobs.NewJobManager(&MockOrphanedOrderFinder{}, "every now and then", logger)

		assert.Error(t, manager.StartAll())
	})

	t.Run("should start and stop", func(t *testing.T) {
		logger, buf := newLogger()
		manager := jobs.NewJobManager(&MockOrphanedOrderFinder{}, "0 0 3 * * *", logger)

		require.NoError(t, manager.StartAll())
		manager.StopAll()

		assert.Contains(t, buf.String(), "Orphaned order audit job stopped")
	})
}
