package automation_test

import (
	"encoding/json"
	"testing"

	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() automation.Settings {
	return automation.Settings{
		SheetID:   kernel.NewUUID(),
		Bleed:     3,
		Algorithm: automation.BottomLeftFill,
		Margins:   automation.Margins{Top: 10, Bottom: 10, Left: 5, Right: 5},
	}
}

func validLayout(t *testing.T) automation.Layout {
	t.Helper()
	l, err := automation.NewLayout(87.5, "GRID", json.RawMessage(`{"placements":[]}`))
	require.NoError(t, err)
	return l
}

func TestParseAlgorithmType(t *testing.T) {
	t.Run("should default to bottom left fill", func(t *testing.T) {
		a, err := automation.ParseAlgorithmType("")

		require.NoError(t, err)
		assert.Equal(t, automation.BottomLeftFill, a)
	})

	t.Run("should parse every algorithm", func(t *testing.T) {
		for _, a := range automation.AlgorithmTypes() {
			parsed, err := automation.ParseAlgorithmType(a.String())
			require.NoError(t, err)
			assert.Equal(t, a, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := automation.ParseAlgorithmType("GENETIC")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMargins_PrintableArea(t *testing.T) {
	sheet, err := kernel.NewDimensions(320, 450)
	require.NoError(t, err)

	t.Run("should subtract every edge", func(t *testing.T) {
		m := automation.Margins{Top: 10, Bottom: 20, Left: 5, Right: 15}

		area, err := m.PrintableArea(sheet)

		require.NoError(t, err)
		assert.Equal(t, kernel.Millimeters(300), area.Width())
		assert.Equal(t, kernel.Millimeters(420), area.Height())
	})

	t.Run("should reject margins consuming the sheet", func(t *testing.T) {
		m := automation.Margins{Left: 160, Right: 160}

		_, err := m.PrintableArea(sheet)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "no printable area")
	})

	t.Run("should reject negative margins", func(t *testing.T) {
		m := automation.Margins{Top: -1}

		_, err := m.PrintableArea(sheet)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewLayout(t *testing.T) {
	t.Run("should keep the raw payload", func(t *testing.T) {
		l := validLayout(t)

		assert.InDelta(t, 87.5, l.Efficiency(), 0.0001)
		assert.Equal(t, "GRID", l.PlacementType())
		assert.JSONEq(t, `{"placements":[]}`, string(l.Raw()))
	})

	t.Run("should reject efficiency above 100", func(t *testing.T) {
		_, err := automation.NewLayout(101, "GRID", nil)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject malformed payload", func(t *testing.T) {
		_, err := automation.NewLayout(50, "GRID", json.RawMessage(`{`))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewBatch(t *testing.T) {
	t.Run("should create a batch with a generated name", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		b, err := automation.NewBatch(kernel.NewUUID(), "  ", "", ids, validSettings(), validLayout(t))

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Contains(t, b.Name(), "Automation ")
		assert.Equal(t, ids, b.OrderIDs())
		assert.Equal(t, automation.BottomLeftFill, b.Settings().Algorithm)
	})

	t.Run("should keep the given name", func(t *testing.T) {
		b, err := automation.NewBatch(kernel.NewUUID(), "Monday cards", "", []kernel.UUID{kernel.NewUUID()},
			validSettings(), validLayout(t))

		require.NoError(t, err)
		assert.Equal(t, "Monday cards", b.Name())
	})

	t.Run("should reject empty and duplicate order ids", func(t *testing.T) {
		_, err := automation.NewBatch(kernel.NewUUID(), "", "", nil, validSettings(), validLayout(t))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		id := kernel.NewUUID()
		_, err = automation.NewBatch(kernel.NewUUID(), "", "", []kernel.UUID{id, id}, validSettings(), validLayout(t))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "more than once")
	})

	t.Run("should reject invalid settings and missing layout together", func(t *testing.T) {
		settings := validSettings()
		settings.SheetID = kernel.UUID{}
		settings.Bleed = -1
		settings.Algorithm = automation.UnknownAlgorithm

		_, err := automation.NewBatch(kernel.NewUUID(), "", "", []kernel.UUID{kernel.NewUUID()},
			settings, automation.Layout{})

		require.Error(t, err)
		fields := errs.NewValidationErrorFrom(err).Fields()
		assert.Contains(t, fields, "sheetId")
		assert.Contains(t, fields, "bleed")
		assert.Contains(t, fields, "type")
		assert.Contains(t, err.Error(), "NewLayout")
	})
}

func TestNewManualBatch(t *testing.T) {
	t.Run("should create a manual batch", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID()}

		b, err := automation.NewManualBatch(kernel.NewUUID(), "Hand layout", "poster run", ids, "https://files/manual/a.pdf")

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, "Hand layout", b.Name())
		assert.Equal(t, "https://files/manual/a.pdf", b.FileURL())
		assert.False(t, b.CreatedAt().IsZero())
	})

	t.Run("should require name file and orders", func(t *testing.T) {
		_, err := automation.NewManualBatch(kernel.NewUUID(), "", "", nil, "")

		require.Error(t, err)
		fields := errs.NewValidationErrorFrom(err).Fields()
		assert.ElementsMatch(t, []string{"name", "orderIds", "automationFile"}, fields)
	})

	t.Run("should cap manual files at one mebibyte", func(t *testing.T) {
		assert.Equal(t, int64(1048576), automation.MaxManualFileSize)
	})
}
