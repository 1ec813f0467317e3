package catalog_test

import (
	"testing"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDims(t *testing.T, w, h kernel.Millimeters) kernel.Dimensions {
	t.Helper()
	d, err := kernel.NewDimensions(w, h)
	require.NoError(t, err)
	return d
}

func mustSize(t *testing.T, name string, a catalog.Applicability) catalog.PageSize {
	t.Helper()
	s, err := catalog.NewPageSize(kernel.NewUUID(), name, mustDims(t, 90, 55), a, decimal.Zero)
	require.NoError(t, err)
	return s
}

func mustPaper(t *testing.T, paperType string, gsm int) catalog.PaperConfig {
	t.Helper()
	p, err := catalog.NewPaperConfig(kernel.NewUUID(), paperType, gsm, catalog.General, decimal.RequireFromString("0.3"))
	require.NoError(t, err)
	return p
}

func mustCostItem(t *testing.T, itemType catalog.CostItemType, value string) catalog.CostItem {
	t.Helper()
	c, err := catalog.NewCostItem(kernel.NewUUID(), itemType, value, catalog.General, decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	return c
}

func newBusinessCard(t *testing.T, items ...catalog.CostItem) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(
		kernel.NewUUID(),
		"Business Card",
		"Standard 90x55 card",
		catalog.BusinessCard,
		catalog.ProductPricing{BasePrice: decimal.RequireFromString("2.5"), DoubleSideSurcharge: decimal.RequireFromString("0.5")},
		[]catalog.PageSize{mustSize(t, "Standard", catalog.BusinessCard)},
		[]catalog.PaperConfig{mustPaper(t, "Art Paper", 300)},
		items,
	)
	require.NoError(t, err)
	return p
}

func TestParseApplicability(t *testing.T) {
	t.Run("should parse every listed tag", func(t *testing.T) {
		for _, a := range catalog.Applicabilities() {
			parsed, err := catalog.ParseApplicability(a.String())

			require.NoError(t, err)
			assert.Equal(t, a, parsed)
		}
	})

	t.Run("should reject unknown tags", func(t *testing.T) {
		_, err := catalog.ParseApplicability("UNKNOWN")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("general covers every category", func(t *testing.T) {
		assert.True(t, catalog.General.Covers(catalog.Poster))
		assert.True(t, catalog.Poster.Covers(catalog.Poster))
		assert.False(t, catalog.Banner.Covers(catalog.Poster))
	})
}

func TestCostItemType(t *testing.T) {
	t.Run("should round trip names and field names", func(t *testing.T) {
		for _, ct := range catalog.CostItemTypes() {
			parsed, err := catalog.ParseCostItemType(ct.String())
			require.NoError(t, err)
			assert.Equal(t, ct, parsed)

			byField, ok := catalog.CostItemTypeFromField(ct.FieldName())
			require.True(t, ok)
			assert.Equal(t, ct, byField)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := catalog.ParseCostItemType("EMBOSS")
		require.Error(t, err)
		require.Error(t, catalog.UnknownCostItemType.Validate())
	})
}

func TestPrintingSide(t *testing.T) {
	side, err := catalog.ParsePrintingSide("double")
	require.NoError(t, err)
	assert.Equal(t, catalog.DoubleSide, side)

	_, err = catalog.ParsePrintingSide("both")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, catalog.UnknownSide.Validate())
}

func TestCatalogOptions(t *testing.T) {
	t.Run("should reject negative costs and blank names", func(t *testing.T) {
		_, err := catalog.NewPageSize(kernel.NewUUID(), " ", mustDims(t, 10, 10), catalog.General, decimal.NewFromInt(-1))

		assert.Equal(t, []string{"name", "associatedCost"}, errs.NewValidationErrorFrom(err).Fields())
	})

	t.Run("should bound paper weight", func(t *testing.T) {
		_, err := catalog.NewPaperConfig(kernel.NewUUID(), "Art Paper", 0, catalog.General, decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should label papers as type-gsm", func(t *testing.T) {
		assert.Equal(t, "Art Paper-300", mustPaper(t, "Art Paper", 300).Label())
	})

	t.Run("zero values do not validate", func(t *testing.T) {
		require.Error(t, catalog.Sheet{}.Validate())
		require.Error(t, catalog.CostItem{}.Validate())
	})

	t.Run("should build a sheet", func(t *testing.T) {
		s, err := catalog.NewSheet(kernel.NewUUID(), "SRA3", mustDims(t, 320, 450))

		require.NoError(t, err)
		assert.Equal(t, "SRA3", s.Name())
		assert.Equal(t, kernel.Millimeters(450), s.Dimensions().Height())
	})
}

func TestNewProduct(t *testing.T) {
	t.Run("should require sizes and papers", func(t *testing.T) {
		_, err := catalog.NewProduct(kernel.NewUUID(), "Poster", "", catalog.Poster,
			catalog.ProductPricing{}, nil, nil, nil)

		assert.Equal(t, []string{"availableSizes", "availablePapers"}, errs.NewValidationErrorFrom(err).Fields())
	})

	t.Run("should reject options of another category", func(t *testing.T) {
		_, err := catalog.NewProduct(kernel.NewUUID(), "Poster", "", catalog.Poster,
			catalog.ProductPricing{},
			[]catalog.PageSize{mustSize(t, "Card", catalog.BusinessCard)},
			[]catalog.PaperConfig{mustPaper(t, "Art Paper", 170)},
			nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not apply to POSTER")
	})

	t.Run("should reject an option attached twice", func(t *testing.T) {
		matt := mustCostItem(t, catalog.Lamination, "MATT")

		_, err := catalog.NewProduct(kernel.NewUUID(), "Card", "", catalog.BusinessCard,
			catalog.ProductPricing{},
			[]catalog.PageSize{mustSize(t, "Standard", catalog.General)},
			[]catalog.PaperConfig{mustPaper(t, "Art Paper", 300)},
			[]catalog.CostItem{matt, matt})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "attached twice")
	})

	t.Run("should reject negative pricing", func(t *testing.T) {
		_, err := catalog.NewProduct(kernel.NewUUID(), "Card", "", catalog.BusinessCard,
			catalog.ProductPricing{BasePrice: decimal.NewFromInt(-1)},
			[]catalog.PageSize{mustSize(t, "Standard", catalog.General)},
			[]catalog.PaperConfig{mustPaper(t, "Art Paper", 300)},
			nil)

		assert.Equal(t, []string{"basePrice"}, errs.NewValidationErrorFrom(err).Fields())
	})

	t.Run("should expose lookups", func(t *testing.T) {
		p := newBusinessCard(t)

		size := p.AvailableSizes()[0]
		found, ok := p.Size(size.ID())
		require.True(t, ok)
		assert.Equal(t, size.Name(), found.Name())

		_, ok = p.Paper(kernel.NewUUID())
		assert.False(t, ok)
		require.NoError(t, p.Validate())
	})
}

func TestProduct_ResolveFinishing(t *testing.T) {
	matt := mustCostItem(t, catalog.Lamination, "MATT")
	gloss := mustCostItem(t, catalog.Lamination, "GLOSS")
	spot := mustCostItem(t, catalog.UV, "SPOT")

	product := newBusinessCard(t, matt, gloss, spot)

	t.Run("should auto select a single option", func(t *testing.T) {
		items, err := product.ResolveFinishing(map[catalog.CostItemType]string{catalog.Lamination: "gloss"})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "GLOSS", items[0].Value())
		assert.Equal(t, "SPOT", items[1].Value())
	})

	t.Run("should require a choice among several options", func(t *testing.T) {
		_, err := product.ResolveFinishing(nil)

		assert.Equal(t, []string{"laminationType"}, errs.NewValidationErrorFrom(err).Fields())
	})

	t.Run("should reject values the product does not offer", func(t *testing.T) {
		_, err := product.ResolveFinishing(map[catalog.CostItemType]string{
			catalog.Lamination: "VELVET",
			catalog.Foil:       "GOLD",
		})

		assert.ElementsMatch(t, []string{"laminationType", "foilType"}, errs.NewValidationErrorFrom(err).Fields())
	})

	t.Run("should return nothing for a product without finishing", func(t *testing.T) {
		items, err := newBusinessCard(t).ResolveFinishing(nil)

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestProduct_FormSchema(t *testing.T) {
	matt := mustCostItem(t, catalog.Lamination, "MATT")
	gloss := mustCostItem(t, catalog.Lamination, "GLOSS")
	trifold := mustCostItem(t, catalog.Folding, "TRIFOLD")
	product := newBusinessCard(t, matt, gloss, trifold)

	schema := product.FormSchema()

	t.Run("should derive required fields from cost item types", func(t *testing.T) {
		assert.Equal(t, []string{
			"productName", "width", "height", "quantity", "paperConfig",
			"printingSide", "additionalNote", "quality", "foldingType", "laminationType",
		}, schema.RequiredFields())

		folding, ok := schema.Field("foldingType")
		require.True(t, ok)
		assert.Equal(t, "TRIFOLD", folding.AutoSelected)
	})

	t.Run("should report every missing field", func(t *testing.T) {
		err := schema.Validate(catalog.FormValues{"productName": "Business Card", "width": "90"})

		assert.Equal(t, []string{
			"height", "quantity", "paperConfig", "printingSide", "additionalNote", "quality", "laminationType",
		}, errs.NewValidationErrorFrom(err).Fields())
	})

	t.Run("should accept a complete form", func(t *testing.T) {
		err := schema.Validate(catalog.FormValues{
			"productName":    "Business Card",
			"width":          "90",
			"height":         "55",
			"quantity":       "1000",
			"paperConfig":    product.AvailablePapers()[0].ID().String(),
			"printingSide":   "single",
			"additionalNote": "rounded corners",
			"quality":        "300",
			"laminationType": "MATT",
		})

		require.NoError(t, err)
	})

	t.Run("should reject values outside the options", func(t *testing.T) {
		err := schema.Validate(catalog.FormValues{
			"productName":    "Business Card",
			"width":          "90",
			"height":         "55",
			"quantity":       "1000",
			"paperConfig":    kernel.NewUUID().String(),
			"printingSide":   "SINGLE",
			"additionalNote": "-",
			"quality":        "300",
			"laminationType": "MATT",
		})

		assert.Equal(t, []string{"paperConfig"}, errs.NewValidationErrorFrom(err).Fields())
	})
}

func TestProduct_Select(t *testing.T) {
	matt := mustCostItem(t, catalog.Lamination, "MATT")
	product := newBusinessCard(t, matt)
	paper := product.AvailablePapers()[0]
	size := product.AvailableSizes()[0]

	t.Run("should resolve members of the product", func(t *testing.T) {
		sizeID := size.ID()

		sel, err := product.Select(catalog.Choice{
			PageSizeID:    &sizeID,
			PaperConfigID: paper.ID(),
			Side:          catalog.DoubleSide,
		})

		require.NoError(t, err)
		require.NotNil(t, sel.Size)
		assert.Equal(t, "Standard", sel.Size.Name())
		assert.Equal(t, "Art Paper-300", sel.Paper.Label())
		assert.Equal(t, catalog.DoubleSide, sel.Side)
		require.Len(t, sel.CostItems, 1)
		assert.Equal(t, "MATT", sel.CostItems[0].Value())
	})

	t.Run("should reject foreign references together", func(t *testing.T) {
		foreign := kernel.NewUUID()

		_, err := product.Select(catalog.Choice{
			PageSizeID:    &foreign,
			PaperConfigID: kernel.NewUUID(),
			Side:          catalog.UnknownSide,
			Finishing:     map[catalog.CostItemType]string{catalog.Die: "STAR"},
		})

		assert.Equal(t,
			[]string{"pageSize", "paperConfig", "printingSide", "dieType"},
			errs.NewValidationErrorFrom(err).Fields())
	})

	t.Run("should require a paper", func(t *testing.T) {
		_, err := product.Select(catalog.Choice{Side: catalog.SingleSide})

		assert.Equal(t, []string{"paperConfig"}, errs.NewValidationErrorFrom(err).Fields())
	})
}
