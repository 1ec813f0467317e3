package commands_test

import (
	"testing"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogUoW(t *testing.T, repo *MockCatalogRepository, commit bool) *MockCatalogUoWFactory {
	t.Helper()
	ctx := t.Context()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CatalogRepository").Return(repo).Once()
	if commit {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	fixture := newProductFixture(t)
	sizeIDs := []kernel.UUID{fixture.size.ID()}
	paperIDs := []kernel.UUID{fixture.paper.ID()}
	itemIDs := []kernel.UUID{fixture.matte.ID(), fixture.gloss.ID()}
	pricing := catalog.ProductPricing{BasePrice: decimal.RequireFromString("2.5")}

	t.Run("should store a product with its options", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateProductCommand(newSession(t, access.Admin), kernel.NewUUID(),
			"Business Card", "Matte or gloss", catalog.BusinessCard, pricing, sizeIDs, paperIDs, itemIDs)
		require.NoError(t, err)

		repo := new(MockCatalogRepository)
		repo.On("GetPageSizes", ctx, sizeIDs).Return([]catalog.PageSize{fixture.size}, nil).Once()
		repo.On("GetPaperConfigs", ctx, paperIDs).Return([]catalog.PaperConfig{fixture.paper}, nil).Once()
		repo.On("GetCostItems", ctx, itemIDs).Return([]catalog.CostItem{fixture.matte, fixture.gloss}, nil).Once()
		repo.On("AddProduct", ctx, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.ID() == cmd.ProductID() && len(p.OptionsOf(catalog.Lamination)) == 2
		})).Return(nil).Once()

		h := commands.NewCreateProductCommandHandler(newCatalogUoW(t, repo, true))
		err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("should report an unknown size as a field", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateProductCommand(newSession(t, access.Admin), kernel.NewUUID(),
			"Business Card", "", catalog.BusinessCard, pricing, sizeIDs, paperIDs, nil)
		require.NoError(t, err)

		repo := new(MockCatalogRepository)
		repo.On("GetPageSizes", ctx, sizeIDs).
			Return([]catalog.PageSize(nil), errs.NewObjectNotFoundError("pageSize", sizeIDs[0].String())).Once()

		h := commands.NewCreateProductCommandHandler(newCatalogUoW(t, repo, false))
		err = h.Handle(ctx, cmd)

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"availableSizes"}, validationErr.Fields())
		repo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
	})

	t.Run("should reject options of another category", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateProductCommand(newSession(t, access.Admin), kernel.NewUUID(),
			"Poster", "", catalog.Poster, pricing, sizeIDs, paperIDs, nil)
		require.NoError(t, err)

		repo := new(MockCatalogRepository)
		repo.On("GetPageSizes", ctx, sizeIDs).Return([]catalog.PageSize{fixture.size}, nil).Once()
		repo.On("GetPaperConfigs", ctx, paperIDs).Return([]catalog.PaperConfig{fixture.paper}, nil).Once()
		repo.On("GetCostItems", ctx, []kernel.UUID(nil)).Return([]catalog.CostItem{}, nil).Once()

		h := commands.NewCreateProductCommandHandler(newCatalogUoW(t, repo, false))
		err = h.Handle(ctx, cmd)

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Error(), "BUSINESS_CARD")
	})

	t.Run("should forbid staff", func(t *testing.T) {
		cmd, err := commands.NewCreateProductCommand(newSession(t, access.Staff), kernel.NewUUID(),
			"Poster", "", catalog.Poster, pricing, sizeIDs, paperIDs, nil)
		require.NoError(t, err)
		factory := new(MockCatalogUoWFactory)

		h := commands.NewCreateProductCommandHandler(factory)
		err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestAddCatalogOptionCommandHandler_Handle(t *testing.T) {
	fixture := newProductFixture(t)
	dims, err := kernel.NewDimensions(450, 320)
	require.NoError(t, err)
	sheet, err := catalog.NewSheet(kernel.NewUUID(), "SRA3", dims)
	require.NoError(t, err)
	admin := newSession(t, access.Admin)

	pageSizeCmd, err := commands.NewAddPageSizeCommand(admin, fixture.size)
	require.NoError(t, err)
	paperCmd, err := commands.NewAddPaperConfigCommand(admin, fixture.paper)
	require.NoError(t, err)
	costItemCmd, err := commands.NewAddCostItemCommand(admin, fixture.gloss)
	require.NoError(t, err)
	sheetCmd, err := commands.NewAddSheetCommand(admin, sheet)
	require.NoError(t, err)

	tests := []struct {
		name   string
		cmd    commands.AddCatalogOptionCommand
		method string
		arg    any
	}{
		{"should store a page size", pageSizeCmd, "AddPageSize", fixture.size},
		{"should store a paper config", paperCmd, "AddPaperConfig", fixture.paper},
		{"should store a cost item", costItemCmd, "AddCostItem", fixture.gloss},
		{"should store a sheet", sheetCmd, "AddSheet", sheet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			repo := new(MockCatalogRepository)
			repo.On(tt.method, ctx, tt.arg).Return(nil).Once()

			h := commands.NewAddCatalogOptionCommandHandler(newCatalogUoW(t, repo, true))
			err := h.Handle(ctx, tt.cmd)

			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}

	t.Run("should refuse a zero-value option", func(t *testing.T) {
		_, err := commands.NewAddSheetCommand(admin, catalog.Sheet{})

		require.ErrorIs(t, err, catalog.ErrSheetIsNotConstructed)
	})

	t.Run("should refuse an unconstructed command", func(t *testing.T) {
		h := commands.NewAddCatalogOptionCommandHandler(new(MockCatalogUoWFactory))

		err := h.Handle(t.Context(), commands.AddCatalogOptionCommand{})

		require.ErrorIs(t, err, commands.ErrAddCatalogOptionCommandIsNotConstructed)
	})
}
