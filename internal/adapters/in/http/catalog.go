package http

import (
	"context"
	"errors"
	"net/http"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func list[T any](c echo.Context, load func(context.Context, queries.ListQuery) ([]T, error)) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}
	query, err := queries.NewListQuery(session)
	if err != nil {
		return fail(c, err)
	}

	items, err := load(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, items)
}

func (s *Server) ListProducts(c echo.Context) error {
	return list(c, s.h.ListCatalog.Products)
}

func (s *Server) ListPageSizes(c echo.Context) error {
	return list(c, s.h.ListCatalog.PageSizes)
}

func (s *Server) ListPaperConfigs(c echo.Context) error {
	return list(c, s.h.ListCatalog.PaperConfigs)
}

func (s *Server) ListCostItems(c echo.Context) error {
	return list(c, s.h.ListCatalog.CostItems)
}

func (s *Server) ListSheets(c echo.Context) error {
	return list(c, s.h.ListCatalog.Sheets)
}

func (s *Server) ListApplicabilities(c echo.Context) error {
	return s.enumeration(c, queries.ApplicabilityEnumeration)
}

func (s *Server) ListCostItemTypes(c echo.Context) error {
	return s.enumeration(c, queries.CostItemTypeEnumeration)
}

func (s *Server) ListAlgorithms(c echo.Context) error {
	return s.enumeration(c, queries.AlgorithmEnumeration)
}

func (s *Server) enumeration(c echo.Context, kind queries.Enumeration) error {
	values, err := s.h.ListEnumeration.Handle(kind)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, values)
}

type productRequest struct {
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Category            string          `json:"category"`
	BasePrice           decimal.Decimal `json:"basePrice"`
	AreaRate            decimal.Decimal `json:"areaRate"`
	DoubleSideSurcharge decimal.Decimal `json:"doubleSideSurcharge"`
	PageSizeIDs         []string        `json:"pageSizeIds"`
	PaperConfigIDs      []string        `json:"paperConfigIds"`
	CostItemIDs         []string        `json:"costItemIds"`
}

func (s *Server) CreateProduct(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}

	var body productRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}

	category, categoryErr := catalog.ParseApplicability(body.Category)
	sizeIDs, sizesErr := kernel.ParseUUIDs("pageSizeIds", body.PageSizeIDs)
	paperIDs, papersErr := kernel.ParseUUIDs("paperConfigIds", body.PaperConfigIDs)
	costItemIDs, costItemsErr := kernel.ParseUUIDs("costItemIds", body.CostItemIDs)
	if err = errors.Join(categoryErr, sizesErr, papersErr, costItemsErr); err != nil {
		return fail(c, errs.NewValidationErrorFrom(err))
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		session,
		productID,
		body.Name,
		body.Description,
		category,
		catalog.ProductPricing{
			BasePrice:           body.BasePrice,
			AreaRate:            body.AreaRate,
			DoubleSideSurcharge: body.DoubleSideSurcharge,
		},
		sizeIDs,
		paperIDs,
		costItemIDs,
	)
	if err != nil {
		return fail(c, err)
	}
	if err = s.h.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, createdID{ID: productID.String()})
}

type pageSizeRequest struct {
	Name           string          `json:"name"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Applicability  string          `json:"applicability"`
	AssociatedCost decimal.Decimal `json:"associatedCost"`
}

func (s *Server) CreatePageSize(c echo.Context) error {
	var body pageSizeRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}

	return s.addOption(c, func(session access.Session, id kernel.UUID) (commands.AddCatalogOptionCommand, error) {
		dims, dimsErr := kernel.NewDimensions(kernel.Millimeters(body.Width), kernel.Millimeters(body.Height))
		applicability, applicabilityErr := catalog.ParseApplicability(body.Applicability)
		if err := errors.Join(dimsErr, applicabilityErr); err != nil {
			return commands.AddCatalogOptionCommand{}, err
		}

		size, err := catalog.NewPageSize(id, body.Name, dims, applicability, body.AssociatedCost)
		if err != nil {
			return commands.AddCatalogOptionCommand{}, err
		}
		return commands.NewAddPageSizeCommand(session, size)
	})
}

type paperConfigRequest struct {
	Type           string          `json:"type"`
	GSM            int             `json:"gsm"`
	Applicability  string          `json:"applicability"`
	AssociatedCost decimal.Decimal `json:"associatedCost"`
}

func (s *Server) CreatePaperConfig(c echo.Context) error {
	var body paperConfigRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}

	return s.addOption(c, func(session access.Session, id kernel.UUID) (commands.AddCatalogOptionCommand, error) {
		applicability, err := catalog.ParseApplicability(body.Applicability)
		if err != nil {
			return commands.AddCatalogOptionCommand{}, err
		}

		paper, err := catalog.NewPaperConfig(id, body.Type, body.GSM, applicability, body.AssociatedCost)
		if err != nil {
			return commands.AddCatalogOptionCommand{}, err
		}
		return commands.NewAddPaperConfigCommand(session, paper)
	})
}

type costItemRequest struct {
	Type           string          `json:"type"`
	Value          string          `json:"value"`
	Applicability  string          `json:"applicability"`
	AssociatedCost decimal.Decimal `json:"associatedCost"`
}

func (s *Server) CreateCostItem(c echo.Context) error {
	var body costItemRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}

	return s.addOption(c, func(session access.Session, id kernel.UUID) (commands.AddCatalogOptionCommand, error) {
		itemType, typeErr := catalog.ParseCostItemType(body.Type)
		applicability, applicabilityErr := catalog.ParseApplicability(body.Applicability)
		if err := errors.Join(typeErr, applicabilityErr); err != nil {
			return commands.AddCatalogOptionCommand{}, err
		}

		item, err := catalog.NewCostItem(id, itemType, body.Value, applicability, body.AssociatedCost)
		if err != nil {
			return commands.AddCatalogOptionCommand{}, err
		}
		return commands.NewAddCostItemCommand(session, item)
	})
}

type sheetRequest struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) CreateSheet(c echo.Context) error {
	var body sheetRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}

	return s.addOption(c, func(session access.Session, id kernel.UUID) (commands.AddCatalogOptionCommand, error) {
		dims, err := kernel.NewDimensions(kernel.Millimeters(body.Width), kernel.Millimeters(body.Height))
		if err != nil {
			return commands.AddCatalogOptionCommand{}, err
		}

		sheet, err := catalog.NewSheet(id, body.Name, dims)
		if err != nil {
			return commands.AddCatalogOptionCommand{}, err
		}
		return commands.NewAddSheetCommand(session, sheet)
	})
}

// addOption builds a catalog option under a fresh id and stores it. Errors of
// build are reported field by field.
func (s *Server) addOption(
	c echo.Context,
	build func(session access.Session, id kernel.UUID) (commands.AddCatalogOptionCommand, error),
) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := build(session, id)
	if err != nil {
		return fail(c, errs.NewValidationErrorFrom(err))
	}
	if err = s.h.AddCatalogOption.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, createdID{ID: id.String()})
}

func (s *Server) GetFormSchema(c echo.Context, id uuid.UUID) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}
	productID, err := toKernelID(id)
	if err != nil {
		return badRequest(c, "id", err)
	}

	query, err := queries.NewGetFormSchemaQuery(session, productID)
	if err != nil {
		return fail(c, err)
	}
	schema, err := s.h.GetFormSchema.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, schema)
}

type quoteRequest struct {
	PageSizeID    string            `json:"pageSizeId"`
	PaperConfigID string            `json:"paperConfigId"`
	PrintingSide  string            `json:"printingSide"`
	Finishing     map[string]string `json:"finishing"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	Quantity      int               `json:"quantity"`
}

func (r quoteRequest) choice() (catalog.Choice, error) {
	var (
		choice   catalog.Choice
		problems []error
	)

	if r.PageSizeID != "" {
		id, err := kernel.UUIDFromString(r.PageSizeID)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("pageSizeId", err))
		} else {
			choice.PageSizeID = &id
		}
	}

	paperID, err := kernel.UUIDFromString(r.PaperConfigID)
	if err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("paperConfigId", err))
	}
	choice.PaperConfigID = paperID

	side, err := catalog.ParsePrintingSide(r.PrintingSide)
	if err != nil {
		problems = append(problems, err)
	}
	choice.Side = side

	choice.Finishing = make(map[catalog.CostItemType]string, len(r.Finishing))
	for name, value := range r.Finishing {
		itemType, parseErr := catalog.ParseCostItemType(name)
		if parseErr != nil {
			problems = append(problems, parseErr)
			continue
		}
		choice.Finishing[itemType] = value
	}

	return choice, errors.Join(problems...)
}

func (s *Server) GetQuote(c echo.Context, id uuid.UUID) error {
	session, err := sessionOf(c)
	if err != nil {
		return fail(c, err)
	}
	productID, err := toKernelID(id)
	if err != nil {
		return badRequest(c, "id", err)
	}

	var body quoteRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "", err)
	}
	choice, err := body.choice()
	if err != nil {
		return fail(c, errs.NewValidationErrorFrom(err))
	}

	query, err := queries.NewGetQuoteQuery(
		session,
		productID,
		choice,
		kernel.Millimeters(body.Width),
		kernel.Millimeters(body.Height),
		body.Quantity,
	)
	if err != nil {
		return fail(c, err)
	}
	quote, err := s.h.GetQuote.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, quote)
}
