package http

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"printflow/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadSwagger parses and validates the embedded API description.
func LoadSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// RequestValidator checks /api/v1 requests against the document before they
// reach the handlers. Authentication is left to the Authenticator.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if errors.Is(findErr, routers.ErrPathNotFound) || errors.Is(findErr, routers.ErrMethodNotAllowed) {
					return next(c)
				}
				return badRequest(c, "", findErr)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
					// Upload limits are enforced by the handlers while streaming.
					ExcludeRequestBody: strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm),
					MultiError:         true,
				},
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return fail(c, requestIssues(validationErr))
			}
			return next(c)
		}
	}, nil
}

// swaggerDoc serves the document as JSON to the swagger UI.
type swaggerDoc struct {
	once sync.Once
	doc  *openapi3.T
	json string
}

func (s *swaggerDoc) ReadDoc() string {
	s.once.Do(func() {
		raw, err := json.Marshal(s.doc)
		if err != nil {
			raw = []byte("{}")
		}
		s.json = string(raw)
	})
	return s.json
}

var registerSwagger sync.Once

// RegisterSwagger publishes doc under swag's default name, where echo-swagger
// looks for it.
func RegisterSwagger(doc *openapi3.T) {
	registerSwagger.Do(func() {
		swag.Register(swag.Name, &swaggerDoc{doc: doc})
	})
}

// healthCheck answers liveness probes.
func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// requestIssues flattens kin-openapi's error tree into field issues.
func requestIssues(err error) *errs.ValidationError {
	issues := make([]errs.FieldIssue, 0)
	collectRequestIssues(err, "", &issues)
	return errs.NewValidationError(issues...)
}

func collectRequestIssues(err error, field string, issues *[]errs.FieldIssue) {
	switch e := err.(type) {
	case openapi3.MultiError:
		for _, inner := range e {
			collectRequestIssues(inner, field, issues)
		}
	case *openapi3filter.RequestError:
		if e.Parameter != nil {
			field = e.Parameter.Name
		}
		if e.Err == nil {
			*issues = append(*issues, errs.FieldIssue{Field: field, Reason: e.Reason})
			return
		}
		collectRequestIssues(e.Err, field, issues)
	case *openapi3.SchemaError:
		if pointer := e.JSONPointer(); len(pointer) > 0 {
			field = strings.Join(pointer, ".")
		}
		*issues = append(*issues, errs.FieldIssue{Field: field, Reason: e.Reason})
	default:
		*issues = append(*issues, errs.FieldIssue{Field: field, Reason: err.Error()})
	}
}
