// Package optimizer calls the external packing service that lays the orders of
// a batch out on a sheet.
package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/ports"
)

const layoutsPath = "/v1/layouts"

// maxErrorBody caps how much of a failed response ends up in the error.
const maxErrorBody = 512

// maxResponseBody caps how much of an answer is read at all.
const maxResponseBody = 8 << 20

// Client implements ports.PackingOptimizer over HTTP/JSON. Deadlines come from
// the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type sizeDTO struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type marginsDTO struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

type itemDTO struct {
	OrderID  string `json:"orderId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Quantity int    `json:"quantity"`
}

type layoutRequest struct {
	Sheet            sizeDTO    `json:"sheet"`
	Bleed            int        `json:"bleed"`
	RotationsAllowed bool       `json:"rotationsAllowed"`
	Algorithm        string     `json:"algorithm"`
	Margins          marginsDTO `json:"margins"`
	Items            []itemDTO  `json:"items"`
}

type layoutResponse struct {
	Efficiency *float64        `json:"efficiency"`
	Type       string          `json:"type"`
	Placements json.RawMessage `json:"placements"`
}

func (c *Client) Optimize(ctx context.Context, request ports.PackingRequest) (automation.Layout, error) {
	body, err := json.Marshal(toLayoutRequest(request))
	if err != nil {
		return automation.Layout{}, fmt.Errorf("encode layout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+layoutsPath, bytes.NewReader(body))
	if err != nil {
		return automation.Layout{}, fmt.Errorf("build layout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return automation.Layout{}, fmt.Errorf("call optimizer: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	if err != nil {
		return automation.Layout{}, fmt.Errorf("read optimizer response: %w", err)
	}
	if len(raw) > maxResponseBody {
		return automation.Layout{}, fmt.Errorf("optimizer response exceeds %d bytes", maxResponseBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return automation.Layout{}, &StatusError{Code: resp.StatusCode, Body: truncate(raw, maxErrorBody)}
	}

	var answer layoutResponse
	if err = json.Unmarshal(raw, &answer); err != nil {
		return automation.Layout{}, fmt.Errorf("decode optimizer response: %w", err)
	}
	if answer.Efficiency == nil {
		return automation.Layout{}, fmt.Errorf("optimizer response has no efficiency")
	}

	return automation.NewLayout(*answer.Efficiency, answer.Type, raw)
}

func toLayoutRequest(r ports.PackingRequest) layoutRequest {
	items := make([]itemDTO, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, itemDTO{
			OrderID:  item.OrderID.String(),
			Width:    int(item.Width),
			Height:   int(item.Height),
			Quantity: item.Quantity,
		})
	}

	return layoutRequest{
		Sheet:            sizeDTO{Width: int(r.Sheet.Width()), Height: int(r.Sheet.Height())},
		Bleed:            int(r.Bleed),
		RotationsAllowed: r.RotationsAllowed,
		Algorithm:        r.Algorithm.String(),
		Margins: marginsDTO{
			Top:    int(r.Margins.Top),
			Bottom: int(r.Margins.Bottom),
			Left:   int(r.Margins.Left),
			Right:  int(r.Margins.Right),
		},
		Items: items,
	}
}

// StatusError is a non-2xx answer of the optimizer.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("optimizer answered %d", e.Code)
	}
	return fmt.Sprintf("optimizer answered %d: %s", e.Code, e.Body)
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
