// Package httpapi calls the stylist narration service, which turns a raw
// score result into shopper-facing language.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	executor   *resilience.Executor
}

func New(baseURL string, executor *resilience.Executor) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		executor:   executor,
	}
}

func (c *Client) Narrate(ctx context.Context, result domain.ScoreResult) (*domain.StyleAdvice, error) {
	request := map[string]any{"result": result}
	var response struct {
		Headline  string   `json:"headline"`
		Narrative string   `json:"narrative"`
		Tips      []string `json:"tips"`
	}

	call := func(ctx context.Context) error {
		return c.postJSON(ctx, "/v1/narrate", request, &response, "narrate")
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "stylist.narrate", call, classifyHTTPError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, wrapTemporaryIfNeeded("narrate score", err)
	}

	return &domain.StyleAdvice{
		Headline:  response.Headline,
		Narrative: response.Narrative,
		Tips:      response.Tips,
		Source:    "stylist",
	}, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any, operation string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stylist %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &HTTPStatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(raw),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}
