package studio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/juson/ghibliai/internal/models"
)

// TransportError wraps a failure to reach the generation endpoint.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generation request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a non-2xx answer from the generation endpoint.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("generation endpoint returned status %d", e.Status)
	}
	return fmt.Sprintf("generation endpoint returned status %d: %s", e.Status, e.Message)
}

// HTTPGenerator posts generation requests to a remote endpoint.
type HTTPGenerator struct {
	client   *resty.Client
	endpoint string
}

func NewHTTPGenerator(endpoint string, timeout time.Duration) *HTTPGenerator {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &HTTPGenerator{client: client, endpoint: endpoint}
}

// WithClient replaces the underlying resty client, e.g. in tests.
func (g *HTTPGenerator) WithClient(c *resty.Client) *HTTPGenerator {
	g.client = c
	return g
}

func (g *HTTPGenerator) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	var result models.GenerationResult
	var failure models.ErrorResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&failure).
		Post(g.endpoint)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		msg := failure.Error
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return nil, &ServerError{Status: resp.StatusCode(), Message: msg}
	}
	return &result, nil
}
