// Package printdesk is an HTTP client for the print desk service, used by
// operator tooling.
package printdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/server/http/dto"
)

// APIError is a non-2xx answer from the service. It unwraps to the domain
// error matching its status so callers can use errors.Is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("printdesk: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("printdesk: %d %s", e.Status, e.Message)
}

var knownErrors = []error{
	domainErrors.ErrNotVerifying,
	domainErrors.ErrAlreadyExists,
	domainErrors.ErrEmptyOrder,
	domainErrors.ErrOrderFinalized,
	domainErrors.ErrOrderNotFinalized,
	domainErrors.ErrPaymentInProgress,
	domainErrors.ErrAlreadyPaid,
	domainErrors.ErrInvalidShop,
	domainErrors.ErrInvalidFile,
	domainErrors.ErrInvalidCode,
	domainErrors.ErrUnsupportedDocument,
}

// Unwrap maps the status, or failing that the message, to a domain error.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domainErrors.ErrNotFound
	case http.StatusUnprocessableEntity:
		return domainErrors.ErrCodeMismatch
	}
	if e.Message == "" {
		return nil
	}
	for _, known := range knownErrors {
		if strings.Contains(e.Message, known.Error()) {
			return known
		}
	}
	return nil
}

// Client is the admin-side API of the service.
type Client interface {
	SearchShops(ctx context.Context, query string) ([]dto.ShopResponse, error)
	RegisterShop(ctx context.Context, req dto.ShopRequest) (*dto.ShopResponse, error)
	Queue(ctx context.Context, search string) (*dto.QueueResponse, error)
	Complete(ctx context.Context, entryID string) error
	Verify(ctx context.Context, entryID, code string) error
	Reject(ctx context.Context, entryID string) error
	Health(ctx context.Context) error
}

// HTTPClient implements Client over the JSON API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, errors.New("server url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SearchShops queries the shop directory.
func (c *HTTPClient) SearchShops(ctx context.Context, query string) ([]dto.ShopResponse, error) {
	var out dto.ShopsResponse
	q := url.Values{"search": []string{query}}
	if err := c.do(ctx, http.MethodGet, "/shops", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Shops, nil
}

// RegisterShop adds a shop to the directory.
func (c *HTTPClient) RegisterShop(ctx context.Context, req dto.ShopRequest) (*dto.ShopResponse, error) {
	var out dto.RegisterShopResponse
	if err := c.do(ctx, http.MethodPost, "/shops", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Shop, nil
}

// Queue lists the admin queue, optionally filtered by display label.
func (c *HTTPClient) Queue(ctx context.Context, search string) (*dto.QueueResponse, error) {
	var q url.Values
	if search != "" {
		q = url.Values{"search": []string{search}}
	}
	var out dto.QueueResponse
	if err := c.do(ctx, http.MethodGet, "/admin/queue", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Complete moves an entry into verification.
func (c *HTTPClient) Complete(ctx context.Context, entryID string) error {
	return c.do(ctx, http.MethodPost, path.Join("/admin/queue", entryID, "complete"), nil, nil, nil)
}

// Verify checks a pickup code. A mismatch satisfies
// errors.Is(err, domainErrors.ErrCodeMismatch).
func (c *HTTPClient) Verify(ctx context.Context, entryID, code string) error {
	var out dto.VerifyResponse
	err := c.do(ctx, http.MethodPost, path.Join("/admin/queue", entryID, "verify"), nil, dto.VerifyRequest{Code: &code}, &out)
	if err != nil {
		return err
	}
	if !out.Verified {
		return domainErrors.ErrCodeMismatch
	}
	return nil
}

// Reject removes an entry without a code check.
func (c *HTTPClient) Reject(ctx context.Context, entryID string) error {
	return c.do(ctx, http.MethodPost, path.Join("/admin/queue", entryID, "reject"), nil, nil, nil)
}

// Health calls /healthz.
func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, p string, query url.Values, in, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var e dto.ErrorResponse
		if json.Unmarshal(data, &e) == nil {
			apiErr.Message = e.Error
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			c.logger.Error("printdesk request failed",
				slog.String("method", method),
				slog.String("path", endpoint.Path),
				slog.Int("status", resp.StatusCode),
			)
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

var _ Client = (*HTTPClient)(nil)
