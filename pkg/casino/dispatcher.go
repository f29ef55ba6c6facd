package casino

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Version is reported in the User-Agent header.
const Version = "1.0.0"

// RequestIDHeader carries the per-dispatch correlation id.
const RequestIDHeader = "X-Request-Id"

// Request is one signed call to the backend.
type Request struct {
	BaseURL    string
	Controller string
	Resource   string
	Body       any
	// Mutating marks calls with backend side effects. They are never repeated.
	Mutating bool
}

// URL joins base url, controller and resource.
func (r *Request) URL() (string, error) {
	return url.JoinPath(r.BaseURL, r.Controller, r.Resource)
}

// Dispatcher sends a signed request and returns the raw HTTP 200 response.
// Anything else is reported as a *ConnectivityError.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *Request) (*HTTPResponse, error)
}

// HTTPResponse is the raw backend answer.
type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	RequestID  string
}

// Decode unmarshals the response body into v.
func (r *HTTPResponse) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

func (r *HTTPResponse) String() string {
	return string(r.Body)
}

// HTTPDispatcher posts JSON over net/http, one attempt per call.
type HTTPDispatcher struct {
	client *http.Client
	log    zerolog.Logger
}

// NewHTTPDispatcher creates a dispatcher. A zero timeout means the call
// blocks until the backend answers or ctx is done.
func NewHTTPDispatcher(timeout time.Duration, logger zerolog.Logger) *HTTPDispatcher {
	return NewHTTPDispatcherWithClient(&http.Client{Timeout: timeout}, logger)
}

// NewHTTPDispatcherWithClient creates a dispatcher around a custom HTTP client.
func NewHTTPDispatcherWithClient(client *http.Client, logger zerolog.Logger) *HTTPDispatcher {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPDispatcher{client: client, log: logger}
}

// Dispatch posts req.Body as JSON to {BaseURL}/{Controller}/{Resource}.
func (d *HTTPDispatcher) Dispatch(ctx context.Context, req *Request) (*HTTPResponse, error) {
	target, err := req.URL()
	if err != nil {
		return nil, fmt.Errorf("failed to build url: %w", err)
	}

	body, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "casino-sdk-go/"+Version)
	httpReq.Header.Set(RequestIDHeader, requestID)

	d.log.Debug().
		Str("controller", req.Controller).
		Str("resource", req.Resource).
		Str("url", target).
		Str("request_id", requestID).
		Msg("making HTTP request")

	resp, err := d.client.Do(httpReq)
	if err != nil {
		d.log.Error().
			Str("url", target).
			Str("request_id", requestID).
			Err(err).
			Msg("HTTP request failed")
		return nil, &ConnectivityError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectivityError{URL: target, StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}

	d.log.Debug().
		Str("request_id", requestID).
		Int("status_code", resp.StatusCode).
		Int("body_length", len(respBody)).
		Msg("received HTTP response")

	if resp.StatusCode != http.StatusOK {
		return nil, &ConnectivityError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       respBody,
		}
	}

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
		RequestID:  requestID,
	}, nil
}
