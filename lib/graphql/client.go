// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package graphql

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

	"github.com/google/uuid"

	"github.com/bureau-foundation/pokedex/lib/clock"
)

// DefaultEndpoint is the endpoint the web client falls back to when no
// URL is configured.
const DefaultEndpoint = "http://localhost:8000/graphql"

// maxResponseSize bounds how much of a response body is read. Catalog
// pages are a few kilobytes; anything near this limit is not a
// response we can use.
const maxResponseSize = 32 << 20

// Config configures a Client.
type Config struct {
	// Endpoint is the absolute http or https URL requests are POSTed
	// to. Required.
	Endpoint string

	// HTTPClient defaults to a client with no timeout; callers bound
	// requests through the context.
	HTTPClient *http.Client

	// Headers are added to every request.
	Headers map[string]string

	// Clock measures request latency. Defaults to clock.Real().
	Clock clock.Clock

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client sends GraphQL requests to one endpoint. Safe for concurrent
// use.
type Client struct {
	endpoint   string
	httpClient *http.Client
	headers    map[string]string
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient validates config and returns a Client.
func NewClient(config Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, errors.New("graphql: endpoint is required")
	}
	parsed, err := url.Parse(config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("graphql: parsing endpoint %q: %w", config.Endpoint, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("graphql: endpoint %q must use http or https", config.Endpoint)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("graphql: endpoint %q has no host", config.Endpoint)
	}

	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{}
	}
	if config.Clock == nil {
		config.Clock = clock.Real()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Client{
		endpoint:   config.Endpoint,
		httpClient: config.HTTPClient,
		headers:    config.Headers,
		clock:      config.Clock,
		logger:     config.Logger,
	}, nil
}

// Endpoint returns the configured endpoint URL.
func (client *Client) Endpoint() string { return client.endpoint }

// Request is the body of a GraphQL POST.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors"`
}

// Do sends request and decodes the response's data member into out.
// out may be nil to discard the data. The returned error is a
// *NetworkError, a *GraphQLError, or a decode failure of data into out.
func (client *Client) Do(ctx context.Context, request Request, out any) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("graphql: encoding %s request: %w", request.OperationName, err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, client.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("graphql: creating %s request: %w", request.OperationName, err)
	}
	requestID := uuid.NewString()
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Accept", "application/json")
	httpRequest.Header.Set("X-Request-ID", requestID)
	for name, value := range client.headers {
		httpRequest.Header.Set(name, value)
	}

	start := client.clock.Now()
	response, err := client.httpClient.Do(httpRequest)
	if err != nil {
		return &NetworkError{Endpoint: client.endpoint, Err: err}
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize+1))
	if err != nil {
		return &NetworkError{Endpoint: client.endpoint, StatusCode: response.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}
	if len(responseBody) > maxResponseSize {
		return &NetworkError{Endpoint: client.endpoint, StatusCode: response.StatusCode, Err: fmt.Errorf("response exceeds %d bytes", maxResponseSize)}
	}

	client.logger.Debug("graphql request complete",
		"operation", request.OperationName,
		"endpoint", client.endpoint,
		"status", response.StatusCode,
		"duration", clock.Since(client.clock, start),
		"request_id", requestID,
	)

	var decoded envelope
	decodeErr := json.Unmarshal(responseBody, &decoded)

	// Servers report validation failures as 400 with an errors body;
	// prefer the GraphQL errors over the bare status when present.
	if decodeErr == nil && len(decoded.Errors) > 0 {
		return &GraphQLError{OperationName: request.OperationName, Errors: decoded.Errors}
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return &NetworkError{
			Endpoint:   client.endpoint,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("unexpected status %s: %s", response.Status, truncate(responseBody, 200)),
		}
	}
	if decodeErr != nil {
		return &NetworkError{
			Endpoint:   client.endpoint,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("decoding response envelope: %w", decodeErr),
		}
	}
	if len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return &GraphQLError{
			OperationName: request.OperationName,
			Errors:        []ResponseError{{Message: "response contained no data"}},
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return fmt.Errorf("graphql: decoding %s data: %w", request.OperationName, err)
	}
	return nil
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
