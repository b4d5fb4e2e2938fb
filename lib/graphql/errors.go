// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package graphql

import (
	"errors"
	"fmt"
	"strings"
)

// NetworkError reports a request that failed below the GraphQL layer.
type NetworkError struct {
	Endpoint string

	// StatusCode is the HTTP status when a response was received, zero
	// when the request failed before a response arrived.
	StatusCode int

	Err error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("graphql: %s: HTTP %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("graphql: %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Location points into the query document.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// ResponseError is one entry of a response's errors list.
type ResponseError struct {
	Message    string         `json:"message"`
	Locations  []Location     `json:"locations,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// GraphQLError reports a response whose errors list was non-empty.
type GraphQLError struct {
	OperationName string
	Errors        []ResponseError
}

func (e *GraphQLError) Error() string {
	var builder strings.Builder
	builder.WriteString("graphql: ")
	if e.OperationName != "" {
		builder.WriteString(e.OperationName)
		builder.WriteString(": ")
	}
	if len(e.Errors) == 0 {
		builder.WriteString("unknown error")
		return builder.String()
	}
	for index, responseError := range e.Errors {
		if index > 0 {
			builder.WriteString("; ")
		}
		builder.WriteString(responseError.Message)
	}
	return builder.String()
}

// Messages returns the error messages in order.
func (e *GraphQLError) Messages() []string {
	messages := make([]string, len(e.Errors))
	for index, responseError := range e.Errors {
		messages[index] = responseError.Message
	}
	return messages
}

// IsNetwork reports whether err wraps a NetworkError.
func IsNetwork(err error) bool {
	var networkError *NetworkError
	return errors.As(err, &networkError)
}

// IsGraphQL reports whether err wraps a GraphQLError.
func IsGraphQL(err error) bool {
	var graphQLError *GraphQLError
	return errors.As(err, &graphQLError)
}
