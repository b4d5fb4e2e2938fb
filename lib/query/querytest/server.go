// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package querytest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/graphql"
	"github.com/bureau-foundation/pokedex/lib/query"
)

// Server is a fake GraphQL endpoint.
type Server struct {
	server *httptest.Server
	source query.Source

	mu        sync.Mutex
	requests  map[string]int
	variables map[string]map[string]any
	failures  map[string][]failure
}

type failure struct {
	status   int
	messages []string
}

// NewServer starts a server answering from source. It is closed when
// the test finishes.
func NewServer(t testing.TB, source query.Source) *Server {
	t.Helper()
	fake := &Server{
		source:    source,
		requests:  make(map[string]int),
		variables: make(map[string]map[string]any),
		failures:  make(map[string][]failure),
	}
	fake.server = httptest.NewServer(http.HandlerFunc(fake.serveHTTP))
	t.Cleanup(fake.server.Close)
	return fake
}

// Endpoint is the URL to configure a graphql.Client with.
func (fake *Server) Endpoint() string { return fake.server.URL + "/graphql" }

// Requests returns how many requests named operation have arrived.
func (fake *Server) Requests(operation string) int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.requests[operation]
}

// LastVariables returns the variables of the latest request for
// operation, or nil if none arrived.
func (fake *Server) LastVariables(operation string) map[string]any {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.variables[operation]
}

// FailNext makes the next request for operation answer with a GraphQL
// errors body carrying messages.
func (fake *Server) FailNext(operation string, messages ...string) {
	if len(messages) == 0 {
		messages = []string{"injected failure"}
	}
	fake.queue(operation, failure{status: http.StatusOK, messages: messages})
}

// FailNextStatus makes the next request for operation answer with a
// bare HTTP status and no GraphQL envelope.
func (fake *Server) FailNextStatus(operation string, status int) {
	fake.queue(operation, failure{status: status})
}

func (fake *Server) queue(operation string, injected failure) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.failures[operation] = append(fake.failures[operation], injected)
}

// record counts the request and pops the next injected failure.
func (fake *Server) record(request graphql.Request) (failure, bool) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.requests[request.OperationName]++
	fake.variables[request.OperationName] = request.Variables
	queued := fake.failures[request.OperationName]
	if len(queued) == 0 {
		return failure{}, false
	}
	fake.failures[request.OperationName] = slices.Delete(queued, 0, 1)
	return queued[0], true
}

func (fake *Server) serveHTTP(writer http.ResponseWriter, httpRequest *http.Request) {
	if httpRequest.Method != http.MethodPost {
		http.Error(writer, "POST required", http.StatusMethodNotAllowed)
		return
	}
	var request graphql.Request
	if err := json.NewDecoder(httpRequest.Body).Decode(&request); err != nil {
		writeErrors(writer, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if injected, ok := fake.record(request); ok {
		if len(injected.messages) == 0 {
			http.Error(writer, http.StatusText(injected.status), injected.status)
			return
		}
		writeErrors(writer, injected.status, injected.messages...)
		return
	}

	data, err := fake.resolve(httpRequest.Context(), request)
	if err != nil {
		writeErrors(writer, http.StatusOK, err.Error())
		return
	}
	writer.Header().Set("Content-Type", "application/json")
	json.NewEncoder(writer).Encode(map[string]any{"data": data})
}

func (fake *Server) resolve(ctx context.Context, request graphql.Request) (any, error) {
	switch request.OperationName {
	case query.ListPage.OperationName:
		page, err := intVariable(request, "page")
		if err != nil {
			return nil, err
		}
		perPage, err := intVariable(request, "perPage")
		if err != nil {
			return nil, err
		}
		result, err := fake.source.ListPage(ctx, page, perPage)
		if err != nil {
			return nil, err
		}
		return map[string]any{"pokemonsPage": result}, nil

	case query.ItemByID.OperationName:
		id, err := intVariable(request, "pokemonId")
		if err != nil {
			return nil, err
		}
		item, err := fake.source.ItemByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]*catalog.Item{"pokemonById": item}, nil

	case query.ItemByName.OperationName:
		name, ok := request.Variables["name"].(string)
		if !ok {
			return nil, missingVariable("name", "String!")
		}
		item, err := fake.source.ItemByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return map[string]*catalog.Item{"pokemonByName": item}, nil
	}
	return nil, fmt.Errorf("Unknown operation named '%s'.", request.OperationName)
}

func intVariable(request graphql.Request, name string) (int, error) {
	// JSON numbers decode as float64.
	value, ok := request.Variables[name].(float64)
	if !ok || value != float64(int(value)) {
		return 0, missingVariable(name, "Int!")
	}
	return int(value), nil
}

func missingVariable(name, graphQLType string) error {
	return fmt.Errorf("Variable '$%s' of required type '%s' was not provided.", name, graphQLType)
}

func writeErrors(writer http.ResponseWriter, status int, messages ...string) {
	errorList := make([]graphql.ResponseError, len(messages))
	for index, message := range messages {
		errorList[index] = graphql.ResponseError{Message: strings.TrimSpace(message)}
	}
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	json.NewEncoder(writer).Encode(map[string]any{"data": nil, "errors": errorList})
}
