// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/pokedex/lib/clock"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		Endpoint: server.URL + "/graphql",
		Clock:    clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientValidatesEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "localhost:8000/graphql", "ftp://host/graphql", "http:///graphql"} {
		if _, err := NewClient(Config{Endpoint: endpoint}); err == nil {
			t.Errorf("NewClient(%q) succeeded, want error", endpoint)
		}
	}
	client, err := NewClient(Config{Endpoint: DefaultEndpoint})
	if err != nil {
		t.Fatalf("NewClient(default): %v", err)
	}
	if client.Endpoint() != DefaultEndpoint {
		t.Errorf("Endpoint() = %q, want %q", client.Endpoint(), DefaultEndpoint)
	}
}

func TestDoSendsRequestAndDecodesData(t *testing.T) {
	var received Request
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", request.Method)
		}
		if got := request.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}
		if request.Header.Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header missing")
		}
		if err := json.NewDecoder(request.Body).Decode(&received); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		writer.Header().Set("Content-Type", "application/json")
		io.WriteString(writer, `{"data": {"pokemonById": {"id": 4, "name": "charmander"}}}`)
	})

	var out struct {
		PokemonByID struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"pokemonById"`
	}
	err := client.Do(context.Background(), Request{
		Query:         "query GetPokemonById($pokemonId: Int!) { pokemonById(pokemonId: $pokemonId) { id name } }",
		OperationName: "GetPokemonById",
		Variables:     map[string]any{"pokemonId": 4},
	}, &out)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	if received.OperationName != "GetPokemonById" {
		t.Errorf("operationName = %q, want GetPokemonById", received.OperationName)
	}
	if got, ok := received.Variables["pokemonId"].(float64); !ok || got != 4 {
		t.Errorf("variables = %v, want pokemonId=4", received.Variables)
	}
	if out.PokemonByID.Name != "charmander" {
		t.Errorf("name = %q, want charmander", out.PokemonByID.Name)
	}
}

func TestDoAddsConfiguredHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if got := request.Header.Get("Authorization"); got != "Bearer token" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer token")
		}
		io.WriteString(writer, `{"data": {}}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{Endpoint: server.URL, Headers: map[string]string{"Authorization": "Bearer token"}})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if err := client.Do(context.Background(), Request{Query: "{ __typename }"}, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
}

func TestDoReturnsGraphQLError(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		io.WriteString(writer, `{"data": null, "errors": [{"message": "Unknown field 'pokemons'", "locations": [{"line": 1, "column": 3}]}, {"message": "second"}]}`)
	})

	err := client.Do(context.Background(), Request{Query: "{ pokemons }", OperationName: "GetPokemons"}, nil)
	if !IsGraphQL(err) {
		t.Fatalf("error = %v, want GraphQLError", err)
	}
	if IsNetwork(err) {
		t.Error("GraphQL error also classified as network error")
	}
	var graphQLError *GraphQLError
	errors.As(err, &graphQLError)
	if len(graphQLError.Errors) != 2 || graphQLError.Errors[0].Locations[0].Line != 1 {
		t.Errorf("Errors = %+v, want two errors with locations", graphQLError.Errors)
	}
	if got := err.Error(); !strings.Contains(got, "GetPokemons: Unknown field 'pokemons'; second") {
		t.Errorf("Error() = %q", got)
	}
}

func TestDoPrefersGraphQLErrorsOverStatus(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		io.WriteString(writer, `{"errors": [{"message": "Variable '$page' of required type 'Int!' was not provided."}]}`)
	})

	err := client.Do(context.Background(), Request{Query: "query"}, nil)
	if !IsGraphQL(err) {
		t.Errorf("error = %v, want GraphQLError", err)
	}
}

func TestDoReturnsNetworkErrorForBadStatus(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "upstream down", http.StatusBadGateway)
	})

	err := client.Do(context.Background(), Request{Query: "query"}, nil)
	var networkError *NetworkError
	if !errors.As(err, &networkError) {
		t.Fatalf("error = %v, want NetworkError", err)
	}
	if networkError.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want %d", networkError.StatusCode, http.StatusBadGateway)
	}
}

func TestDoReturnsNetworkErrorWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	client, err := NewClient(Config{Endpoint: endpoint})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	err = client.Do(context.Background(), Request{Query: "query"}, nil)
	if !IsNetwork(err) {
		t.Errorf("error = %v, want NetworkError", err)
	}
}

func TestDoCancelledContextIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		io.WriteString(writer, `{"data": {}}`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Do(ctx, Request{Query: "query"}, nil)
	if !IsNetwork(err) {
		t.Fatalf("error = %v, want NetworkError", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want it to wrap context.Canceled", err)
	}
}

func TestDoMissingDataIsGraphQLError(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		io.WriteString(writer, `{"data": null}`)
	})
	if err := client.Do(context.Background(), Request{Query: "query"}, nil); !IsGraphQL(err) {
		t.Errorf("error = %v, want GraphQLError", err)
	}
}

func TestDoMalformedEnvelopeIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		io.WriteString(writer, `<html>proxy login</html>`)
	})
	if err := client.Do(context.Background(), Request{Query: "query"}, nil); !IsNetwork(err) {
		t.Errorf("error = %v, want NetworkError", err)
	}
}

func TestDoDecodeFailureIsNeitherCategory(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		io.WriteString(writer, `{"data": {"id": "not a number"}}`)
	})
	var out struct {
		ID int `json:"id"`
	}
	err := client.Do(context.Background(), Request{Query: "query"}, &out)
	if err == nil {
		t.Fatal("Do succeeded decoding a string into an int")
	}
	if IsNetwork(err) || IsGraphQL(err) {
		t.Errorf("decode failure classified as %v", err)
	}
}
