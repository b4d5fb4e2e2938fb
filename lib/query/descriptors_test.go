// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"strings"
	"testing"
)

func TestDescriptorRequestRequiresVariables(t *testing.T) {
	_, err := ListPage.Request(map[string]any{"page": 1})
	if err == nil {
		t.Fatal("Request succeeded without perPage")
	}
	if !strings.Contains(err.Error(), "perPage") {
		t.Errorf("error = %q, want it to name perPage", err)
	}

	request, err := ListPage.Request(map[string]any{"page": 2, "perPage": 15})
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if request.OperationName != "GetPokemonsPage" {
		t.Errorf("OperationName = %q, want GetPokemonsPage", request.OperationName)
	}
	if request.Variables["page"] != 2 || request.Variables["perPage"] != 15 {
		t.Errorf("Variables = %v", request.Variables)
	}
}

func TestDescriptorsDeclareTheirVariables(t *testing.T) {
	for _, descriptor := range []Descriptor{ListPage, ItemByID, ItemByName} {
		if !strings.Contains(descriptor.Document, "query "+descriptor.OperationName+"(") {
			t.Errorf("%s: document does not declare operation %s", descriptor.OperationName, descriptor.OperationName)
		}
		for _, variable := range descriptor.Variables {
			if !strings.Contains(descriptor.Document, "$"+variable+":") {
				t.Errorf("%s: document does not declare $%s", descriptor.OperationName, variable)
			}
		}
	}
}

func TestListPageSelectsCanonicalShape(t *testing.T) {
	for _, field := range []string{"pokemonsPage(", "items {", "pageInfo { total page perPage lastPage hasNext hasPrev }"} {
		if !strings.Contains(ListPage.Document, field) {
			t.Errorf("ListPage document missing %q", field)
		}
	}
	for _, field := range []string{"abilities", "cries"} {
		if !strings.Contains(ItemByID.Document, field) {
			t.Errorf("ItemByID document missing %q", field)
		}
	}
}
