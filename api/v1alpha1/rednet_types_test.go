// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRednetBackendJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		backend RednetBackend
		wire    string
	}{
		{
			name:    "anycast",
			backend: NewAnycastBackend("http"),
			wire:    `{"kind":"anycast","protocol":"http"}`,
		},
		{
			name:    "computer",
			backend: NewComputerBackend("17", "http"),
			wire:    `{"kind":"computer","protocol":"http","id":"17"}`,
		},
		{
			name:    "hostname",
			backend: NewHostnameBackend("http", "printer.local"),
			wire:    `{"kind":"hostname","protocol":"http","host":"printer.local"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.backend)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(out))

			var decoded RednetBackend
			require.NoError(t, json.Unmarshal(out, &decoded))
			assert.Equal(t, tt.backend, decoded)
		})
	}
}

func TestRednetBackendUnmarshalRejectsMissingRequiredField(t *testing.T) {
	var b RednetBackend
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"computer","protocol":"http"}`), &b))

	var b2 RednetBackend
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"hostname","protocol":"http"}`), &b2))
}

func TestRednetBackendUnmarshalRejectsUnknownKind(t *testing.T) {
	var b RednetBackend
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"multicast","protocol":"http"}`), &b))
}

func TestRednetBackendMarshalRejectsUnknownKind(t *testing.T) {
	b := RednetBackend{Kind: RednetBackendKind("bogus")}
	_, err := json.Marshal(b)
	assert.Error(t, err)
}
