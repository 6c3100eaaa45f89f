// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package gatewayhub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
)

func TestMatchRoute(t *testing.T) {
	routes := []fleetv1alpha1.HTTPOverRednetRoute{
		{Prefix: "/weather", Backend: fleetv1alpha1.NewAnycastBackend("http")},
		{Prefix: "/weather/radar", Backend: fleetv1alpha1.NewComputerBackend("17", "http")},
	}

	tests := []struct {
		name       string
		path       string
		wantMatch  bool
		wantPrefix string
	}{
		{name: "matches first declared prefix, not the longer shadowed one", path: "/weather/radar/latest", wantMatch: true, wantPrefix: "/weather"},
		{name: "matches exact prefix", path: "/weather", wantMatch: true, wantPrefix: "/weather"},
		{name: "no route matches unrelated path", path: "/status", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, ok := MatchRoute(routes, tt.path)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantPrefix, route.Prefix)
			}
		})
	}
}

func TestLoadRednetConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rednet.yaml")
	contents := `
routes:
  - prefix: /weather
    backend:
      kind: anycast
      protocol: http
  - prefix: /printer
    backend:
      kind: hostname
      protocol: http
      host: printer.local
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := LoadRednetConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Routes, 2)
	assert.Equal(t, "/weather", cfg.Routes[0].Prefix)
	assert.Equal(t, fleetv1alpha1.RednetBackendAnycast, cfg.Routes[0].Backend.Kind)
	assert.Equal(t, "printer.local", cfg.Routes[1].Backend.Host)
}

func TestLoadRednetConfigMissingFile(t *testing.T) {
	_, err := LoadRednetConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
