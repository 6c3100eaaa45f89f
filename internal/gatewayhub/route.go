// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package gatewayhub

import (
	"os"
	"strings"

	"sigs.k8s.io/yaml"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
	"github.com/rc3/fleet-controller/internal/rerrors"
)

// LoadRednetConfig reads and parses the route-table YAML file at path. It
// is re-read on every gateway request (no caching) so that route-table
// edits take effect without a hub restart, matching the original's
// per-request tokio::fs::read_to_string.
func LoadRednetConfig(path string) (*RednetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rerrors.NewSerdeError("load rednet config", err)
	}
	var cfg RednetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, rerrors.NewSerdeError("parse rednet config", err)
	}
	return &cfg, nil
}

// MatchRoute returns the first route (in declared order) whose prefix is a
// string prefix of path, satisfying testable property 3 in spec.md §8.
func MatchRoute(routes []fleetv1alpha1.HTTPOverRednetRoute, path string) (fleetv1alpha1.HTTPOverRednetRoute, bool) {
	for _, r := range routes {
		if strings.HasPrefix(path, r.Prefix) {
			return r, true
		}
	}
	return fleetv1alpha1.HTTPOverRednetRoute{}, false
}
