// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks spec-level invariants that a CRD's OpenAPI schema alone
// can't express (cross-field shape, route prefix form), matching the
// teacher's validate.Struct(input) pattern in
// internal/pipeline/component/context/component.go.
func (in *ComputerSpec) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("computer spec: %w", err)
	}
	return nil
}

func (in *ComputerGatewaySpec) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("computer gateway spec: %w", err)
	}
	return nil
}

func (in *GatewaySpec) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("gateway spec: %w", err)
	}
	return nil
}
