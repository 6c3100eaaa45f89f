// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/rc3/fleet-controller/internal/crdmanifest"
)

// newCRDManifestCmd builds the `crd-manifest <kind>` subcommand, grounded
// on original_source's clap `Crd` subcommand enum (Cluster, Computer,
// GatewayLink, HttpOverRednetRoute).
func newCRDManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crd-manifest {cluster|computer|gateway|http-over-rednet-route}",
		Short: "Print the CustomResourceDefinition manifest for a resource kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crd, err := crdmanifest.Build(crdmanifest.Kind(args[0]))
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(crd)
			if err != nil {
				return fmt.Errorf("marshal crd manifest: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	return cmd
}
