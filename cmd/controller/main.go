// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "controller",
		Short:        "Fleet controller: Kubernetes reconcile loop for ComputerCluster/Computer/ComputerGateway",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newReconcileCmd())
	rootCmd.AddCommand(newCRDManifestCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
