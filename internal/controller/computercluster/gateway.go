// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package computercluster

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
)

// ensureGateway server-side-applies a ComputerGateway named after the
// cluster, copying its gateway descriptor's routes/links, matching
// original_source's create_gateway (patch a ComputerGateway owned by the
// cluster, named identically).
func ensureGateway(ctx context.Context, c client.Client, cluster *fleetv1alpha1.ComputerCluster, owner metav1.OwnerReference) error {
	if err := cluster.Spec.Gateway.Validate(); err != nil {
		return fmt.Errorf("invalid gateway descriptor: %w", err)
	}

	gw := &fleetv1alpha1.ComputerGateway{
		TypeMeta: metav1.TypeMeta{
			APIVersion: fleetv1alpha1.GroupVersion.String(),
			Kind:       "ComputerGateway",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:            cluster.Name,
			Namespace:       cluster.Namespace,
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Spec: fleetv1alpha1.ComputerGatewaySpec{
			GatewaySpec: fleetv1alpha1.GatewaySpec{
				Routes: cluster.Spec.Gateway.Routes,
				Links:  cluster.Spec.Gateway.Links,
			},
		},
	}
	if err := apply(ctx, c, gw); err != nil {
		return fmt.Errorf("apply computer gateway: %w", err)
	}
	return nil
}
