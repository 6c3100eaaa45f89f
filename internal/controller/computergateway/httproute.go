// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package computergateway

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	gatewayapiv1 "sigs.k8s.io/gateway-api/apis/v1"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
)

// parentGatewayName is the gateway-api Gateway this controller expects
// the cluster operator to have already provisioned; HTTPRoutes attach to
// it by name.
const parentGatewayName = "cc-gateway"

// ensureHTTPRoute server-side-applies an HTTPRoute exposing the
// ComputerGateway's Service under /{gateway_name}, so external callers
// reach the rednet route table the same way the gateway hub's own
// /gateway/<path> handler does, with each ComputerGateway claiming its
// own path prefix on the shared cc-gateway Gateway.
func ensureHTTPRoute(ctx context.Context, c client.Client, gw *fleetv1alpha1.ComputerGateway, owner metav1.OwnerReference) error {
	pathPrefix := gatewayapiv1.PathMatchPathPrefix
	pathValue := "/" + gw.Name
	portNumber := gatewayapiv1.PortNumber(defaultGatewayPort)
	sectionName := gatewayapiv1.SectionName("http")
	name := hubName(gw)

	route := &gatewayapiv1.HTTPRoute{
		TypeMeta: metav1.TypeMeta{APIVersion: gatewayapiv1.GroupVersion.String(), Kind: "HTTPRoute"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       gw.Namespace,
			Labels:          gatewayLabels(name),
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Spec: gatewayapiv1.HTTPRouteSpec{
			CommonRouteSpec: gatewayapiv1.CommonRouteSpec{
				ParentRefs: []gatewayapiv1.ParentReference{
					{
						Name:        gatewayapiv1.ObjectName(parentGatewayName),
						SectionName: &sectionName,
					},
				},
			},
			Rules: []gatewayapiv1.HTTPRouteRule{
				{
					Matches: []gatewayapiv1.HTTPRouteMatch{
						{
							Path: &gatewayapiv1.HTTPPathMatch{
								Type:  &pathPrefix,
								Value: &pathValue,
							},
						},
					},
					BackendRefs: []gatewayapiv1.HTTPBackendRef{
						{
							BackendRef: gatewayapiv1.BackendRef{
								BackendObjectReference: gatewayapiv1.BackendObjectReference{
									Name: gatewayapiv1.ObjectName(name),
									Port: &portNumber,
								},
							},
						},
					},
				},
			},
		},
	}
	if err := apply(ctx, c, route); err != nil {
		return fmt.Errorf("apply http route: %w", err)
	}
	return nil
}
