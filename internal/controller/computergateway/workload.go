// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package computergateway implements the gateway reconciler (spec Module
// D): materialize the rednet route table as a ConfigMap, run the gateway
// hub binary as a Deployment fronted by a Service, and expose it to
// outside traffic via a gateway-api HTTPRoute.
//
// Grounded on teacher internal/controller/workflow/controller.go for the
// server-side-apply wiring, and sgl-project-ome's
// pkg/controller/v1beta1/inferenceservice/reconcilers/deployment/
// deployment_reconciler.go for the raw Deployment/Service shape (this
// spec has no shorthand-schema/render pipeline to reuse, so the
// workload objects are built directly from typed structs).
package computergateway

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/yaml"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
	"github.com/rc3/fleet-controller/internal/cmdutil"
)

const (
	fieldOwner         = "computer-gateway-controller"
	configMapKey       = "rednet"
	configMountPath    = "/etc/config"
	defaultGatewayPort = 8000
	defaultImage       = "registry.digitalocean.com/suremarc/computercraft-gateway:latest"
)

// hubName computes spec.md §4.D step 1's "rednet-gateway-{gateway_name}"
// name, shared by the ConfigMap, Deployment, Service, and their label
// selector for a given ComputerGateway.
func hubName(gw *fleetv1alpha1.ComputerGateway) string {
	return "rednet-gateway-" + gw.Name
}

func gatewayLabels(hubName string) map[string]string {
	return map[string]string{"app": hubName}
}

// ensureConfigMap server-side-applies the route table the gateway hub
// re-reads on every /gateway request, serialized the same way LoadRednetConfig expects to
// deserialize it (internal/gatewayhub/route.go).
func ensureConfigMap(ctx context.Context, c client.Client, gw *fleetv1alpha1.ComputerGateway, owner metav1.OwnerReference) error {
	cfg := struct {
		Routes []fleetv1alpha1.HTTPOverRednetRoute `json:"routes"`
	}{Routes: gw.Spec.Routes}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal rednet config: %w", err)
	}

	name := hubName(gw)
	cm := &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       gw.Namespace,
			Labels:          gatewayLabels(name),
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Data: map[string]string{configMapKey: string(data)},
	}
	if err := apply(ctx, c, cm); err != nil {
		return fmt.Errorf("apply config map: %w", err)
	}
	return nil
}

// ensureDeployment server-side-applies a single-replica Deployment running
// the gateway hub image, mounting the route table ConfigMap.
func ensureDeployment(ctx context.Context, c client.Client, gw *fleetv1alpha1.ComputerGateway, owner metav1.OwnerReference) error {
	replicas := int32(1)
	name := hubName(gw)
	labels := gatewayLabels(name)

	dep := &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       gw.Namespace,
			Labels:          labels,
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{MatchLabels: labels},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: labels},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  "gateway-hub",
							Image: gatewayImage(),
							Ports: []corev1.ContainerPort{
								{Name: "gateway", ContainerPort: defaultGatewayPort},
							},
							Env: []corev1.EnvVar{
								{Name: "ROCKET_REDNET", Value: configMountPath + "/" + configMapKey},
							},
							VolumeMounts: []corev1.VolumeMount{
								{Name: "rednet-config", MountPath: configMountPath},
							},
						},
					},
					Volumes: []corev1.Volume{
						{
							Name: "rednet-config",
							VolumeSource: corev1.VolumeSource{
								ConfigMap: &corev1.ConfigMapVolumeSource{
									LocalObjectReference: corev1.LocalObjectReference{Name: name},
								},
							},
						},
					},
				},
			},
		},
	}
	if err := apply(ctx, c, dep); err != nil {
		return fmt.Errorf("apply deployment: %w", err)
	}
	return nil
}

// ensureService server-side-applies the ClusterIP Service fronting the
// gateway hub Deployment.
func ensureService(ctx context.Context, c client.Client, gw *fleetv1alpha1.ComputerGateway, owner metav1.OwnerReference) error {
	name := hubName(gw)
	svc := &corev1.Service{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       gw.Namespace,
			Labels:          gatewayLabels(name),
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Spec: corev1.ServiceSpec{
			Selector: gatewayLabels(name),
			Ports: []corev1.ServicePort{
				{
					Name:       "gateway",
					Port:       defaultGatewayPort,
					TargetPort: intstr.FromString("gateway"),
				},
			},
		},
	}
	if err := apply(ctx, c, svc); err != nil {
		return fmt.Errorf("apply service: %w", err)
	}
	return nil
}

// gatewayImage resolves the hub container image, overridable per spec.md
// §4.D step 2 / §6 by the GATEWAY_IMAGE environment variable.
func gatewayImage() string {
	return cmdutil.GetEnv("GATEWAY_IMAGE", defaultImage)
}

func apply(ctx context.Context, c client.Client, obj client.Object) error {
	return c.Patch(ctx, obj, client.Apply, client.FieldOwner(fieldOwner), client.ForceOwnership)
}
