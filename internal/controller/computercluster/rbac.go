// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package computercluster

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
)

const fieldOwner = "cc-cluster-controller"

// rbacIdentityName is the shared name for the Role, ServiceAccount,
// RoleBinding, and Secret a cluster's computers authenticate as, grounded
// on original_source's create_cluster_rbac ("computer-{cluster_name}").
func rbacIdentityName(cluster *fleetv1alpha1.ComputerCluster) string {
	return fmt.Sprintf("computer-%s", cluster.Name)
}

// ensureRBAC server-side-applies the Role, ServiceAccount, RoleBinding, and
// Secret a cluster's computers use to authenticate to the orchestrator.
// Grounded on original_source/.../reconcilers/cluster.rs's
// create_cluster_rbac and teacher internal/controller/workflow/
// controller.go's client.Apply/FieldOwner/ForceOwnership pattern.
func ensureRBAC(ctx context.Context, c client.Client, cluster *fleetv1alpha1.ComputerCluster, owner metav1.OwnerReference) error {
	name := rbacIdentityName(cluster)

	role := &rbacv1.Role{
		TypeMeta: metav1.TypeMeta{APIVersion: "rbac.authorization.k8s.io/v1", Kind: "Role"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       cluster.Namespace,
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Rules: []rbacv1.PolicyRule{
			{
				APIGroups: []string{fleetv1alpha1.GroupVersion.Group},
				Resources: []string{"computers"},
				Verbs:     []string{"create", "delete"},
			},
			{
				APIGroups: []string{fleetv1alpha1.GroupVersion.Group},
				Resources: []string{"computers/status"},
				Verbs:     []string{"update", "patch"},
			},
		},
	}
	if err := apply(ctx, c, role); err != nil {
		return fmt.Errorf("apply role: %w", err)
	}

	sa := &corev1.ServiceAccount{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "ServiceAccount"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       cluster.Namespace,
			OwnerReferences: []metav1.OwnerReference{owner},
		},
	}
	if err := apply(ctx, c, sa); err != nil {
		return fmt.Errorf("apply service account: %w", err)
	}

	binding := &rbacv1.RoleBinding{
		TypeMeta: metav1.TypeMeta{APIVersion: "rbac.authorization.k8s.io/v1", Kind: "RoleBinding"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       cluster.Namespace,
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		RoleRef: rbacv1.RoleRef{
			APIGroup: "rbac.authorization.k8s.io",
			Kind:     "Role",
			Name:     name,
		},
		Subjects: []rbacv1.Subject{
			{Kind: "ServiceAccount", Name: name, Namespace: cluster.Namespace},
		},
	}
	if err := apply(ctx, c, binding); err != nil {
		return fmt.Errorf("apply role binding: %w", err)
	}

	secret := &corev1.Secret{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       cluster.Namespace,
			OwnerReferences: []metav1.OwnerReference{owner},
			Annotations: map[string]string{
				"kubernetes.io/service-account.name": name,
			},
		},
		Type: corev1.SecretTypeServiceAccountToken,
	}
	if err := apply(ctx, c, secret); err != nil {
		return fmt.Errorf("apply service account token secret: %w", err)
	}

	return nil
}

func apply(ctx context.Context, c client.Client, obj client.Object) error {
	return c.Patch(ctx, obj, client.Apply, client.FieldOwner(fieldOwner), client.ForceOwnership)
}
