// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package computercluster

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
)

var _ = Describe("ComputerCluster Controller", func() {
	const namespaceName = "default"

	newComputer := func(name, clusterName string, owner metav1.OwnerReference) *fleetv1alpha1.Computer {
		return &fleetv1alpha1.Computer{
			ObjectMeta: metav1.ObjectMeta{
				Name:            name,
				Namespace:       namespaceName,
				OwnerReferences: []metav1.OwnerReference{owner},
			},
			Spec: fleetv1alpha1.ComputerSpec{
				ID: name,
			},
		}
	}

	It("provisions RBAC identity for a new cluster", func() {
		clusterName := "rbac-test-cluster"
		cluster := &fleetv1alpha1.ComputerCluster{
			ObjectMeta: metav1.ObjectMeta{Name: clusterName, Namespace: namespaceName},
		}
		Expect(k8sClient.Create(ctx, cluster)).To(Succeed())

		name := "computer-" + clusterName
		Eventually(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Name: name, Namespace: namespaceName}, &rbacv1.Role{})
		}, "10s", "100ms").Should(Succeed())

		Expect(k8sClient.Get(ctx, types.NamespacedName{Name: name, Namespace: namespaceName}, &corev1.ServiceAccount{})).To(Succeed())
		Expect(k8sClient.Get(ctx, types.NamespacedName{Name: name, Namespace: namespaceName}, &rbacv1.RoleBinding{})).To(Succeed())
		Expect(k8sClient.Get(ctx, types.NamespacedName{Name: name, Namespace: namespaceName}, &corev1.Secret{})).To(Succeed())
	})

	It("emits a wake command when a computer's declared state diverges from status", func() {
		clusterName := "diff-test-cluster"
		cluster := &fleetv1alpha1.ComputerCluster{
			ObjectMeta: metav1.ObjectMeta{Name: clusterName, Namespace: namespaceName},
		}
		Expect(k8sClient.Create(ctx, cluster)).To(Succeed())

		var created fleetv1alpha1.ComputerCluster
		Eventually(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Name: clusterName, Namespace: namespaceName}, &created)
		}, "10s", "100ms").Should(Succeed())

		owner := metav1.OwnerReference{
			APIVersion: fleetv1alpha1.GroupVersion.String(),
			Kind:       "ComputerCluster",
			Name:       created.Name,
			UID:        created.UID,
		}

		label := "new-label"
		computer := newComputer("diff-test-computer", clusterName, owner)
		computer.Spec.Label = &label
		Expect(k8sClient.Create(ctx, computer)).To(Succeed())

		sub := broadcaster.Subscribe(namespaceName, clusterName)
		defer sub.Close()

		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			cmds, err := sub.Next(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cmds).To(HaveLen(1))
			Expect(cmds[0].ComputerID).To(Equal(computer.Spec.ID))
		}()

		Eventually(done, "15s", "100ms").Should(BeClosed())
	})

	It("ignores not-found clusters without error", func() {
		r := &Reconciler{Client: k8sClient, Scheme: k8sClient.Scheme(), Wake: broadcaster}
		req := reconcile.Request{NamespacedName: types.NamespacedName{Name: "does-not-exist", Namespace: namespaceName}}
		_, err := r.Reconcile(ctx, req)
		Expect(err).NotTo(HaveOccurred())
	})
})
