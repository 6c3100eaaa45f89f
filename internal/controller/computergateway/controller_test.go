// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package computergateway

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
)

var _ = Describe("ComputerGateway Controller", func() {
	const namespaceName = "default"

	It("provisions ConfigMap, Deployment, and Service for a new gateway", func() {
		name := "gw-workload-test"
		gw := &fleetv1alpha1.ComputerGateway{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespaceName},
			Spec: fleetv1alpha1.ComputerGatewaySpec{
				GatewaySpec: fleetv1alpha1.GatewaySpec{
					Routes: []fleetv1alpha1.HTTPOverRednetRoute{
						{Prefix: "/weather", Backend: fleetv1alpha1.NewAnycastBackend("http")},
					},
				},
			},
		}
		Expect(k8sClient.Create(ctx, gw)).To(Succeed())

		key := types.NamespacedName{Name: "rednet-gateway-" + name, Namespace: namespaceName}

		var cm corev1.ConfigMap
		Eventually(func() error {
			return k8sClient.Get(ctx, key, &cm)
		}, "10s", "100ms").Should(Succeed())
		Expect(cm.Data).To(HaveKey("rednet"))
		Expect(cm.Data["rednet"]).To(ContainSubstring("/weather"))

		var dep appsv1.Deployment
		Eventually(func() error {
			return k8sClient.Get(ctx, key, &dep)
		}, "10s", "100ms").Should(Succeed())
		Expect(dep.Spec.Template.Spec.Containers).To(HaveLen(1))

		var svc corev1.Service
		Eventually(func() error {
			return k8sClient.Get(ctx, key, &svc)
		}, "10s", "100ms").Should(Succeed())
		Expect(svc.Spec.Ports).To(HaveLen(1))
	})
})
