// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package computergateway

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"
	gatewayapiv1 "sigs.k8s.io/gateway-api/apis/v1"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
	"github.com/rc3/fleet-controller/internal/controller"
)

// Reconciler reconciles a ComputerGateway object.
type Reconciler struct {
	client.Client
	Scheme *runtime.Scheme
}

// +kubebuilder:rbac:groups=fleet.rc3.dev,resources=computergateways,verbs=get;list;watch
// +kubebuilder:rbac:groups=fleet.rc3.dev,resources=computergateways/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=apps,resources=deployments,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups="",resources=services;configmaps,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups=gateway.networking.k8s.io,resources=httproutes,verbs=get;list;watch;create;update;patch

func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	gw := &fleetv1alpha1.ComputerGateway{}
	if err := r.Get(ctx, req.NamespacedName, gw); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if err := gw.Spec.Validate(); err != nil {
		logger.Error(err, "invalid computer gateway spec")
		return ctrl.Result{}, nil
	}

	owner, err := controller.OwnerRefFromObject(gw)
	if err != nil {
		logger.Error(err, "failed to derive owner reference for gateway")
		return ctrl.Result{}, err
	}

	if err := ensureConfigMap(ctx, r.Client, gw, owner); err != nil {
		logger.Error(err, "failed to ensure gateway config map")
		return ctrl.Result{}, err
	}
	if err := ensureDeployment(ctx, r.Client, gw, owner); err != nil {
		logger.Error(err, "failed to ensure gateway deployment")
		return ctrl.Result{}, err
	}
	if err := ensureService(ctx, r.Client, gw, owner); err != nil {
		logger.Error(err, "failed to ensure gateway service")
		return ctrl.Result{}, err
	}
	if err := ensureHTTPRoute(ctx, r.Client, gw, owner); err != nil {
		// Best effort: a cluster without the parent Gateway provisioned
		// yet shouldn't block the workload from coming up.
		logger.Error(err, "failed to ensure gateway http route")
	}

	return ctrl.Result{}, nil
}

func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&fleetv1alpha1.ComputerGateway{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&gatewayapiv1.HTTPRoute{}).
		Named("computergateway").
		Complete(r)
}
