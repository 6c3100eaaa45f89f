// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package computercluster implements the cluster reconciler (spec Module
// C): for each ComputerCluster, ensure RBAC identity, ensure a gateway
// object if requested, diff observed vs declared computer state, and emit
// wake commands.
//
// Grounded on teacher internal/controller/buildplane/controller.go for
// the Reconcile/SetupWithManager shape, and
// original_source/.../reconcilers/cluster.rs for the reconcile algorithm
// itself.
package computercluster

import (
	"context"
	"errors"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
	"github.com/rc3/fleet-controller/internal/controller"
	"github.com/rc3/fleet-controller/internal/gatewayhub/wake"
	"github.com/rc3/fleet-controller/internal/rerrors"
)

const (
	steadyStateRequeue = 300 * time.Second
	pendingWorkRequeue = 10 * time.Second
)

// Reconciler reconciles a ComputerCluster object.
type Reconciler struct {
	client.Client
	Scheme *runtime.Scheme
	Wake   *wake.Broadcaster
	Now    func() time.Time
}

// +kubebuilder:rbac:groups=fleet.rc3.dev,resources=computerclusters,verbs=get;list;watch
// +kubebuilder:rbac:groups=fleet.rc3.dev,resources=computerclusters/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=fleet.rc3.dev,resources=computers,verbs=get;list;watch
// +kubebuilder:rbac:groups=fleet.rc3.dev,resources=computers/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=fleet.rc3.dev,resources=computergateways,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups="",resources=serviceaccounts;secrets,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups=rbac.authorization.k8s.io,resources=roles;rolebindings,verbs=get;list;watch;create;update;patch

func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	cluster := &fleetv1alpha1.ComputerCluster{}
	if err := r.Get(ctx, req.NamespacedName, cluster); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	owner, err := controller.OwnerRefFromObject(cluster)
	if err != nil {
		logger.Error(err, "failed to derive owner reference for cluster")
		return ctrl.Result{RequeueAfter: pendingWorkRequeue}, nil
	}

	if err := ensureRBAC(ctx, r.Client, cluster, owner); err != nil {
		logger.Error(err, "failed to ensure cluster RBAC identity")
		return ctrl.Result{RequeueAfter: pendingWorkRequeue}, nil
	}

	if cluster.Spec.Gateway != nil {
		if err := ensureGateway(ctx, r.Client, cluster, owner); err != nil {
			// Best-effort: a failed gateway provision doesn't block RBAC
			// or the computer diff, matching the teacher's
			// notifyGateway-is-best-effort pattern in
			// internal/controller/buildplane/controller.go.
			logger.Error(err, "failed to ensure computer gateway")
		}
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	diff, err := diffComputers(ctx, r.Client, cluster, now())
	if err != nil {
		logger.Error(err, "failed to diff computers")
		return ctrl.Result{RequeueAfter: pendingWorkRequeue}, nil
	}

	if len(diff.commands) > 0 {
		if err := r.Wake.Send(cluster.Namespace, cluster.Name, diff.commands); err != nil {
			var unavailable *rerrors.ClusterUnavailable
			if errors.As(err, &unavailable) {
				// Benign: no command-bridge subscriber yet. Per spec.md
				// §7, this is ignored rather than treated as a failure.
				logger.V(1).Info("no command-bridge subscriber for cluster, dropping wake commands", "cluster", cluster.Name)
			} else {
				logger.Error(err, "failed to send wake commands")
			}
		}
	}

	if len(diff.commands) > 0 {
		return ctrl.Result{RequeueAfter: pendingWorkRequeue}, nil
	}
	return ctrl.Result{RequeueAfter: steadyStateRequeue}, nil
}

func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&fleetv1alpha1.ComputerCluster{}).
		Owns(&fleetv1alpha1.Computer{}).
		Owns(&fleetv1alpha1.ComputerGateway{}).
		Named("computercluster").
		Complete(r)
}
