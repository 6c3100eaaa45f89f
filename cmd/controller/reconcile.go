// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	_ "k8s.io/client-go/plugin/pkg/client/auth"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	gatewayapiv1 "sigs.k8s.io/gateway-api/apis/v1"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
	"github.com/rc3/fleet-controller/internal/cmdutil"
	"github.com/rc3/fleet-controller/internal/controller/computercluster"
	"github.com/rc3/fleet-controller/internal/controller/computergateway"
	"github.com/rc3/fleet-controller/internal/gatewayhub/wake"
)

var setupLog = ctrl.Log.WithName("setup")

// newReconcileCmd builds the `reconcile` subcommand: runs the controller
// manager's reconcile loop plus the wake-command bridge server, grounded on
// teacher cmd/main.go's manager bootstrap (trimmed to this module's two
// reconcilers) and original_source/controller/src/c2.rs's C2Server, which
// is fed directly by the reconciler rather than running in a separate
// process.
func newReconcileCmd() *cobra.Command {
	var metricsAddr string
	var probeAddr string
	var bridgeAddr string
	var enableLeaderElection bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run the controller manager's reconcile loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(metricsAddr, probeAddr, bridgeAddr, enableLeaderElection)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-bind-address", "0", "The address the metrics endpoint binds to, or 0 to disable.")
	cmd.Flags().StringVar(&probeAddr, "health-probe-bind-address", ":8081", "The address the health probe endpoint binds to.")
	cmd.Flags().StringVar(&bridgeAddr, "bridge-bind-address", ":8090", "The address the wake-command bridge WebSocket endpoint binds to.")
	cmd.Flags().BoolVar(&enableLeaderElection, "leader-elect", false, "Enable leader election for controller manager.")

	return cmd
}

func runReconcile(metricsAddr, probeAddr, bridgeAddr string, enableLeaderElection bool) error {
	opts := zap.Options{Development: true}
	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	scheme := ctrlScheme()

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsserver.Options{BindAddress: metricsAddr},
		HealthProbeBindAddress: probeAddr,
		LeaderElection:         enableLeaderElection,
		LeaderElectionID:       "fleet-controller.rc3.dev",
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	broadcaster := wake.NewBroadcaster()

	if err := (&computercluster.Reconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Wake:   broadcaster,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "ComputerCluster")
		os.Exit(1)
	}

	if err := (&computergateway.Reconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "ComputerGateway")
		os.Exit(1)
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	ctx := ctrl.SetupSignalHandler()

	bridge := wake.NewBridgeHandler(broadcaster, clusterExistsFunc(mgr), cmdutil.SetupLogger(cmdutil.GetEnv("LOG_LEVEL", "info")))
	bridgeServer := &http.Server{Addr: bridgeAddr, Handler: bridge}
	go func() {
		setupLog.Info("starting wake-command bridge server", "address", bridgeAddr)
		if err := bridgeServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			setupLog.Error(err, "bridge server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = bridgeServer.Shutdown(shutdownCtx)
	}()

	setupLog.Info("starting manager")
	if err := mgr.Start(ctx); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
	return nil
}

func clusterExistsFunc(mgr ctrl.Manager) wake.ClusterExists {
	return func(ctx context.Context, namespace, name string) (bool, error) {
		var cluster fleetv1alpha1.ComputerCluster
		err := mgr.GetClient().Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, &cluster)
		if err != nil {
			if apierrors.IsNotFound(err) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
}

func ctrlScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(fleetv1alpha1.AddToScheme(scheme))
	utilruntime.Must(gatewayapiv1.Install(scheme))
	return scheme
}
