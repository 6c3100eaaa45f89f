// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package computercluster

import (
	"context"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/client"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
	"github.com/rc3/fleet-controller/internal/gatewayhub/wake"
)

// onlineWindow is how recently a heartbeat must have arrived for a
// computer to be considered online. Spec.md §5: "Online threshold: 300 s
// without heartbeat ⇒ offline."
const onlineWindow = 300 * time.Second

// diffResult is what one reconcile pass's computer diff produced: the wake
// commands to emit. The 300s/10s requeue choice is driven solely by
// whether commands is empty, per original_source's
// compute_cluster_diff_and_set_statuses / cluster.rs reconcile loop — a
// status-only change (e.g. an offline->online flip with no wake) still
// gets the steady-state 300s requeue.
type diffResult struct {
	commands []wake.Command
}

// diffComputers lists every Computer owned by cluster, compares declared
// vs observed internal state, recomputes online status from the heartbeat
// timestamp, and patches status.online when it has changed. Grounded on
// original_source/.../reconcilers/cluster.rs's
// compute_cluster_diff_and_set_statuses.
func diffComputers(ctx context.Context, c client.Client, cluster *fleetv1alpha1.ComputerCluster, now time.Time) (diffResult, error) {
	var result diffResult

	var list fleetv1alpha1.ComputerList
	if err := c.List(ctx, &list, client.InNamespace(cluster.Namespace)); err != nil {
		return result, err
	}

	for i := range list.Items {
		computer := &list.Items[i]
		if !ownedBy(computer, cluster) {
			continue
		}

		if stateMismatch(computer) {
			// A pending state change skips the heartbeat recompute this
			// pass, matching the original: the wake is the priority
			// signal, online status will catch up next reconcile.
			result.commands = append(result.commands, wake.NewWakeCommand(computer.Spec.ID))
			continue
		}

		wasOnline := computer.Status.Online
		isOnline := computer.Status.LastHeartbeatUnixSec != nil &&
			*computer.Status.LastHeartbeatUnixSec >= now.Add(-onlineWindow).Unix()

		if isOnline == wasOnline {
			continue
		}

		patch := &fleetv1alpha1.Computer{}
		patch.APIVersion = fleetv1alpha1.GroupVersion.String()
		patch.Kind = "Computer"
		patch.Name = computer.Name
		patch.Namespace = computer.Namespace
		patch.Status.Online = isOnline
		if err := c.Status().Patch(ctx, patch, client.Apply, client.FieldOwner(fieldOwner), client.ForceOwnership); err != nil {
			return result, err
		}

		if wasOnline && !isOnline {
			// Newly offline: give the fleet a nudge, matching the
			// original's "emit Wake if newly offline" behavior.
			result.commands = append(result.commands, wake.NewWakeCommand(computer.Spec.ID))
		}
	}

	return result, nil
}

func ownedBy(computer *fleetv1alpha1.Computer, cluster *fleetv1alpha1.ComputerCluster) bool {
	for _, ref := range computer.OwnerReferences {
		if ref.UID == cluster.UID {
			return true
		}
	}
	return false
}

// stateMismatch reports whether the computer's declared internal state
// (spec) differs from what the controller last observed acknowledged
// (status).
func stateMismatch(computer *fleetv1alpha1.Computer) bool {
	return !stringPtrEqual(computer.Spec.Label, computer.Status.InternalState.Label) ||
		!stringPtrEqual(computer.Spec.Script, computer.Status.InternalState.Script)
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
