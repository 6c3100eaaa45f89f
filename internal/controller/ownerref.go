// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/rc3/fleet-controller/internal/rerrors"
)

// OwnerRefFromObject derives an owner reference descriptor from an
// orchestrator object, failing with rerrors.MissingField if any of
// api_version, kind, name, or uid is absent.
//
// Grounded on the original's owner_ref_from_object_ref: all four fields
// must be present or derivation fails outright, there is no partial
// owner reference.
func OwnerRefFromObject(obj client.Object) (metav1.OwnerReference, error) {
	gvk := obj.GetObjectKind().GroupVersionKind()
	apiVersion, kind := gvk.ToAPIVersionAndKind()

	if apiVersion == "" {
		return metav1.OwnerReference{}, rerrors.NewMissingField("apiVersion")
	}
	if kind == "" {
		return metav1.OwnerReference{}, rerrors.NewMissingField("kind")
	}
	if obj.GetName() == "" {
		return metav1.OwnerReference{}, rerrors.NewMissingField("name")
	}
	if obj.GetUID() == "" {
		return metav1.OwnerReference{}, rerrors.NewMissingField("uid")
	}

	blockOwnerDeletion := true
	controllerRef := true
	return metav1.OwnerReference{
		APIVersion:         apiVersion,
		Kind:               kind,
		Name:               obj.GetName(),
		UID:                obj.GetUID(),
		Controller:         &controllerRef,
		BlockOwnerDeletion: &blockOwnerDeletion,
	}, nil
}
