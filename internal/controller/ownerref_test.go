// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
	"github.com/rc3/fleet-controller/internal/rerrors"
)

func fullyPopulatedCluster() *fleetv1alpha1.ComputerCluster {
	c := &fleetv1alpha1.ComputerCluster{
		ObjectMeta: metav1.ObjectMeta{
			Name: "fleet-a",
			UID:  types.UID("11111111-1111-1111-1111-111111111111"),
		},
	}
	c.SetGroupVersionKind(fleetv1alpha1.GroupVersion.WithKind("ComputerCluster"))
	return c
}

func TestOwnerRefFromObject_AllFieldsPresent(t *testing.T) {
	cluster := fullyPopulatedCluster()

	ref, err := OwnerRefFromObject(cluster)
	require.NoError(t, err)

	assert.Equal(t, "fleet.rc3.dev/v1alpha1", ref.APIVersion)
	assert.Equal(t, "ComputerCluster", ref.Kind)
	assert.Equal(t, "fleet-a", ref.Name)
	assert.Equal(t, cluster.UID, ref.UID)
	require.NotNil(t, ref.Controller)
	assert.True(t, *ref.Controller)
}

func TestOwnerRefFromObject_MissingKind(t *testing.T) {
	cluster := fullyPopulatedCluster()
	cluster.SetGroupVersionKind(cluster.GroupVersionKind().GroupVersion().WithKind(""))

	_, err := OwnerRefFromObject(cluster)
	require.Error(t, err)
	var mf *rerrors.MissingField
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "kind", mf.Field)
}

func TestOwnerRefFromObject_MissingName(t *testing.T) {
	cluster := fullyPopulatedCluster()
	cluster.SetName("")

	_, err := OwnerRefFromObject(cluster)
	require.Error(t, err)
	var mf *rerrors.MissingField
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "name", mf.Field)
}

func TestOwnerRefFromObject_MissingUID(t *testing.T) {
	cluster := fullyPopulatedCluster()
	cluster.SetUID("")

	_, err := OwnerRefFromObject(cluster)
	require.Error(t, err)
	var mf *rerrors.MissingField
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "uid", mf.Field)
}
