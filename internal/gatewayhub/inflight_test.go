// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package gatewayhub

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInFlightTableInstallThenResolve(t *testing.T) {
	table := NewInFlightTable()
	id := uuid.New()

	reply, release := table.Install(id)
	defer release()
	assert.Equal(t, 1, table.Len())

	ok := table.Resolve(id, HTTPResponse{Status: 200, Body: "ok"})
	require.True(t, ok)

	resp := <-reply
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "ok", resp.Body)
	assert.Equal(t, 0, table.Len(), "Resolve removes the slot once delivered")
}

func TestInFlightTableResolveUnknownID(t *testing.T) {
	table := NewInFlightTable()
	ok := table.Resolve(uuid.New(), HTTPResponse{Status: 200})
	assert.False(t, ok)
}

func TestInFlightTableReleaseRemovesSlot(t *testing.T) {
	table := NewInFlightTable()
	id := uuid.New()

	_, release := table.Install(id)
	release()

	assert.Equal(t, 0, table.Len())
	ok := table.Resolve(id, HTTPResponse{Status: 200})
	assert.False(t, ok, "a released slot must not accept a late reply")
}

func TestInFlightTableInstallBeforeEnqueueClosesRace(t *testing.T) {
	// Regression test for the Open Question decision recorded in
	// DESIGN.md: Install must be callable, and the reply slot must exist,
	// before the request is handed to any listener queue.
	table := NewInFlightTable()
	id := uuid.New()

	reply, release := table.Install(id)
	defer release()

	delivered := table.Resolve(id, HTTPResponse{Status: 204})
	require.True(t, delivered, "a reply arriving immediately after Install must still be deliverable")
	assert.Equal(t, 204, (<-reply).Status)
}
