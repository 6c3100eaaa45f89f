// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package gatewayhub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionManagerRegisterAndLookup(t *testing.T) {
	m := NewConnectionManager()
	ch := m.Register("17")

	got, ok := m.Listener("17")
	require.True(t, ok)
	assert.Equal(t, ch, got)
	assert.Equal(t, 1, m.Count())
}

func TestConnectionManagerRegisterReplacesExistingEntry(t *testing.T) {
	m := NewConnectionManager()
	m.Register("17")
	second := m.Register("17")

	got, ok := m.Listener("17")
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.Equal(t, 1, m.Count())
}

func TestConnectionManagerUnregisterIgnoresStaleChannel(t *testing.T) {
	m := NewConnectionManager()
	stale := m.Register("17")
	fresh := m.Register("17")

	m.Unregister("17", stale)

	got, ok := m.Listener("17")
	require.True(t, ok, "fresh connection must survive a stale connection's Unregister")
	assert.Equal(t, fresh, got)
}

func TestConnectionManagerUnregisterRemovesCurrentChannel(t *testing.T) {
	m := NewConnectionManager()
	ch := m.Register("17")

	m.Unregister("17", ch)

	_, ok := m.Listener("17")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())
}

func TestConnectionManagerRandomListenerEmpty(t *testing.T) {
	m := NewConnectionManager()
	_, _, err := m.RandomListener()
	assert.Error(t, err)
}

func TestConnectionManagerRandomListenerReturnsRegisteredEntry(t *testing.T) {
	m := NewConnectionManager()
	ch := m.Register("17")

	id, outbound, err := m.RandomListener()
	require.NoError(t, err)
	assert.Equal(t, "17", id)
	assert.Equal(t, ch, outbound)
}
