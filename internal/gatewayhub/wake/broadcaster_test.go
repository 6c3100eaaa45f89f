// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package wake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rc3/fleet-controller/internal/rerrors"
)

func TestBroadcasterSendWithoutSubscriberIsBenign(t *testing.T) {
	b := NewBroadcaster()
	err := b.Send("ns", "cluster-a", []Command{NewWakeCommand("17")})

	var unavailable *rerrors.ClusterUnavailable
	assert.True(t, errors.As(err, &unavailable))
}

func TestBroadcasterSubscribeNextDeliversCurrentValueImmediately(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe("ns", "cluster-a")
	defer sub.Close()

	require.NoError(t, b.Send("ns", "cluster-a", []Command{NewWakeCommand("17")}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Subscribe again: a fresh Subscription's first Next still observes
	// whatever value is currently in the slot, without waiting for a change.
	late := b.Subscribe("ns", "cluster-a")
	defer late.Close()

	commands, err := late.Next(ctx)
	require.NoError(t, err)
	require.Len(t, commands, 1)
	assert.Equal(t, "17", commands[0].ComputerID)
}

func TestBroadcasterSubscribeThenSendWakesNext(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe("ns", "cluster-a")
	defer sub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// First Next returns immediately with the (empty) current value.
	first, err := sub.Next(ctx)
	require.NoError(t, err)
	assert.Empty(t, first)

	done := make(chan []Command, 1)
	go func() {
		commands, nextErr := sub.Next(context.Background())
		require.NoError(t, nextErr)
		done <- commands
	}()

	require.NoError(t, b.Send("ns", "cluster-a", []Command{NewWakeCommand("42")}))

	select {
	case commands := <-done:
		require.Len(t, commands, 1)
		assert.Equal(t, "42", commands[0].ComputerID)
	case <-time.After(time.Second):
		t.Fatal("Next did not wake up after Send")
	}
}

func TestBroadcasterSubscriptionNextRespectsContextCancellation(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe("ns", "cluster-a")
	defer sub.Close()

	// Drain the immediate first value so the second Next call blocks.
	_, err := sub.Next(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = sub.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBroadcasterSendHasSubscriberAfterSubscribe(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe("ns", "cluster-a")
	defer sub.Close()

	err := b.Send("ns", "cluster-a", []Command{NewWakeCommand("17")})
	assert.NoError(t, err)
}
