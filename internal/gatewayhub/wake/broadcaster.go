// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package wake implements the per-cluster wake-command fan-out (spec
// Module G): a single-slot latest-value broadcast channel, one per
// ComputerCluster, feeding any connected command-bridge subscriber.
//
// Grounded on original_source/controller/src/c2.rs's C2Server, which keys a
// DashMap of tokio::sync::watch senders by (namespace, cluster). Go has no
// watch-channel primitive in the standard library, so the same "latest
// value plus a closed-and-replaced notify channel" idiom is built by hand
// from sync.Mutex + chan struct{} — ordered delivery is explicitly a
// non-goal, so dropping intermediate values on overlapping sends is
// correct, not a bug.
package wake

import (
	"context"
	"sync"

	"github.com/rc3/fleet-controller/internal/rerrors"
)

// CommandKind discriminates entries in a wake command batch. Wake is the
// only kind this spec defines; the type stays a discriminated shape so a
// future kind doesn't require a wire-format break.
type CommandKind string

const CommandKindWake CommandKind = "wake"

// Command is one fan-out command addressed to a specific computer.
type Command struct {
	Kind       CommandKind `json:"kind"`
	ComputerID string      `json:"computerID"`
}

func NewWakeCommand(computerID string) Command {
	return Command{Kind: CommandKindWake, ComputerID: computerID}
}

type slot struct {
	mu          sync.Mutex
	value       []Command
	changed     chan struct{}
	subscribers int
}

func newSlot() *slot {
	return &slot{changed: make(chan struct{})}
}

// Broadcaster holds one slot per (namespace, cluster) key, created lazily
// on first Send or Subscribe.
type Broadcaster struct {
	mu       sync.Mutex
	clusters map[string]*slot
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clusters: make(map[string]*slot)}
}

func key(namespace, name string) string {
	return namespace + "/" + name
}

func (b *Broadcaster) slotFor(namespace, name string) *slot {
	k := key(namespace, name)
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.clusters[k]
	if !ok {
		s = newSlot()
		b.clusters[k] = s
	}
	return s
}

// Send replaces the latest command batch for the named cluster and wakes
// any subscriber blocked in Subscription.Next. If no subscriber is
// currently connected, it returns a rerrors.ClusterUnavailable error — the
// caller (the cluster reconciler) treats this as benign and ignores it,
// per spec.md's error taxonomy.
func (b *Broadcaster) Send(namespace, name string, commands []Command) error {
	s := b.slotFor(namespace, name)

	s.mu.Lock()
	hasSubscriber := s.subscribers > 0
	s.value = commands
	close(s.changed)
	s.changed = make(chan struct{})
	s.mu.Unlock()

	if !hasSubscriber {
		return rerrors.NewClusterUnavailable(namespace, name)
	}
	return nil
}

// Subscription is a single subscriber's view of a cluster's command slot.
type Subscription struct {
	s         *slot
	delivered bool
}

// Subscribe registers a new subscriber for the named cluster, creating its
// slot if this is the first caller (producer or subscriber) to reference
// it.
func (b *Broadcaster) Subscribe(namespace, name string) *Subscription {
	s := b.slotFor(namespace, name)
	s.mu.Lock()
	s.subscribers++
	s.mu.Unlock()
	return &Subscription{s: s}
}

// Close unregisters the subscription. Call when the command-bridge
// WebSocket disconnects.
func (sub *Subscription) Close() {
	sub.s.mu.Lock()
	sub.s.subscribers--
	sub.s.mu.Unlock()
}

// Next returns the current command batch immediately on the first call
// (mirroring tokio::sync::watch's borrow_and_update-then-changed loop: the
// first observation doesn't wait for a change), and blocks until the next
// Send thereafter. It returns ctx.Err() if ctx is cancelled first.
func (sub *Subscription) Next(ctx context.Context) ([]Command, error) {
	if !sub.delivered {
		sub.delivered = true
		sub.s.mu.Lock()
		val := sub.s.value
		sub.s.mu.Unlock()
		return val, nil
	}

	sub.s.mu.Lock()
	changed := sub.s.changed
	sub.s.mu.Unlock()

	select {
	case <-changed:
		sub.s.mu.Lock()
		val := sub.s.value
		sub.s.mu.Unlock()
		return val, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
