// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package gatewayhub

import (
	"math/rand"
	"sync"

	"github.com/rc3/fleet-controller/internal/rerrors"
)

// outboundQueueSize bounds each listener's outbound channel. Overflow is
// treated as listener failure, per spec.md §5: "Bounded at 1000; overflow
// treated as listener failure."
const outboundQueueSize = 1000

// ConnectionManager is the listener table: one outbound queue per
// connected computer, keyed by computer id. Grounded on teacher's
// ConnectionManager in internal/cluster-gateway/connection_manager.go, but
// simplified to a single connection per id (this spec has no multi-replica
// HA gateway concept, unlike the teacher's per-plane round robin).
type ConnectionManager struct {
	mu        sync.RWMutex
	listeners map[string]chan RPCRequest
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{listeners: make(map[string]chan RPCRequest)}
}

// Register creates (or replaces) the outbound queue for id and returns it.
// A pre-existing entry for the same id is replaced in the table, so new
// requests go to the newest connection; the older WebSocket itself is not
// closed here.
func (m *ConnectionManager) Register(id string) chan RPCRequest {
	ch := make(chan RPCRequest, outboundQueueSize)
	m.mu.Lock()
	m.listeners[id] = ch
	m.mu.Unlock()
	return ch
}

// Unregister removes id's listener entry if, and only if, ch is still the
// registered channel — guards against a reconnect's Register racing a stale
// connection's deferred Unregister, so a lost listener never removes an
// entry belonging to a newer connection for the same id (testable property
// 2, scoped per-id rather than per-connection).
func (m *ConnectionManager) Unregister(id string, ch chan RPCRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.listeners[id]; ok && current == ch {
		delete(m.listeners, id)
	}
}

// Count returns the number of connected listeners.
func (m *ConnectionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.listeners)
}

// RandomListener snapshots the listener table and returns one entry chosen
// uniformly at random, matching the original's rand::rng().random_range
// selection in Server::new_request. Returns rerrors.NoListeners if the
// table is empty.
func (m *ConnectionManager) RandomListener() (id string, outbound chan RPCRequest, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.listeners) == 0 {
		return "", nil, rerrors.NewNoListeners("")
	}

	ids := make([]string, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	chosen := ids[rand.Intn(len(ids))] //nolint:gosec // listener selection, not a security-sensitive random
	return chosen, m.listeners[chosen], nil
}

// Listener looks up the outbound queue for a specific computer id. Request
// routing does not use it: Server.resolveListener sends every backend kind,
// RednetBackendComputer included, through RandomListener.
func (m *ConnectionManager) Listener(id string) (chan RPCRequest, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ch, ok := m.listeners[id]
	return ch, ok
}
