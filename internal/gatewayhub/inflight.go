// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package gatewayhub

import (
	"sync"

	"github.com/google/uuid"
)

// InFlightTable correlates outstanding requests with their eventual reply.
// Grounded on original_source/.../gateway/src/main.rs's
// Server.in_flight_requests (a DashMap<Uuid, oneshot::Sender<HttpResponse>>)
// and its RednetRpcReceiver PinnedDrop guard: Install returns a release
// closure that the caller MUST defer immediately, giving Go's defer the
// same "always runs, regardless of which return path is taken" guarantee
// Rust gets from Drop. This is what makes testable property 1 (§8) hold.
type InFlightTable struct {
	mu      sync.Mutex
	pending map[uuid.UUID]chan HTTPResponse
}

func NewInFlightTable() *InFlightTable {
	return &InFlightTable{pending: make(map[uuid.UUID]chan HTTPResponse)}
}

// Install reserves a reply slot for requestID before the request has been
// enqueued to any listener — the Open Question resolution recorded in
// DESIGN.md: installing before sending closes the race in the original,
// where a reply could in principle arrive before the sender recorded the
// slot to deliver it to.
func (t *InFlightTable) Install(requestID uuid.UUID) (reply <-chan HTTPResponse, release func()) {
	ch := make(chan HTTPResponse, 1)
	t.mu.Lock()
	t.pending[requestID] = ch
	t.mu.Unlock()

	return ch, func() {
		t.mu.Lock()
		delete(t.pending, requestID)
		t.mu.Unlock()
	}
}

// Resolve delivers a response to the matching in-flight slot, if any. It
// reports whether a slot was found; a false return corresponds to the
// original's "Received response for unknown request ID" warning path.
func (t *InFlightTable) Resolve(requestID uuid.UUID, resp HTTPResponse) bool {
	t.mu.Lock()
	ch, ok := t.pending[requestID]
	if ok {
		delete(t.pending, requestID)
	}
	t.mu.Unlock()

	if !ok {
		return false
	}
	select {
	case ch <- resp:
	default:
	}
	return true
}

// Len reports the number of in-flight requests, exposed for the
// in-flight-requests gauge metric.
func (t *InFlightTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
