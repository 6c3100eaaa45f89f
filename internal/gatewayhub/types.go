// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package gatewayhub implements the rednet RPC broker (spec Module F): the
// stateless HTTP-to-WebSocket bridge that accepts inbound HTTP requests,
// picks a backend by route-table lookup, and correlates the request with a
// reply arriving asynchronously over a computer's WebSocket connection.
//
// Grounded on teacher internal/cluster-gateway/{server.go,
// connection_manager.go,types.go} for the Server/ConnectionManager shape,
// and on original_source/k8s/crates/gateway/src/main.rs for the exact
// routing/correlation/cleanup algorithm.
package gatewayhub

import (
	"github.com/google/uuid"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
)

// HTTPRequest is the rednet-wire shape of an inbound HTTP request, carried
// as the payload of a request RPCMessage.
type HTTPRequest struct {
	Method  string              `json:"method"`
	URI     string              `json:"uri"`
	Headers map[string][]string `json:"headers,omitempty"`
	Body    string              `json:"body,omitempty"`
}

// HTTPResponse is the rednet-wire shape of the computer's reply, carried as
// the payload of a response RPCMessage.
type HTTPResponse struct {
	Status  int                 `json:"status"`
	Headers map[string][]string `json:"headers,omitempty"`
	Body    string              `json:"body,omitempty"`
}

// RPCRequest is the envelope shipped from the gateway hub to a listening
// computer. requestID is spelled with that exact case on the wire per
// spec.md §6.
type RPCRequest struct {
	Dest      fleetv1alpha1.RednetBackend `json:"dest"`
	RequestID uuid.UUID                   `json:"requestID"`
	Payload   HTTPRequest                 `json:"payload"`
}

// RPCResponse is the envelope a computer sends back over the same
// WebSocket connection once it has handled an RPCRequest.
type RPCResponse struct {
	Dest      fleetv1alpha1.RednetBackend `json:"dest"`
	RequestID uuid.UUID                   `json:"requestID"`
	Payload   HTTPResponse                `json:"payload"`
}

// RednetConfig is the YAML-shaped route table read from the file named by
// the ROCKET_REDNET environment variable, reloaded fresh on every gateway
// request per the original's FromRequest<RednetConfig> behavior.
type RednetConfig struct {
	Routes []fleetv1alpha1.HTTPOverRednetRoute `json:"routes"`
}
