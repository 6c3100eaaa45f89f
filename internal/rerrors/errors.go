// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package rerrors holds the typed error taxonomy shared by the reconcilers
// and the gateway hub, following the same struct-error-plus-errors.As
// pattern as internal/controller.HierarchyNotFoundError.
package rerrors

import "fmt"

// MissingField is returned when owner-reference derivation finds one of
// api_version/kind/name/uid absent on the source object.
type MissingField struct {
	Field string
}

func (e *MissingField) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func NewMissingField(field string) error {
	return &MissingField{Field: field}
}

// SerdeError wraps a YAML/JSON (de)serialization failure, e.g. loading the
// rednet route-table config or decoding a wire envelope.
type SerdeError struct {
	Context string
	Err     error
}

func (e *SerdeError) Error() string {
	return fmt.Sprintf("serde error (%s): %v", e.Context, e.Err)
}

func (e *SerdeError) Unwrap() error { return e.Err }

func NewSerdeError(context string, err error) error {
	return &SerdeError{Context: context, Err: err}
}

// ClusterUnavailable is raised when a wake command is produced for a
// cluster with no connected command-bridge subscriber. It is benign: the
// cluster reconciler ignores it rather than requeuing early.
type ClusterUnavailable struct {
	Namespace, Name string
}

func (e *ClusterUnavailable) Error() string {
	return fmt.Sprintf("no command-bridge subscriber for cluster %s/%s", e.Namespace, e.Name)
}

func NewClusterUnavailable(namespace, name string) error {
	return &ClusterUnavailable{Namespace: namespace, Name: name}
}

// RouteNotMatched means no configured route prefix matched the stripped
// request path. Surfaces as 404.
type RouteNotMatched struct {
	Path string
}

func (e *RouteNotMatched) Error() string {
	return fmt.Sprintf("no route matches path %q", e.Path)
}

func NewRouteNotMatched(path string) error {
	return &RouteNotMatched{Path: path}
}

// NoListeners means the resolved backend has no connected listener to
// forward the envelope to. Surfaces as 502.
type NoListeners struct {
	ComputerID string
}

func (e *NoListeners) Error() string {
	if e.ComputerID == "" {
		return "no listeners connected"
	}
	return fmt.Sprintf("no listener connected for computer %q", e.ComputerID)
}

func NewNoListeners(computerID string) error {
	return &NoListeners{ComputerID: computerID}
}

// UpstreamTimeout means the reply slot was not filled within the gateway
// timeout. Surfaces as 504.
type UpstreamTimeout struct {
	RequestID string
}

func (e *UpstreamTimeout) Error() string {
	return fmt.Sprintf("upstream timed out waiting for reply to request %s", e.RequestID)
}

func NewUpstreamTimeout(requestID string) error {
	return &UpstreamTimeout{RequestID: requestID}
}

// UpstreamCancelled means the reply slot's sender end was dropped without a
// value (e.g. the listener disconnected mid-flight). Surfaces as 502.
type UpstreamCancelled struct {
	RequestID string
}

func (e *UpstreamCancelled) Error() string {
	return fmt.Sprintf("reply slot for request %s was closed without a reply", e.RequestID)
}

func NewUpstreamCancelled(requestID string) error {
	return &UpstreamCancelled{RequestID: requestID}
}

// BodyReadFailure means the inbound HTTP request body could not be read in
// full (e.g. truncated, exceeded the size limit). Surfaces as 500.
type BodyReadFailure struct {
	Err error
}

func (e *BodyReadFailure) Error() string {
	return fmt.Sprintf("failed to read request body: %v", e.Err)
}

func (e *BodyReadFailure) Unwrap() error { return e.Err }

func NewBodyReadFailure(err error) error {
	return &BodyReadFailure{Err: err}
}
