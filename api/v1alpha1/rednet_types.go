// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	"encoding/json"
	"fmt"
)

// RednetBackendKind discriminates the variants of RednetBackend.
// +kubebuilder:validation:Enum=anycast;computer;hostname
type RednetBackendKind string

const (
	RednetBackendAnycast  RednetBackendKind = "anycast"
	RednetBackendComputer RednetBackendKind = "computer"
	RednetBackendHostname RednetBackendKind = "hostname"
)

// RednetBackend identifies who a rednet RPC is addressed to. It is a
// hand-rolled tagged union over JSON since encoding/json has no equivalent
// of a `#[serde(tag = "kind")]` enum: Kind selects which of the remaining
// fields are meaningful, and MarshalJSON/UnmarshalJSON enforce that only
// those fields round-trip on the wire.
//
//	{"kind": "anycast", "protocol": "http"}
//	{"kind": "computer", "id": "17", "protocol": "http"}
//	{"kind": "hostname", "protocol": "http", "host": "printer.local"}
type RednetBackend struct {
	Kind RednetBackendKind `json:"-"`

	// Protocol is used by all three variants.
	Protocol string `json:"-"`
	// ComputerID is set only when Kind == RednetBackendComputer.
	ComputerID string `json:"-"`
	// Host is set only when Kind == RednetBackendHostname.
	Host string `json:"-"`
}

func NewAnycastBackend(protocol string) RednetBackend {
	return RednetBackend{Kind: RednetBackendAnycast, Protocol: protocol}
}

func NewComputerBackend(id, protocol string) RednetBackend {
	return RednetBackend{Kind: RednetBackendComputer, ComputerID: id, Protocol: protocol}
}

func NewHostnameBackend(protocol, host string) RednetBackend {
	return RednetBackend{Kind: RednetBackendHostname, Protocol: protocol, Host: host}
}

type rednetBackendWire struct {
	Kind       RednetBackendKind `json:"kind"`
	Protocol   string            `json:"protocol,omitempty"`
	ComputerID string            `json:"id,omitempty"`
	Host       string            `json:"host,omitempty"`
}

func (b RednetBackend) MarshalJSON() ([]byte, error) {
	wire := rednetBackendWire{Kind: b.Kind, Protocol: b.Protocol}
	switch b.Kind {
	case RednetBackendAnycast:
	case RednetBackendComputer:
		wire.ComputerID = b.ComputerID
	case RednetBackendHostname:
		wire.Host = b.Host
	default:
		return nil, fmt.Errorf("rednet backend: unknown kind %q", b.Kind)
	}
	return json.Marshal(wire)
}

func (b *RednetBackend) UnmarshalJSON(data []byte) error {
	var wire rednetBackendWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("rednet backend: %w", err)
	}
	switch wire.Kind {
	case RednetBackendAnycast:
		*b = NewAnycastBackend(wire.Protocol)
	case RednetBackendComputer:
		if wire.ComputerID == "" {
			return fmt.Errorf("rednet backend: computer variant missing %q field", "id")
		}
		*b = NewComputerBackend(wire.ComputerID, wire.Protocol)
	case RednetBackendHostname:
		if wire.Host == "" {
			return fmt.Errorf("rednet backend: hostname variant missing %q field", "host")
		}
		*b = NewHostnameBackend(wire.Protocol, wire.Host)
	default:
		return fmt.Errorf("rednet backend: unknown kind %q", wire.Kind)
	}
	return nil
}

// DeepCopyInto is hand-written since RednetBackend has no pointer/slice
// fields needing anything beyond a value copy.
func (b *RednetBackend) DeepCopyInto(out *RednetBackend) {
	*out = *b
}

// HTTPOverRednetRoute matches an HTTP path prefix to a rednet backend.
type HTTPOverRednetRoute struct {
	// Prefix is matched against the incoming request path after the
	// gateway's own mount prefix has been stripped.
	Prefix string `json:"prefix" validate:"required,startswith=/"`
	// Backend identifies who the request is forwarded to.
	Backend RednetBackend `json:"backend" validate:"required"`
}

func (in *HTTPOverRednetRoute) DeepCopyInto(out *HTTPOverRednetRoute) {
	*out = *in
	in.Backend.DeepCopyInto(&out.Backend)
}

// GatewayLink names a host that a gateway should make addressable by host
// name for RednetBackendHostname routing.
type GatewayLink struct {
	HostID string `json:"hostID" validate:"required"`
}

func (in *GatewayLink) DeepCopyInto(out *GatewayLink) {
	*out = *in
}

// GatewaySpec is the shared route-table shape embedded both in
// ComputerClusterSpec.Gateway and in ComputerGatewaySpec.
type GatewaySpec struct {
	// Routes lists HTTP-path-prefix-to-rednet-backend mappings.
	// +optional
	Routes []HTTPOverRednetRoute `json:"routes,omitempty" validate:"dive"`
	// Links lists additional hostnames this gateway should serve.
	// +optional
	Links []GatewayLink `json:"links,omitempty" validate:"dive"`
}

func (in *GatewaySpec) DeepCopyInto(out *GatewaySpec) {
	*out = *in
	if in.Routes != nil {
		out.Routes = make([]HTTPOverRednetRoute, len(in.Routes))
		for i := range in.Routes {
			in.Routes[i].DeepCopyInto(&out.Routes[i])
		}
	}
	if in.Links != nil {
		out.Links = make([]GatewayLink, len(in.Links))
		copy(out.Links, in.Links)
	}
}

func (in *GatewaySpec) DeepCopy() *GatewaySpec {
	if in == nil {
		return nil
	}
	out := new(GatewaySpec)
	in.DeepCopyInto(out)
	return out
}
