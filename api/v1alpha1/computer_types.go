// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ComputerInternalState is the orchestrator-managed desired/observed state
// that flows through to the computer's firmware over rednet. It is flattened
// into ComputerSpec on the wire (mirrors the original's #[serde(flatten)]),
// and mirrored (but not re-serialized) onto ComputerStatus.
type ComputerInternalState struct {
	// Label is a human-assigned display label for the computer.
	// +optional
	Label *string `json:"label,omitempty"`
	// Script is the identifier of the program the computer should be
	// running.
	// +optional
	Script *string `json:"script,omitempty"`
}

func (in *ComputerInternalState) DeepCopyInto(out *ComputerInternalState) {
	*out = *in
	if in.Label != nil {
		out.Label = new(string)
		*out.Label = *in.Label
	}
	if in.Script != nil {
		out.Script = new(string)
		*out.Script = *in.Script
	}
}

// ComputerSpec defines the desired state of a Computer.
type ComputerSpec struct {
	// ID is the rednet computer ID this resource tracks.
	ID string `json:"id" validate:"required"`

	// ComputerInternalState is flattened into the spec: label/script live
	// alongside id, not nested under a sub-object.
	ComputerInternalState `json:",inline"`
}

// ComputerStatus defines the observed state of a Computer.
type ComputerStatus struct {
	// InternalState mirrors the last internal state the controller
	// observed acknowledged by the computer. Not serialized to JSON: it
	// exists for in-process diffing only, matching the original's
	// #[serde(skip)] on this field.
	InternalState ComputerInternalState `json:"-"`

	// Online reports whether the computer's last heartbeat fell within
	// the online window.
	// +optional
	Online bool `json:"online,omitempty"`

	// LastHeartbeatUnixSec is the unix timestamp of the last heartbeat
	// received from the computer, if any has been recorded.
	// +optional
	LastHeartbeatUnixSec *int64 `json:"lastHeartbeatUnixSec,omitempty"`

	// Conditions represent the latest available observations.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

func (in *ComputerStatus) DeepCopyInto(out *ComputerStatus) {
	*out = *in
	in.InternalState.DeepCopyInto(&out.InternalState)
	if in.LastHeartbeatUnixSec != nil {
		out.LastHeartbeatUnixSec = new(int64)
		*out.LastHeartbeatUnixSec = *in.LastHeartbeatUnixSec
	}
	if in.Conditions != nil {
		out.Conditions = make([]metav1.Condition, len(in.Conditions))
		for i := range in.Conditions {
			in.Conditions[i].DeepCopyInto(&out.Conditions[i])
		}
	}
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=comp

// Computer is the Schema for the computers API. One Computer resource
// tracks one rednet computer's desired/observed lifecycle state.
type Computer struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ComputerSpec   `json:"spec,omitempty"`
	Status ComputerStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ComputerList contains a list of Computer.
type ComputerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Computer `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Computer{}, &ComputerList{})
}
