// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ComputerGatewaySpec defines the desired state of a ComputerGateway: the
// route table a gateway hub deployment serves.
type ComputerGatewaySpec struct {
	GatewaySpec `json:",inline"`
}

func (in *ComputerGatewaySpec) DeepCopyInto(out *ComputerGatewaySpec) {
	in.GatewaySpec.DeepCopyInto(&out.GatewaySpec)
}

// ComputerGatewayStatus defines the observed state of a ComputerGateway.
type ComputerGatewayStatus struct {
	// Conditions represent the latest available observations.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

func (in *ComputerGatewayStatus) DeepCopyInto(out *ComputerGatewayStatus) {
	*out = *in
	if in.Conditions != nil {
		out.Conditions = make([]metav1.Condition, len(in.Conditions))
		for i := range in.Conditions {
			in.Conditions[i].DeepCopyInto(&out.Conditions[i])
		}
	}
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=cgw

// ComputerGateway is the Schema for the computergateways API.
type ComputerGateway struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ComputerGatewaySpec   `json:"spec,omitempty"`
	Status ComputerGatewayStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ComputerGatewayList contains a list of ComputerGateway.
type ComputerGatewayList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ComputerGateway `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ComputerGateway{}, &ComputerGatewayList{})
}
