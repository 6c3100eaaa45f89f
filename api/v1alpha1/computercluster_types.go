// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ComputerClusterSpec defines the desired state of a ComputerCluster: one
// logical fleet of rednet computers sharing an RBAC identity and,
// optionally, a gateway.
type ComputerClusterSpec struct {
	// Gateway, if set, causes the controller to provision and maintain a
	// ComputerGateway child resource with this route table.
	// +optional
	Gateway *GatewaySpec `json:"gateway,omitempty"`
}

func (in *ComputerClusterSpec) DeepCopyInto(out *ComputerClusterSpec) {
	*out = *in
	if in.Gateway != nil {
		out.Gateway = in.Gateway.DeepCopy()
	}
}

// ComputerClusterStatus defines the observed state of a ComputerCluster.
type ComputerClusterStatus struct {
	// Conditions represent the latest available observations.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

func (in *ComputerClusterStatus) DeepCopyInto(out *ComputerClusterStatus) {
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
// +kubebuilder:resource:scope=Namespaced,shortName=cc

// ComputerCluster is the Schema for the computerclusters API.
type ComputerCluster struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ComputerClusterSpec   `json:"spec,omitempty"`
	Status ComputerClusterStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ComputerClusterList contains a list of ComputerCluster.
type ComputerClusterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ComputerCluster `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ComputerCluster{}, &ComputerClusterList{})
}
