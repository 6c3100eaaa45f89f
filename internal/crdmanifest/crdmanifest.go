// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package crdmanifest hand-builds the CustomResourceDefinition manifest for
// each type this module owns, mirroring original_source's
// `controller crd-manifest <kind>` subcommand. Unlike teacher's
// internal/schema package (which converts user-authored shorthand schemas
// into extv1.JSONSchemaProps at runtime), the shapes here are fixed Go
// structs, so the JSONSchemaProps trees are written directly.
package crdmanifest

import (
	"fmt"

	extv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	fleetv1alpha1 "github.com/rc3/fleet-controller/api/v1alpha1"
)

// Kind identifies which CRD manifest to build.
type Kind string

const (
	KindComputerCluster     Kind = "cluster"
	KindComputer            Kind = "computer"
	KindComputerGateway     Kind = "gateway"
	KindHTTPOverRednetRoute Kind = "http-over-rednet-route"
)

var validKinds = []Kind{KindComputerCluster, KindComputer, KindComputerGateway, KindHTTPOverRednetRoute}

// ValidKinds returns the list of kinds Build accepts, for help text.
func ValidKinds() []Kind { return validKinds }

func preserveUnknownFields() *bool {
	v := true
	return &v
}

func objectSchema(properties map[string]extv1.JSONSchemaProps, required ...string) extv1.JSONSchemaProps {
	return extv1.JSONSchemaProps{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func stringSchema() extv1.JSONSchemaProps  { return extv1.JSONSchemaProps{Type: "string"} }
func boolSchema() extv1.JSONSchemaProps    { return extv1.JSONSchemaProps{Type: "boolean"} }
func integerSchema() extv1.JSONSchemaProps { return extv1.JSONSchemaProps{Type: "integer"} }

func rednetBackendSchema() extv1.JSONSchemaProps {
	return objectSchema(map[string]extv1.JSONSchemaProps{
		"kind":     {Type: "string", Enum: []extv1.JSON{{Raw: []byte(`"anycast"`)}, {Raw: []byte(`"computer"`)}, {Raw: []byte(`"hostname"`)}}},
		"protocol": stringSchema(),
		"id":       stringSchema(),
		"host":     stringSchema(),
	}, "kind")
}

func gatewaySpecSchema() extv1.JSONSchemaProps {
	route := objectSchema(map[string]extv1.JSONSchemaProps{
		"prefix":  stringSchema(),
		"backend": rednetBackendSchema(),
	}, "prefix", "backend")
	link := objectSchema(map[string]extv1.JSONSchemaProps{
		"hostID": stringSchema(),
	}, "hostID")
	return objectSchema(map[string]extv1.JSONSchemaProps{
		"routes": {Type: "array", Items: &extv1.JSONSchemaPropsOrArray{Schema: &route}},
		"links":  {Type: "array", Items: &extv1.JSONSchemaPropsOrArray{Schema: &link}},
	})
}

func conditionsSchema() extv1.JSONSchemaProps {
	return extv1.JSONSchemaProps{
		Type: "array",
		Items: &extv1.JSONSchemaPropsOrArray{
			Schema: &extv1.JSONSchemaProps{
				Type: "object",
				Properties: map[string]extv1.JSONSchemaProps{
					"type":               stringSchema(),
					"status":             stringSchema(),
					"reason":             stringSchema(),
					"message":            stringSchema(),
					"observedGeneration": integerSchema(),
					"lastTransitionTime": {Type: "string", Format: "date-time"},
				},
				Required: []string{"type", "status", "lastTransitionTime", "reason"},
			},
		},
	}
}

func newCRD(plural, singular, kind string, shortNames []string, schema extv1.JSONSchemaProps, hasStatus bool) *extv1.CustomResourceDefinition {
	subresources := &extv1.CustomResourceSubresources{}
	if hasStatus {
		subresources.Status = &extv1.CustomResourceSubresourceStatus{}
	}

	return &extv1.CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apiextensions.k8s.io/v1",
			Kind:       "CustomResourceDefinition",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: fmt.Sprintf("%s.%s", plural, fleetv1alpha1.GroupVersion.Group),
		},
		Spec: extv1.CustomResourceDefinitionSpec{
			Group: fleetv1alpha1.GroupVersion.Group,
			Names: extv1.CustomResourceDefinitionNames{
				Plural:     plural,
				Singular:   singular,
				Kind:       kind,
				ShortNames: shortNames,
			},
			Scope: extv1.NamespaceScoped,
			Versions: []extv1.CustomResourceDefinitionVersion{
				{
					Name:    fleetv1alpha1.GroupVersion.Version,
					Served:  true,
					Storage: true,
					Schema: &extv1.CustomResourceValidation{
						OpenAPIV3Schema: &schema,
					},
					Subresources: subresources,
				},
			},
		},
	}
}

func computerSchema() extv1.JSONSchemaProps {
	spec := objectSchema(map[string]extv1.JSONSchemaProps{
		"id":     stringSchema(),
		"label":  stringSchema(),
		"script": stringSchema(),
	}, "id")
	status := objectSchema(map[string]extv1.JSONSchemaProps{
		"online":               boolSchema(),
		"lastHeartbeatUnixSec": integerSchema(),
		"conditions":           conditionsSchema(),
	})
	root := objectSchema(map[string]extv1.JSONSchemaProps{
		"spec":   spec,
		"status": status,
	})
	root.XPreserveUnknownFields = preserveUnknownFields()
	return root
}

func computerClusterSchema() extv1.JSONSchemaProps {
	spec := objectSchema(map[string]extv1.JSONSchemaProps{
		"gateway": gatewaySpecSchema(),
	})
	status := objectSchema(map[string]extv1.JSONSchemaProps{
		"conditions": conditionsSchema(),
	})
	root := objectSchema(map[string]extv1.JSONSchemaProps{
		"spec":   spec,
		"status": status,
	})
	root.XPreserveUnknownFields = preserveUnknownFields()
	return root
}

func computerGatewaySchema() extv1.JSONSchemaProps {
	spec := gatewaySpecSchema()
	status := objectSchema(map[string]extv1.JSONSchemaProps{
		"conditions": conditionsSchema(),
	})
	root := objectSchema(map[string]extv1.JSONSchemaProps{
		"spec":   spec,
		"status": status,
	})
	root.XPreserveUnknownFields = preserveUnknownFields()
	return root
}

// Build returns the CustomResourceDefinition manifest for kind.
func Build(kind Kind) (*extv1.CustomResourceDefinition, error) {
	switch kind {
	case KindComputer:
		return newCRD("computers", "computer", "Computer", []string{"comp"}, computerSchema(), true), nil
	case KindComputerCluster:
		return newCRD("computerclusters", "computercluster", "ComputerCluster", []string{"cc"}, computerClusterSchema(), true), nil
	case KindComputerGateway:
		return newCRD("computergateways", "computergateway", "ComputerGateway", []string{"cgw"}, computerGatewaySchema(), true), nil
	case KindHTTPOverRednetRoute:
		// This shape is embedded (GatewaySpec.Routes), not its own CRD, but
		// original_source exposes a manifest subcommand for it as a
		// standalone schema fragment for documentation/validation tooling.
		return newCRD("httpoverrednetroutes", "httpoverrednetroute", "HTTPOverRednetRoute", nil,
			objectSchema(map[string]extv1.JSONSchemaProps{
				"prefix":  stringSchema(),
				"backend": rednetBackendSchema(),
			}, "prefix", "backend"), false), nil
	default:
		return nil, fmt.Errorf("unknown crd manifest kind %q", kind)
	}
}
