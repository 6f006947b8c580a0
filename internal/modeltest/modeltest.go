// Package modeltest registers a small Pod-like descriptor set and builds
// fixture trees for the package tests.
package modeltest

import (
	"sync"

	"github.com/kodama-dev/kodama/descriptor"
	"github.com/kodama-dev/kodama/node"
)

var registerOnce sync.Once

// Register registers the fixture kinds.  Safe to call from every test
// package; the global registry is shared per process.
func Register() {
	registerOnce.Do(register)
}

func register() {
	for _, d := range []*descriptor.Descriptor{
		{
			Version:  "v1",
			Name:     "Pod",
			Document: true,
			Required: []descriptor.Field{
				{Name: "apiVersion", Type: descriptor.StringType, Required: true},
				{Name: "kind", Type: descriptor.StringType, Required: true},
			},
			Optional: []descriptor.Field{
				{Name: "metadata", Type: descriptor.EntityType, Elem: "ObjectMeta"},
				{Name: "spec", Type: descriptor.EntityType, Elem: "PodSpec"},
			},
		},
		{
			Version: "v1",
			Name:    "ObjectMeta",
			Optional: []descriptor.Field{
				{Name: "name", Type: descriptor.StringType},
				{Name: "namespace", Type: descriptor.StringType},
				{Name: "clusterName", Type: descriptor.StringType},
				{Name: "labels", Type: descriptor.StringMapType},
				{Name: "annotations", Type: descriptor.StringMapType},
				{Name: "finalizers", Type: descriptor.StringType, List: true},
				{Name: "ownerReferences", Type: descriptor.EntityType, Elem: "OwnerReference", List: true},
			},
		},
		{
			Version: "v1",
			Name:    "OwnerReference",
			Required: []descriptor.Field{
				{Name: "apiVersion", Type: descriptor.StringType, Required: true},
				{Name: "kind", Type: descriptor.StringType, Required: true},
				{Name: "name", Type: descriptor.StringType, Required: true},
				{Name: "uid", Type: descriptor.StringType, Required: true},
			},
			Optional: []descriptor.Field{
				{Name: "controller", Type: descriptor.BoolType},
			},
		},
		{
			Version: "v1",
			Name:    "PodSpec",
			Required: []descriptor.Field{
				{Name: "containers", Type: descriptor.EntityType, Elem: "Container", List: true, Required: true},
			},
			Optional: []descriptor.Field{
				{Name: "nodeName", Type: descriptor.StringType},
				{Name: "nodeSelector", Type: descriptor.StringMapType},
				{Name: "enableServiceLinks", Type: descriptor.BoolType},
			},
		},
		{
			Version: "v1",
			Name:    "Container",
			Required: []descriptor.Field{
				{Name: "name", Type: descriptor.StringType, Required: true},
			},
			Optional: []descriptor.Field{
				{Name: "image", Type: descriptor.StringType},
				{Name: "command", Type: descriptor.StringType, List: true},
				{Name: "ports", Type: descriptor.EntityType, Elem: "ContainerPort", List: true},
				{Name: "lifecycle", Type: descriptor.EntityType, Elem: "Lifecycle"},
			},
		},
		{
			Version: "v1",
			Name:    "ContainerPort",
			Required: []descriptor.Field{
				{Name: "containerPort", Type: descriptor.IntType, Required: true},
			},
			Optional: []descriptor.Field{
				{Name: "name", Type: descriptor.StringType},
				{Name: "hostPort", Type: descriptor.IntType},
			},
		},
		{
			Version: "v1",
			Name:    "Lifecycle",
			Optional: []descriptor.Field{
				{Name: "postStart", Type: descriptor.EntityType, Elem: "Handler"},
				{Name: "preStop", Type: descriptor.EntityType, Elem: "Handler"},
			},
		},
		{
			Version: "v1",
			Name:    "Handler",
			Optional: []descriptor.Field{
				{Name: "exec", Type: descriptor.EntityType, Elem: "ExecAction"},
				{Name: "httpGet", Type: descriptor.EntityType, Elem: "HTTPGetAction"},
			},
		},
		{
			Version: "v1",
			Name:    "ExecAction",
			Optional: []descriptor.Field{
				{Name: "command", Type: descriptor.StringType, List: true},
			},
		},
		{
			Version: "v1",
			Name:    "HTTPGetAction",
			Required: []descriptor.Field{
				{Name: "port", Type: descriptor.IntType, Required: true},
			},
			Optional: []descriptor.Field{
				{Name: "host", Type: descriptor.StringType},
				{Name: "path", Type: descriptor.StringType},
				{Name: "scheme", Type: descriptor.StringType},
				{Name: "httpHeaders", Type: descriptor.EntityType, Elem: "HTTPHeader", List: true},
			},
		},
		{
			Version: "v1",
			Name:    "HTTPHeader",
			Required: []descriptor.Field{
				{Name: "name", Type: descriptor.StringType, Required: true},
				{Name: "value", Type: descriptor.StringType, Required: true},
			},
		},
	} {
		descriptor.MustRegister(d)
	}
}

// Pod builds the shared Pod fixture: two containers, the second carrying a
// lifecycle with exec and httpGet handlers.
func Pod() *node.Node {
	Register()
	return node.Make("v1", "Pod",
		node.F("apiVersion", "v1"),
		node.F("kind", "Pod"),
		node.F("metadata", node.Make("v1", "ObjectMeta",
			node.F("name", "hello"),
			node.F("labels", map[string]string{"lab1": "wibble", "lab2": "wobble"}),
		)),
		node.F("spec", node.Make("v1", "PodSpec",
			node.F("containers", node.L(
				node.Make("v1", "Container",
					node.F("name", "web"),
					node.F("image", "img/web"),
					node.F("ports", node.L(
						node.Make("v1", "ContainerPort", node.F("containerPort", 3306)),
						node.Make("v1", "ContainerPort", node.F("containerPort", 3307)),
					)),
				),
				node.Make("v1", "Container",
					node.F("name", "db"),
					node.F("image", "img/db"),
					node.F("command", []string{"run", "--fast"}),
					node.F("lifecycle", node.Make("v1", "Lifecycle",
						node.F("postStart", node.Make("v1", "Handler",
							node.F("exec", node.Make("v1", "ExecAction",
								node.F("command", []string{"cmd", "arg1"}),
							)),
							node.F("httpGet", node.Make("v1", "HTTPGetAction",
								node.F("port", 80),
								node.F("host", "localhost"),
								node.F("path", "/home"),
								node.F("httpHeaders", node.L(
									node.Make("v1", "HTTPHeader",
										node.F("name", "Content-Disposition"),
										node.F("value", "whatever"),
									),
								)),
							)),
						)),
						node.F("preStop", node.Make("v1", "Handler",
							node.F("exec", node.Make("v1", "ExecAction",
								node.F("command", []string{"cmd", "arg2"}),
							)),
						)),
					)),
				),
			)),
			node.F("nodeName", "maxwell"),
			node.F("nodeSelector", map[string]string{"key1": "wibble"}),
			node.F("enableServiceLinks", false),
		)),
	)
}

// Meta builds a small standalone ObjectMeta.
func Meta() *node.Node {
	Register()
	return node.Make("v1", "ObjectMeta",
		node.F("name", "thing"),
		node.F("labels", map[string]string{"a": "1", "b": "2"}),
	)
}
