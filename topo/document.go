package topo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netlab/core"
)

const (
	// APIVersion is the schema version accepted by LoadDocument.
	APIVersion = "netlab.io/v1alpha1"

	// KindTopology is the only document kind this package understands.
	KindTopology = "Topology"
)

// Document is the declarative YAML form of a topology.
type Document struct {
	APIVersion string       `yaml:"apiVersion"`
	Kind       string       `yaml:"kind"`
	Metadata   Metadata     `yaml:"metadata"`
	Spec       DocumentSpec `yaml:"spec"`
}

// Metadata carries document identity.
type Metadata struct {
	Name string `yaml:"name"`
}

// DocumentSpec lists declared nodes and weighted links.
type DocumentSpec struct {
	Nodes []string `yaml:"nodes"`
	Links []Link   `yaml:"links"`
}

// Link is one undirected weighted connection.
type Link struct {
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Cost int64  `yaml:"cost"`
}

// LoadDocument reads and parses a topology document file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided CLI input, not untrusted
	if err != nil {
		return nil, fmt.Errorf("failed to read topology document: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse topology YAML: %w", err)
	}

	return &doc, nil
}

// Validate checks a topology document for structural problems.
func (d *Document) Validate() error {
	if d.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion: %s (expected %s)", d.APIVersion, APIVersion)
	}

	if d.Kind != KindTopology {
		return fmt.Errorf("unsupported kind: %s (expected %s)", d.Kind, KindTopology)
	}

	if d.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}

	if len(d.Spec.Nodes) == 0 && len(d.Spec.Links) == 0 {
		return fmt.Errorf("at least one node or link is required")
	}

	for i, n := range d.Spec.Nodes {
		if n == "" {
			return fmt.Errorf("spec.nodes[%d]: name must not be empty", i)
		}
	}

	for i, l := range d.Spec.Links {
		if l.A == "" || l.B == "" {
			return fmt.Errorf("spec.links[%d]: both endpoints are required", i)
		}
	}

	return nil
}

// Topology converts a validated document into the loader's result form.
// Link endpoints absent from spec.nodes are created implicitly, matching the
// wire format's default behavior.
func (d *Document) Topology() (*Topology, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid topology document: %w", err)
	}

	t := &Topology{
		Graph: core.NewGraph(),
		Nodes: append([]string(nil), d.Spec.Nodes...),
	}
	for _, n := range d.Spec.Nodes {
		if err := t.Graph.AddNode(n); err != nil {
			return nil, fmt.Errorf("node %q: %w", n, err)
		}
	}
	for _, l := range d.Spec.Links {
		if err := t.Graph.AddEdge(l.A, l.B, l.Cost); err != nil {
			return nil, fmt.Errorf("link %s-%s: %w", l.A, l.B, err)
		}
	}

	return t, nil
}
