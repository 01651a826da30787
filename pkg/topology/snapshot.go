package topology

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// snapshotDoc is the YAML document shape produced by the topology provider
// export and consumed by the CLI and tests.
type snapshotDoc struct {
	Nodes []string  `yaml:"nodes"`
	Links []linkDoc `yaml:"links"`
}

type linkDoc struct {
	EndpointA Interface  `yaml:"endpoint_a"`
	EndpointB Interface  `yaml:"endpoint_b"`
	Enabled   *bool      `yaml:"enabled"`
	Metrics   metricsDoc `yaml:"metrics"`
}

type metricsDoc struct {
	Bandwidth   *float64 `yaml:"bandwidth"`
	Delay       *float64 `yaml:"delay"`
	Reliability *float64 `yaml:"reliability"`
	Utilization *float64 `yaml:"utilization"`
	Priority    *int     `yaml:"priority"`
	Ownership   []Owner  `yaml:"ownership"`
}

// UnmarshalYAML accepts either a bare owner name or a mapping with an
// entitled-utilization share.
func (o *Owner) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		o.Name = value.Value
		o.EntitledUtilization = 0
		return nil
	}
	type ownerDoc Owner
	var doc ownerDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	*o = Owner(doc)
	return nil
}

// DecodeSnapshot reads a YAML topology snapshot and builds a Graph.
// Links default to enabled unless the document says otherwise.
func DecodeSnapshot(r io.Reader) (*Graph, error) {
	var doc snapshotDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	b := NewBuilder()
	for _, id := range doc.Nodes {
		b.AddNode(id)
	}
	for _, l := range doc.Links {
		attrs := Attributes{
			Bandwidth:   l.Metrics.Bandwidth,
			Delay:       l.Metrics.Delay,
			Reliability: l.Metrics.Reliability,
			Utilization: l.Metrics.Utilization,
			Priority:    l.Metrics.Priority,
			Ownership:   l.Metrics.Ownership,
		}
		if l.Enabled != nil && !*l.Enabled {
			b.AddDisabledLink(l.EndpointA, l.EndpointB, attrs)
		} else {
			b.AddLink(l.EndpointA, l.EndpointB, attrs)
		}
	}
	return b.Build()
}
