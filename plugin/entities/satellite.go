package entities

import (
	"github.com/reglet-dev/reglet-integrations/capability"
	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/reglet-dev/reglet-integrations/plugin/values"
	"github.com/reglet-dev/reglet-integrations/registry"
)

// Source records where a satellite was resolved from.
type Source string

const (
	// SourceLinked marks satellites compiled into the host binary.
	SourceLinked Source = "linked"
	// SourceDirectory marks satellites loaded from a packages directory.
	SourceDirectory Source = "directory"
)

// Satellite is the aggregate root of discovery: an installed package with its
// manifest and capability tree.
type Satellite struct {
	name     values.SatelliteName
	manifest *manifest.Manifest
	tree     capability.Node
	source   Source
}

// NewSatellite creates a satellite entity. A nil tree is treated as empty.
func NewSatellite(
	name values.SatelliteName,
	m *manifest.Manifest,
	tree capability.Node,
	source Source,
) *Satellite {
	if tree == nil {
		tree = capability.MustBranch()
	}
	return &Satellite{
		name:     name,
		manifest: m,
		tree:     tree,
		source:   source,
	}
}

// Name returns the satellite's package name.
func (s *Satellite) Name() values.SatelliteName {
	return s.name
}

// Manifest returns the satellite's package manifest.
func (s *Satellite) Manifest() *manifest.Manifest {
	return s.manifest
}

// Tree returns the satellite's capability tree.
func (s *Satellite) Tree() capability.Node {
	return s.tree
}

// Source returns where the satellite was resolved from.
func (s *Satellite) Source() Source {
	return s.source
}

// Version returns the manifest version, or "" without a manifest.
func (s *Satellite) Version() string {
	if s.manifest == nil {
		return ""
	}
	return s.manifest.Version
}

// ToRegistry converts the entity into registry build input.
func (s *Satellite) ToRegistry() registry.Satellite {
	return registry.Satellite{
		Name:     s.name.String(),
		Manifest: s.manifest,
		Tree:     s.tree,
	}
}
