package registry

import "github.com/reglet-dev/reglet-integrations/capability"

// IntegrationRegistry is the read-only view consumers use to find integrations.
type IntegrationRegistry interface {
	// Lookup returns the integration registered under a module id.
	// The boolean is false when the id is unknown.
	Lookup(id string) (capability.Integration, bool)

	// Package returns the record of a satellite package.
	Package(name string) (*PackageRecord, bool)

	// Module returns the record of a module.
	Module(id string) (*ModuleRecord, bool)

	// Packages returns all package records keyed by package name.
	Packages() map[string]*PackageRecord

	// Modules returns all module records keyed by module id.
	Modules() map[string]*ModuleRecord

	// Integrations returns all integrations keyed by module id.
	Integrations() map[string]capability.Integration
}
