// Package registry assembles satellite capability trees into an immutable
// lookup table of packages, modules and integrations.
package registry

import (
	"maps"

	"github.com/reglet-dev/reglet-integrations/capability"
)

// Registry implements IntegrationRegistry over maps built once by Build.
// It is never mutated after Build returns, so concurrent reads need no locking.
type Registry struct {
	packages     map[string]*PackageRecord
	modules      map[string]*ModuleRecord
	integrations map[string]capability.Integration
	packageOrder []string
	moduleOrder  []string
}

var _ IntegrationRegistry = (*Registry)(nil)

func newRegistry() *Registry {
	return &Registry{
		packages:     make(map[string]*PackageRecord),
		modules:      make(map[string]*ModuleRecord),
		integrations: make(map[string]capability.Integration),
	}
}

// Lookup returns the integration registered under id.
func (r *Registry) Lookup(id string) (capability.Integration, bool) {
	integration, ok := r.integrations[id]
	return integration, ok
}

// Package returns the record of the named satellite package.
func (r *Registry) Package(name string) (*PackageRecord, bool) {
	p, ok := r.packages[name]
	return p, ok
}

// Module returns the record of the module with the given id.
func (r *Registry) Module(id string) (*ModuleRecord, bool) {
	m, ok := r.modules[id]
	return m, ok
}

// Packages returns a copy of the package map.
func (r *Registry) Packages() map[string]*PackageRecord {
	return maps.Clone(r.packages)
}

// Modules returns a copy of the module map.
func (r *Registry) Modules() map[string]*ModuleRecord {
	return maps.Clone(r.modules)
}

// Integrations returns a copy of the integration map.
func (r *Registry) Integrations() map[string]capability.Integration {
	return maps.Clone(r.integrations)
}

// PackageNames returns package names in build order.
func (r *Registry) PackageNames() []string {
	return append([]string(nil), r.packageOrder...)
}

// ModuleIDs returns module ids in build order.
func (r *Registry) ModuleIDs() []string {
	return append([]string(nil), r.moduleOrder...)
}

// ModulesOfType returns the modules of one type in build order.
func (r *Registry) ModulesOfType(t ModuleType) []*ModuleRecord {
	var out []*ModuleRecord
	for _, id := range r.moduleOrder {
		if m := r.modules[id]; m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of modules.
func (r *Registry) Len() int {
	return len(r.modules)
}
