package registry

import (
	"fmt"
	"strings"

	"github.com/reglet-dev/reglet-integrations/capability"
)

// ModuleID identifies a module as <package>.<dotted path>.
// A satellite whose root export is the integration has an empty path and its
// id keeps the trailing separator ("leadconduit-custom.").
type ModuleID struct {
	pkg  string
	path string
}

// NewModuleID creates an id from its components.
func NewModuleID(pkg, path string) ModuleID {
	return ModuleID{pkg: pkg, path: path}
}

// ParseModuleID splits an id at its first separator.
// Package names never contain the separator, so the split is unambiguous.
func ParseModuleID(id string) (ModuleID, error) {
	pkg, path, ok := strings.Cut(id, capability.PathSeparator)
	if !ok {
		return ModuleID{}, fmt.Errorf("invalid module id %q: missing %q", id, capability.PathSeparator)
	}
	if pkg == "" {
		return ModuleID{}, fmt.Errorf("invalid module id %q: empty package name", id)
	}
	return ModuleID{pkg: pkg, path: path}, nil
}

// String returns the canonical id.
func (id ModuleID) String() string {
	return id.pkg + capability.PathSeparator + id.path
}

// Package returns the satellite package name.
func (id ModuleID) Package() string {
	return id.pkg
}

// Path returns the dotted path inside the package.
func (id ModuleID) Path() string {
	return id.path
}

// IsRoot reports whether the id names a package's root export.
func (id ModuleID) IsRoot() bool {
	return id.path == ""
}
