package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for build failures.
// Typed errors below match them through errors.Is.
var (
	// ErrInvalidManifest is returned when a satellite manifest lacks a required field.
	ErrInvalidManifest = errors.New("invalid satellite manifest")

	// ErrUnresolvablePath is returned when a discovered path does not resolve to an integration.
	ErrUnresolvablePath = errors.New("unresolvable capability path")

	// ErrDuplicatePackage is returned when two satellites share a package name.
	ErrDuplicatePackage = errors.New("duplicate satellite package")

	// ErrDuplicateModule is returned when two integrations produce the same module id.
	ErrDuplicateModule = errors.New("duplicate module id")
)

// ManifestError identifies the satellite and the manifest field that is missing.
type ManifestError struct {
	Package string
	Field   string
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("satellite %q: manifest is missing %s", e.Package, e.Field)
}

// Is implements error matching for errors.Is() checks.
func (e *ManifestError) Is(target error) bool {
	return target == ErrInvalidManifest
}

// PathResolutionError indicates a discovered path that no longer leads to an integration.
type PathResolutionError struct {
	Err     error
	Package string
	Path    string
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("satellite %q: cannot resolve path %q: %v", e.Package, e.Path, e.Err)
}

// Is implements error matching for errors.Is() checks.
func (e *PathResolutionError) Is(target error) bool {
	return target == ErrUnresolvablePath
}

// Unwrap returns the underlying resolution error.
func (e *PathResolutionError) Unwrap() error {
	return e.Err
}
