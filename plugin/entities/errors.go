package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reglet-dev/reglet-integrations/registry"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrSatelliteNotFound is returned when no source provides a satellite.
	ErrSatelliteNotFound = errors.New("satellite not found")

	// ErrIncompatibleVersion is returned when an installed satellite does not
	// satisfy the constraint the host declares for it.
	ErrIncompatibleVersion = errors.New("incompatible satellite version")
)

// SatelliteNotFoundError indicates no resolver could provide a satellite.
type SatelliteNotFoundError struct {
	Name       string
	Constraint string
}

func (e *SatelliteNotFoundError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("satellite not found: %s", e.Name)
	}
	return fmt.Sprintf("satellite not found: %s@%s", e.Name, e.Constraint)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, entities.ErrSatelliteNotFound)
func (e *SatelliteNotFoundError) Is(target error) bool {
	return target == ErrSatelliteNotFound
}

// IncompatibleVersionError reports an installed version outside the declared range.
type IncompatibleVersionError struct {
	Name       string
	Version    string
	Constraint string
}

func (e *IncompatibleVersionError) Error() string {
	return fmt.Sprintf(
		"satellite %s: installed version %s does not satisfy %q",
		e.Name,
		e.Version,
		e.Constraint,
	)
}

// Is implements error matching for errors.Is() checks.
func (e *IncompatibleVersionError) Is(target error) bool {
	return target == ErrIncompatibleVersion
}

// InvalidManifestError carries every schema problem found in a satellite manifest.
// It matches registry.ErrInvalidManifest so callers test a single sentinel.
type InvalidManifestError struct {
	Name     string
	Problems []string
}

func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("satellite %q: invalid manifest: %s", e.Name, strings.Join(e.Problems, "; "))
}

// Is implements error matching for errors.Is() checks.
func (e *InvalidManifestError) Is(target error) bool {
	return target == registry.ErrInvalidManifest
}
