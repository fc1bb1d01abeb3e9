package validation

import "github.com/reglet-dev/reglet-integrations/manifest"

// ManifestValidator validates satellite manifests before they are indexed.
type ManifestValidator interface {
	// Validate checks the manifest against the satellite manifest schema.
	Validate(m *manifest.Manifest) (*ValidationResult, error)
}

// ValidationResult lists the problems found in a manifest.
type ValidationResult struct {
	Errors []string
	Valid  bool
}
