// Package validation checks satellite manifests against a JSON schema
// generated from the manifest model.
package validation

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/reglet-dev/reglet-integrations/manifest"
)

// ManifestSchema reflects the satellite manifest JSON schema from manifest.Manifest.
// Unknown fields are allowed so full package.json documents validate.
func ManifestSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
		Anonymous:                 true,
	}
	s := r.Reflect(&manifest.Manifest{})
	s.Title = "Satellite package manifest"
	return s
}

// ManifestSchemaJSON returns the indented JSON encoding of ManifestSchema.
func ManifestSchemaJSON() (string, error) {
	b, err := json.MarshalIndent(ManifestSchema(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest schema: %w", err)
	}
	return string(b), nil
}
