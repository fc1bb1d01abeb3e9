package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const manifestSchemaURL = "https://reglet.dev/schemas/satellite-manifest.json"

// SchemaValidator implements ManifestValidator with a compiled JSON schema
// and a strict semantic version check.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewManifestValidator compiles the manifest schema.
func NewManifestValidator() (*SchemaValidator, error) {
	raw, err := ManifestSchemaJSON()
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(manifestSchemaURL, strings.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to add manifest schema: %w", err)
	}
	schema, err := compiler.Compile(manifestSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile manifest schema: %w", err)
	}

	return &SchemaValidator{schema: schema}, nil
}

// Validate checks required fields and that the version is valid semver.
func (v *SchemaValidator) Validate(m *manifest.Manifest) (*ValidationResult, error) {
	if m == nil {
		return nil, fmt.Errorf("manifest is nil")
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	res := &ValidationResult{Valid: true}

	if err := v.schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if !errors.As(err, &verr) {
			return nil, fmt.Errorf("schema validation failed: %w", err)
		}
		res.Valid = false
		res.Errors = append(res.Errors, leafMessages(verr)...)
	}

	if m.Version != "" {
		if _, err := semver.StrictNewVersion(m.Version); err != nil {
			res.Valid = false
			res.Errors = append(res.Errors, fmt.Sprintf("/version: %q is not a semantic version: %v", m.Version, err))
		}
	}

	return res, nil
}

// leafMessages flattens the validation error tree into its most specific causes.
func leafMessages(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		loc := verr.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{fmt.Sprintf("%s: %s", loc, verr.Message)}
	}
	var out []string
	for _, cause := range verr.Causes {
		out = append(out, leafMessages(cause)...)
	}
	return out
}
