// Package manifest models package manifests: the host manifest that lists
// dependencies and the manifest each satellite package ships with.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Manifest is the subset of a package manifest used for discovery.
type Manifest struct {
	Repository   *Repository       `json:"repository,omitempty" yaml:"repository,omitempty" jsonschema:"required"`
	Dependencies map[string]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Name         string            `json:"name" yaml:"name" jsonschema:"minLength=1"`
	Version      string            `json:"version" yaml:"version" jsonschema:"minLength=1"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
}

// Repository is the source repository metadata of a package.
// Manifests may declare it as an object or as a bare string
// ("github:org/repo", "org/repo" or a URL), which becomes URL.
type Repository struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	URL  string `json:"url" yaml:"url" jsonschema:"minLength=1"`
}

// repositoryFields breaks the UnmarshalJSON/UnmarshalYAML recursion.
type repositoryFields Repository

// UnmarshalJSON accepts both the object and the string form.
func (r *Repository) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var url string
		if err := json.Unmarshal(trimmed, &url); err != nil {
			return err
		}
		*r = Repository{URL: url}
		return nil
	}

	var fields repositoryFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = Repository(fields)
	return nil
}

// UnmarshalYAML accepts both the mapping and the string form.
func (r *Repository) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		*r = Repository{URL: v}
		return nil
	case map[string]interface{}:
		var fields repositoryFields
		if err := unmarshal(&fields); err != nil {
			return err
		}
		*r = Repository(fields)
		return nil
	case nil:
		*r = Repository{}
		return nil
	default:
		return fmt.Errorf("repository must be a string or a mapping, got %T", raw)
	}
}

// RepositoryURL returns the repository URL, or "" when none is declared.
func (m *Manifest) RepositoryURL() string {
	if m == nil || m.Repository == nil {
		return ""
	}
	return m.Repository.URL
}
