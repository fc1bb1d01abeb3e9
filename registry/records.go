package registry

import (
	"encoding/json"

	"github.com/reglet-dev/reglet-integrations/capability"
)

// ModuleType classifies a module by direction.
type ModuleType string

const (
	// TypeInbound marks modules that receive data.
	TypeInbound ModuleType = "inbound"
	// TypeOutbound marks modules that deliver data.
	TypeOutbound ModuleType = "outbound"
	// TypeNone marks modules that are neither inbound nor outbound.
	TypeNone ModuleType = ""
)

// MarshalJSON encodes TypeNone as null.
func (t ModuleType) MarshalJSON() ([]byte, error) {
	if t == TypeNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(t))
}

// MarshalYAML encodes TypeNone as null.
func (t ModuleType) MarshalYAML() (interface{}, error) {
	if t == TypeNone {
		return nil, nil
	}
	return string(t), nil
}

// PackageRecord describes one satellite package.
type PackageRecord struct {
	Name          string   `json:"name" yaml:"name"`
	Version       string   `json:"version" yaml:"version"`
	Description   string   `json:"description" yaml:"description"`
	RepositoryURL string   `json:"repo_url" yaml:"repo_url"`
	Paths         []string `json:"paths" yaml:"paths"`
}

// ModuleRecord describes one integration discovered in a satellite package.
// Package points at the shared record of the owning package.
type ModuleRecord struct {
	Package           *PackageRecord        `json:"package" yaml:"package"`
	ID                string                `json:"id" yaml:"id"`
	Type              ModuleType            `json:"type" yaml:"type"`
	Path              string                `json:"path" yaml:"path"`
	Name              string                `json:"name" yaml:"name"`
	RequestVariables  []capability.Variable `json:"request_variables" yaml:"request_variables"`
	ResponseVariables []capability.Variable `json:"response_variables" yaml:"response_variables"`
}
