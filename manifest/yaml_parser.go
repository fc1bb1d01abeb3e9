package manifest

import "github.com/goccy/go-yaml"

// YAMLParser implements Parser for YAML manifests.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser.
func NewYAMLParser() Parser {
	return &YAMLParser{}
}

// Parse unmarshals YAML bytes into a Manifest struct.
func (p *YAMLParser) Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
