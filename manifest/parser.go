package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reglet-dev/reglet-integrations/fsutil"
)

// Parser parses raw manifest bytes into a Manifest.
type Parser interface {
	// Parse unmarshals manifest bytes into a Manifest struct.
	Parse(data []byte) (*Manifest, error)
}

// ParserFor returns the parser matching a manifest file extension.
func ParserFor(path string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return NewJSONParser(), nil
	case ".yaml", ".yml":
		return NewYAMLParser(), nil
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", filepath.Base(path))
	}
}

// ParseFile reads and parses the manifest at path.
func ParseFile(path string) (*Manifest, error) {
	parser, err := ParserFor(path)
	if err != nil {
		return nil, err
	}

	data, err := fsutil.ReadFile(path, fsutil.DefaultLimit)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
