// Package repository implements satellite repository adapters.
package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/reglet-dev/reglet-integrations/capability"
	"github.com/reglet-dev/reglet-integrations/fsutil"
	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/reglet-dev/reglet-integrations/plugin/entities"
	"github.com/reglet-dev/reglet-integrations/plugin/values"
)

// ManifestFiles are the manifest names looked for in a satellite directory,
// in order of preference.
var ManifestFiles = []string{"package.json", "manifest.yaml", "manifest.yml"}

// CapabilitiesFile holds a satellite's declarative capability tree.
const CapabilitiesFile = "capabilities.yaml"

// FSSatelliteRepository implements ports.SatelliteRepository over a packages
// directory laid out as <root>/<name>/{manifest, capabilities.yaml}.
type FSSatelliteRepository struct {
	root string // e.g. ./node_modules
}

// NewFSSatelliteRepository creates a filesystem-based repository. The root
// need not exist; a missing root provides no satellites.
func NewFSSatelliteRepository(root string) *FSSatelliteRepository {
	return &FSSatelliteRepository{root: root}
}

// Root returns the packages directory.
func (r *FSSatelliteRepository) Root() string {
	return r.root
}

// Find loads the satellite installed under dep.Name. The constraint is not
// enforced here; see services.CompatibilityService.
func (r *FSSatelliteRepository) Find(ctx context.Context, dep entities.Dependency) (*entities.Satellite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := r.satellitePath(dep.Name.String())
	if err != nil {
		return nil, err
	}

	manifestPath, ok := findManifest(dir)
	if !ok {
		return nil, &entities.SatelliteNotFoundError{Name: dep.Name.String(), Constraint: dep.Constraint}
	}

	m, err := manifest.ParseFile(manifestPath)
	if err != nil {
		return nil, err
	}

	tree, err := loadTree(filepath.Join(dir, CapabilitiesFile))
	if err != nil {
		return nil, err
	}

	return entities.NewSatellite(dep.Name, m, tree, entities.SourceDirectory), nil
}

// List returns every installed satellite, in directory order.
func (r *FSSatelliteRepository) List(ctx context.Context) ([]values.SatelliteName, error) {
	entries, err := os.ReadDir(r.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading packages directory: %w", err)
	}

	var names []values.SatelliteName
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}
		name, err := values.NewSatelliteName(entry.Name())
		if err != nil {
			continue // Not a satellite package name (e.g. .bin, @scope)
		}
		if _, ok := findManifest(filepath.Join(r.root, entry.Name())); ok {
			names = append(names, name)
		}
	}

	return names, nil
}

// Helper methods

func (r *FSSatelliteRepository) satellitePath(name string) (string, error) {
	// Security: Reject absolute paths before filepath.Join (which may ignore root on Unix)
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("security violation: absolute paths not allowed in satellite name %q", name)
	}

	fullPath := filepath.Join(r.root, name)

	cleanRoot := filepath.Clean(r.root)
	cleanPath := filepath.Clean(fullPath)

	// Security: Verify the resolved path is still within the root directory
	if !strings.HasPrefix(cleanPath, cleanRoot+string(os.PathSeparator)) {
		return "", fmt.Errorf("security violation: path traversal detected for satellite name %q", name)
	}

	return cleanPath, nil
}

func findManifest(dir string) (string, bool) {
	for _, name := range ManifestFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func loadTree(path string) (capability.Node, error) {
	file, err := os.Open(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return capability.MustBranch(), nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	tree, err := capability.LoadTree(fsutil.NewLimitedReader(file, fsutil.DefaultLimit))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return tree, nil
}
