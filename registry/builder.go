package registry

import (
	"fmt"

	"github.com/reglet-dev/reglet-integrations/capability"
	"github.com/reglet-dev/reglet-integrations/manifest"
)

// Satellite is one qualifying package handed to Build.
type Satellite struct {
	Manifest *manifest.Manifest
	Tree     capability.Node
	Name     string
}

// Build indexes every integration of every satellite, in the order given.
// It fails on the first malformed manifest or unresolvable path; a satellite
// whose tree has no integrations still gets a package record.
func Build(satellites []Satellite) (*Registry, error) {
	r := newRegistry()

	for _, sat := range satellites {
		if err := r.addSatellite(sat); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) addSatellite(sat Satellite) error {
	if err := checkManifest(sat); err != nil {
		return err
	}
	if _, exists := r.packages[sat.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePackage, sat.Name)
	}

	paths := capability.FindPaths(sat.Tree, "")
	if paths == nil {
		paths = []string{}
	}

	pkg := &PackageRecord{
		Name:          sat.Name,
		Version:       sat.Manifest.Version,
		Description:   sat.Manifest.Description,
		RepositoryURL: sat.Manifest.RepositoryURL(),
		Paths:         paths,
	}
	r.packages[sat.Name] = pkg
	r.packageOrder = append(r.packageOrder, sat.Name)

	for _, path := range paths {
		leaf, err := capability.Resolve(sat.Tree, path)
		if err != nil {
			return &PathResolutionError{Package: sat.Name, Path: path, Err: err}
		}

		name := leaf.DeclaredName()
		if name == "" {
			name = GenerateName(path)
		}

		request, response := leaf.Variables()
		id := NewModuleID(sat.Name, path).String()
		if _, exists := r.modules[id]; exists {
			return fmt.Errorf("satellite %q: %w: %q", sat.Name, ErrDuplicateModule, id)
		}

		r.modules[id] = &ModuleRecord{
			ID:                id,
			Type:              classify(path),
			Package:           pkg,
			Path:              path,
			Name:              name,
			RequestVariables:  request,
			ResponseVariables: response,
		}
		r.integrations[id] = leaf.Integration()
		r.moduleOrder = append(r.moduleOrder, id)
	}

	return nil
}

func checkManifest(sat Satellite) error {
	switch {
	case sat.Name == "":
		return &ManifestError{Package: sat.Name, Field: "name"}
	case sat.Manifest == nil:
		return &ManifestError{Package: sat.Name, Field: "manifest"}
	case sat.Manifest.Version == "":
		return &ManifestError{Package: sat.Name, Field: "version"}
	case sat.Manifest.RepositoryURL() == "":
		return &ManifestError{Package: sat.Name, Field: "repository url"}
	}
	return nil
}
