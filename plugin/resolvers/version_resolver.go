// Package resolvers implements the satellite resolution chain.
package resolvers

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// SemverResolver implements ports.VersionResolver using Masterminds/semver.
type SemverResolver struct{}

// NewSemverResolver creates a new SemverResolver.
func NewSemverResolver() *SemverResolver {
	return &SemverResolver{}
}

// constraint parses c, treating "", "latest" and "*" as any version.
func constraint(c string) (*semver.Constraints, error) {
	switch c {
	case "", "latest", "*":
		c = ">= 0"
	}
	parsed, err := semver.NewConstraint(c)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", c, err)
	}
	return parsed, nil
}

// Resolve converts a version constraint to an exact version from the available options.
// It returns the highest version that satisfies the constraint.
func (r *SemverResolver) Resolve(constraintStr string, available []string) (string, error) {
	c, err := constraint(constraintStr)
	if err != nil {
		return "", err
	}

	var valid []*semver.Version
	for _, vStr := range available {
		v, err := semver.NewVersion(vStr)
		if err != nil {
			continue // Skip invalid versions in availability list
		}

		if c.Check(v) {
			valid = append(valid, v)
		}
	}

	if len(valid) == 0 {
		return "", fmt.Errorf("no version satisfies constraint %q from available options", constraintStr)
	}

	// Collection sorts ascending, so the last element is the highest.
	sort.Sort(semver.Collection(valid))
	highest := valid[len(valid)-1]

	return highest.Original(), nil
}

// Satisfies reports whether version is within constraintStr.
func (r *SemverResolver) Satisfies(constraintStr, version string) (bool, error) {
	c, err := constraint(constraintStr)
	if err != nil {
		return false, err
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", version, err)
	}
	return c.Check(v), nil
}
