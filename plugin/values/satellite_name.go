// Package values holds immutable value objects of the satellite domain.
package values

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// maxNameLength mirrors the npm package name limit.
const maxNameLength = 214

// satelliteNamePattern excludes dots, which separate the package from the
// integration path in module ids, and path separators, since names index
// directories on disk.
var satelliteNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// SatelliteName is a package name usable both as a module id prefix and as a
// directory name under the packages dir.
type SatelliteName struct {
	value string
}

// NewSatelliteName trims and validates name.
func NewSatelliteName(name string) (SatelliteName, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return SatelliteName{}, fmt.Errorf("satellite name cannot be empty")
	case len(name) > maxNameLength:
		return SatelliteName{}, fmt.Errorf("satellite name too long (max %d chars)", maxNameLength)
	case !satelliteNamePattern.MatchString(name):
		return SatelliteName{}, fmt.Errorf("invalid satellite name %q: only letters, digits, '_' and '-' are allowed", name)
	}
	return SatelliteName{value: name}, nil
}

// MustNewSatelliteName is NewSatelliteName for names known to be valid.
func MustNewSatelliteName(name string) SatelliteName {
	sn, err := NewSatelliteName(name)
	if err != nil {
		panic(err)
	}
	return sn
}

func (n SatelliteName) String() string {
	return n.value
}

// MarshalJSON implements json.Marshaler.
func (n SatelliteName) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

// UnmarshalJSON validates the decoded name.
func (n *SatelliteName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid satellite name JSON: %w", err)
	}
	name, err := NewSatelliteName(s)
	if err != nil {
		return err
	}
	*n = name
	return nil
}
