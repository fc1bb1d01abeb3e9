// Package ports declares the interfaces discovery depends on.
package ports

import (
	"context"

	"github.com/reglet-dev/reglet-integrations/plugin/entities"
	"github.com/reglet-dev/reglet-integrations/plugin/values"
)

// SatelliteRepository is a source of installed satellites.
// Implements Repository pattern for the Satellite aggregate.
type SatelliteRepository interface {
	// Find returns the satellite satisfying dep, or an error matching
	// entities.ErrSatelliteNotFound when this source does not provide it.
	Find(ctx context.Context, dep entities.Dependency) (*entities.Satellite, error)

	// List returns the names of every satellite this source provides.
	List(ctx context.Context) ([]values.SatelliteName, error)
}
