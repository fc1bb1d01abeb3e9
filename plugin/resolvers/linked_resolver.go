package resolvers

import (
	"context"
	"errors"

	"github.com/reglet-dev/reglet-integrations/plugin/entities"
	"github.com/reglet-dev/reglet-integrations/plugin/ports"
	"github.com/reglet-dev/reglet-integrations/plugin/services"
)

// LinkedResolver serves satellites compiled into the host binary.
type LinkedResolver struct {
	services.BaseResolver
	catalog ports.SatelliteRepository
}

// NewLinkedResolver creates a resolver backed by a catalog of linked satellites.
func NewLinkedResolver(catalog ports.SatelliteRepository) *LinkedResolver {
	return &LinkedResolver{
		catalog: catalog,
	}
}

// Resolve checks the catalog, otherwise delegates to next.
func (r *LinkedResolver) Resolve(ctx context.Context, dep entities.Dependency) (*entities.Satellite, error) {
	sat, err := r.catalog.Find(ctx, dep)
	if err == nil {
		return sat, nil
	}
	if !errors.Is(err, entities.ErrSatelliteNotFound) {
		return nil, err
	}

	return r.ResolveNext(ctx, dep)
}
