package resolvers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/reglet-dev/reglet-integrations/plugin/entities"
	"github.com/reglet-dev/reglet-integrations/plugin/ports"
	"github.com/reglet-dev/reglet-integrations/plugin/services"
	"github.com/reglet-dev/reglet-integrations/validation"
)

// DirectoryResolver loads satellites installed in a packages directory.
// Their manifests come from disk, so each one is validated before use.
type DirectoryResolver struct {
	services.BaseResolver
	repository ports.SatelliteRepository
	validator  validation.ManifestValidator
	logger     *slog.Logger
}

// NewDirectoryResolver creates a directory resolver. A nil validator skips
// schema validation; a nil logger uses slog.Default().
func NewDirectoryResolver(
	repository ports.SatelliteRepository,
	validator validation.ManifestValidator,
	logger *slog.Logger,
) *DirectoryResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectoryResolver{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

// Resolve loads from the directory and validates the manifest.
func (r *DirectoryResolver) Resolve(ctx context.Context, dep entities.Dependency) (*entities.Satellite, error) {
	sat, err := r.repository.Find(ctx, dep)
	if errors.Is(err, entities.ErrSatelliteNotFound) {
		return r.ResolveNext(ctx, dep)
	}
	if err != nil {
		return nil, fmt.Errorf("loading satellite %q: %w", dep.Name.String(), err)
	}

	if r.validator != nil {
		result, err := r.validator.Validate(sat.Manifest())
		if err != nil {
			return nil, fmt.Errorf("validating satellite %q: %w", dep.Name.String(), err)
		}
		if !result.Valid {
			return nil, &entities.InvalidManifestError{Name: dep.Name.String(), Problems: result.Errors}
		}
	}

	if url := sat.Manifest().RepositoryURL(); manifest.HasCredentials(url) {
		r.logger.Warn("satellite repository url embeds credentials",
			"satellite", dep.Name.String(),
			"repository", manifest.StripCredentials(url))
	}

	r.logger.Debug("satellite loaded from directory",
		"satellite", dep.Name.String(),
		"version", sat.Version())

	return sat, nil
}
