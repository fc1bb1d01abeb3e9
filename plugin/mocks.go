package plugin

import (
	"context"
	"io"
	"log/slog"

	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/reglet-dev/reglet-integrations/plugin/entities"
	"github.com/reglet-dev/reglet-integrations/plugin/services"
	"github.com/reglet-dev/reglet-integrations/plugin/values"
	"github.com/reglet-dev/reglet-integrations/validation"
)

// MockResolver implements SatelliteResolutionStrategy for testing
type MockResolver struct {
	services.BaseResolver
	Found    map[string]*entities.Satellite
	Err      error
	Resolved []entities.Dependency
}

func (m *MockResolver) Resolve(ctx context.Context, dep entities.Dependency) (*entities.Satellite, error) {
	m.Resolved = append(m.Resolved, dep)
	if m.Err != nil {
		return nil, m.Err
	}
	if sat, ok := m.Found[dep.Name.String()]; ok {
		return sat, nil
	}
	return m.ResolveNext(ctx, dep)
}

func (m *MockResolver) SetNext(next services.SatelliteResolutionStrategy) {
	m.BaseResolver.SetNext(next)
}

// MockRepository implements ports.SatelliteRepository
type MockRepository struct {
	FindSatellite *entities.Satellite
	FindErr       error

	ListNames []values.SatelliteName
	ListErr   error
}

func (m *MockRepository) Find(ctx context.Context, dep entities.Dependency) (*entities.Satellite, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	if m.FindSatellite == nil {
		return nil, &entities.SatelliteNotFoundError{Name: dep.Name.String(), Constraint: dep.Constraint}
	}
	return m.FindSatellite, nil
}

func (m *MockRepository) List(ctx context.Context) ([]values.SatelliteName, error) {
	return m.ListNames, m.ListErr
}

// MockValidator implements validation.ManifestValidator
type MockValidator struct {
	Result *validation.ValidationResult
	Err    error
	Called bool
}

func (m *MockValidator) Validate(*manifest.Manifest) (*validation.ValidationResult, error) {
	m.Called = true
	if m.Err != nil {
		return nil, m.Err
	}
	// Return default success result if nil
	if m.Result == nil {
		return &validation.ValidationResult{Valid: true}, nil
	}
	return m.Result, nil
}

func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
