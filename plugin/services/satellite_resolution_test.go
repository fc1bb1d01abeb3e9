package services

import (
	"context"
	"errors"
	"testing"

	"github.com/reglet-dev/reglet-integrations/plugin/entities"
	"github.com/reglet-dev/reglet-integrations/plugin/values"
)

// mockResolver implements SatelliteResolutionStrategy for testing
type mockResolver struct {
	BaseResolver
	found  *entities.Satellite
	err    error
	called bool
}

func (m *mockResolver) Resolve(ctx context.Context, dep entities.Dependency) (*entities.Satellite, error) {
	m.called = true
	if m.err != nil {
		return nil, m.err
	}
	if m.found != nil {
		return m.found, nil
	}
	return m.ResolveNext(ctx, dep)
}

func newSatellite() *entities.Satellite {
	return entities.NewSatellite(values.MustNewSatelliteName("leadconduit-zip"), nil, nil, entities.SourceLinked)
}

func TestBaseResolver_Chain(t *testing.T) {
	dep := entities.Dependency{Name: values.MustNewSatelliteName("leadconduit-zip"), Constraint: "^1.0.0"}

	t.Run("NextResolverCalled", func(t *testing.T) {
		r1 := &mockResolver{}
		r2 := &mockResolver{found: newSatellite()}

		r1.SetNext(r2)

		got, err := r1.Resolve(context.Background(), dep)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Error("expected satellite, got nil")
		}
		if !r1.called {
			t.Error("r1 should be called")
		}
		if !r2.called {
			t.Error("r2 should be called via ResolveNext")
		}
	})

	t.Run("ChainEndsWithNotFoundError", func(t *testing.T) {
		r1 := &mockResolver{}

		_, err := r1.Resolve(context.Background(), dep)
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		var notFoundErr *entities.SatelliteNotFoundError
		if !errors.As(err, &notFoundErr) {
			t.Fatalf("expected SatelliteNotFoundError, got %T: %v", err, err)
		}
		if notFoundErr.Name != "leadconduit-zip" || notFoundErr.Constraint != "^1.0.0" {
			t.Errorf("unexpected error details: %+v", notFoundErr)
		}
	})

	t.Run("ChainStopsOnFirstSuccess", func(t *testing.T) {
		r1 := &mockResolver{found: newSatellite()}
		r2 := &mockResolver{found: newSatellite()}

		r1.SetNext(r2)

		if _, err := r1.Resolve(context.Background(), dep); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r2.called {
			t.Error("r2 should NOT be called")
		}
	})

	t.Run("ChainPropagatesErrors", func(t *testing.T) {
		expectedErr := errors.New("resolution failure")
		r1 := &mockResolver{err: expectedErr}
		r2 := &mockResolver{}

		r1.SetNext(r2)

		_, err := r1.Resolve(context.Background(), dep)
		if !errors.Is(err, expectedErr) {
			t.Errorf("expected %v, got %v", expectedErr, err)
		}
		if r2.called {
			t.Error("r2 should NOT be called on error")
		}
	})
}

func TestChain(t *testing.T) {
	dep := entities.Dependency{Name: values.MustNewSatelliteName("leadconduit-zip")}

	t.Run("LinksInOrder", func(t *testing.T) {
		r1 := &mockResolver{}
		r2 := &mockResolver{}
		r3 := &mockResolver{found: newSatellite()}

		head := Chain(r1, nil, r2, r3)
		if head != r1 {
			t.Fatal("head should be the first strategy")
		}
		if _, err := head.Resolve(context.Background(), dep); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r1.called || !r2.called || !r3.called {
			t.Error("every strategy should be consulted")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if Chain() != nil {
			t.Error("empty chain should be nil")
		}
	})
}
