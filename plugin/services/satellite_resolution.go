package services

import (
	"context"

	"github.com/reglet-dev/reglet-integrations/plugin/entities"
)

// SatelliteResolutionStrategy defines the interface for satellite resolution.
// Implements Chain of Responsibility pattern.
type SatelliteResolutionStrategy interface {
	// Resolve attempts to locate a satellite satisfying the dependency.
	Resolve(ctx context.Context, dep entities.Dependency) (*entities.Satellite, error)

	// SetNext sets the next resolver in the chain.
	SetNext(next SatelliteResolutionStrategy)
}

// BaseResolver provides common chain-of-responsibility logic.
type BaseResolver struct {
	next SatelliteResolutionStrategy
}

// SetNext sets the next resolver in chain.
func (b *BaseResolver) SetNext(next SatelliteResolutionStrategy) {
	b.next = next
}

// ResolveNext delegates to next resolver in chain.
func (b *BaseResolver) ResolveNext(ctx context.Context, dep entities.Dependency) (*entities.Satellite, error) {
	if b.next == nil {
		return nil, &entities.SatelliteNotFoundError{Name: dep.Name.String(), Constraint: dep.Constraint}
	}
	return b.next.Resolve(ctx, dep)
}

// Chain links strategies in order and returns the head. Nil strategies are
// skipped; with none left the head is nil.
func Chain(strategies ...SatelliteResolutionStrategy) SatelliteResolutionStrategy {
	var head, tail SatelliteResolutionStrategy
	for _, s := range strategies {
		if s == nil {
			continue
		}
		if head == nil {
			head = s
		} else {
			tail.SetNext(s)
		}
		tail = s
	}
	return head
}
