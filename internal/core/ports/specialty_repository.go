package ports

import (
	"context"

	"github.com/agenda-universal/especialidades-api/internal/core/domain"
)

// SpecialtyRepository defines persistence operations for specialties.
// The store assigns the identifier exactly once, at creation.
type SpecialtyRepository interface {
	// Create inserts the specialty and returns the generated identifier.
	Create(ctx context.Context, s *domain.Specialty) (string, error)
	// FindByID returns domain.ErrSpecialtyNotFound when the id is unknown.
	FindByID(ctx context.Context, id string) (*domain.Specialty, error)
	// FindAll returns every specialty in insertion order.
	FindAll(ctx context.Context) ([]*domain.Specialty, error)
	// Update replaces name/description/active in place, preserving the
	// identifier and creation time. Returns domain.ErrSpecialtyNotFound
	// when the id is unknown.
	Update(ctx context.Context, id string, s *domain.Specialty) error
	// Delete removes the record (hard delete). Returns
	// domain.ErrSpecialtyNotFound when the id is unknown.
	Delete(ctx context.Context, id string) error
}
