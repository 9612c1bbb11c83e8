package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agenda-universal/especialidades-api/internal/core/domain"
	"github.com/agenda-universal/especialidades-api/internal/core/ports"
)

// SpecialtyService implements the specialty use cases. Handlers hold no state
// across requests; the repository is the sole owner of record state.
type SpecialtyService struct {
	repo   ports.SpecialtyRepository
	logger zerolog.Logger
}

func NewSpecialtyService(repo ports.SpecialtyRepository, logger zerolog.Logger) *SpecialtyService {
	return &SpecialtyService{repo: repo, logger: logger}
}

func (s *SpecialtyService) Create(ctx context.Context, input ports.SpecialtyInput) (*ports.SpecialtyDetail, error) {
	now := time.Now().UTC()
	specialty := &domain.Specialty{
		Name:        input.Name,
		Description: input.Description,
		Active:      input.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, specialty)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create specialty")
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("name", input.Name).Msg("specialty created")

	return &ports.SpecialtyDetail{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Active:      input.Active,
	}, nil
}

func (s *SpecialtyService) Get(ctx context.Context, id string) (*ports.SpecialtyDetail, error) {
	specialty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDetail(specialty), nil
}

func (s *SpecialtyService) List(ctx context.Context) ([]ports.SpecialtyDetail, error) {
	specialties, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.SpecialtyDetail, len(specialties))
	for i, specialty := range specialties {
		details[i] = *toDetail(specialty)
	}
	return details, nil
}

// Update replaces name/description/active wholesale. The identifier and
// creation time are preserved by the repository.
func (s *SpecialtyService) Update(ctx context.Context, id string, input ports.SpecialtyInput) (*ports.SpecialtyDetail, error) {
	specialty := &domain.Specialty{
		Name:        input.Name,
		Description: input.Description,
		Active:      input.Active,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, id, specialty); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("name", input.Name).Msg("specialty updated")

	return &ports.SpecialtyDetail{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Active:      input.Active,
	}, nil
}

func (s *SpecialtyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("specialty deleted")
	return nil
}

func toDetail(s *domain.Specialty) *ports.SpecialtyDetail {
	return &ports.SpecialtyDetail{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Active:      s.Active,
	}
}
