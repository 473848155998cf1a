package sprinkler

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// Get returns a single sprinkler by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error) {
	sp, err := s.sprinklers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Get: %w", err)
	}
	return sp, nil
}

// List returns all sprinklers ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Sprinkler, error) {
	out, err := s.sprinklers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sprinkler.List: %w", err)
	}
	return out, nil
}

// Active returns the currently running sprinkler, or nil when the whole
// system is idle. There is at most one by invariant.
func (s *Service) Active(ctx context.Context) (*domain.Sprinkler, error) {
	sp, err := s.sprinklers.GetActive(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Active: %w", err)
	}
	return sp, nil
}
