package sprinkler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// Resume reactivates a paused sprinkler. Unlike Start it never demotes
// another sprinkler: a paused sprinkler is the one that was active, so the
// single-active invariant already holds.
func (s *Service) Resume(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error) {
	cur, err := s.sprinklers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Resume: %w", err)
	}

	if cur.Status != domain.StatusPaused {
		return nil, &domain.TransitionError{From: cur.Status, To: domain.StatusActive}
	}

	status := domain.StatusActive
	updated, err := s.sprinklers.Update(ctx, id, domain.SprinklerUpdateParams{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Resume: %w", err)
	}

	s.record(ctx, cur.Status, updated, domain.ActionResume)

	s.log.InfoContext(ctx, "sprinkler resumed",
		slog.String("sprinkler_id", id.String()),
		slog.String("name", updated.Name),
	)

	return updated, nil
}
