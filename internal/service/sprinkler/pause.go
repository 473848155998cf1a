package sprinkler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// Pause suspends an active sprinkler without clearing its run timer, so a
// later Resume continues where the run left off.
func (s *Service) Pause(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error) {
	cur, err := s.sprinklers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Pause: %w", err)
	}

	if !cur.Status.CanTransition(domain.StatusPaused) {
		return nil, &domain.TransitionError{From: cur.Status, To: domain.StatusPaused}
	}

	status := domain.StatusPaused
	updated, err := s.sprinklers.Update(ctx, id, domain.SprinklerUpdateParams{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Pause: %w", err)
	}

	s.record(ctx, cur.Status, updated, domain.ActionPause)

	s.log.InfoContext(ctx, "sprinkler paused",
		slog.String("sprinkler_id", id.String()),
		slog.String("name", updated.Name),
	)

	return updated, nil
}
