package sprinkler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// Stop deactivates the sprinkler and clears its run timer.
// Only an active or paused sprinkler can be stopped.
func (s *Service) Stop(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error) {
	cur, err := s.sprinklers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Stop: %w", err)
	}

	if !cur.Status.CanTransition(domain.StatusInactive) {
		return nil, &domain.TransitionError{From: cur.Status, To: domain.StatusInactive}
	}

	status := domain.StatusInactive
	zero := 0
	updated, err := s.sprinklers.Update(ctx, id, domain.SprinklerUpdateParams{
		Status:       &status,
		CurrentTimer: &zero,
	})
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Stop: %w", err)
	}

	s.record(ctx, cur.Status, updated, domain.ActionStop)

	s.log.InfoContext(ctx, "sprinkler stopped",
		slog.String("sprinkler_id", id.String()),
		slog.String("name", updated.Name),
	)

	return updated, nil
}
