package sprinkler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// ToggleTimer flips the automatic-schedule flag. Schedule toggling is not
// audited: no history record is written and no state-change event is
// published.
func (s *Service) ToggleTimer(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error) {
	cur, err := s.sprinklers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sprinkler.ToggleTimer: %w", err)
	}

	flipped := !cur.Timer.Active
	updated, err := s.sprinklers.Update(ctx, id, domain.SprinklerUpdateParams{TimerActive: &flipped})
	if err != nil {
		return nil, fmt.Errorf("sprinkler.ToggleTimer: %w", err)
	}

	s.log.InfoContext(ctx, "sprinkler schedule toggled",
		slog.String("sprinkler_id", id.String()),
		slog.String("name", updated.Name),
		slog.Bool("timer_active", updated.Timer.Active),
	)

	return updated, nil
}
