package sprinkler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// Reset clears the sprinkler's run timer without changing its status.
// Allowed in any state.
func (s *Service) Reset(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error) {
	cur, err := s.sprinklers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Reset: %w", err)
	}

	zero := 0
	updated, err := s.sprinklers.Update(ctx, id, domain.SprinklerUpdateParams{CurrentTimer: &zero})
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Reset: %w", err)
	}

	// Status is unchanged, so record appends the audit entry but emits no
	// state-change event.
	s.record(ctx, cur.Status, updated, domain.ActionReset)

	s.log.InfoContext(ctx, "sprinkler timer reset",
		slog.String("sprinkler_id", id.String()),
		slog.String("name", updated.Name),
	)

	return updated, nil
}
