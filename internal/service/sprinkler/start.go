package sprinkler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// Start activates the sprinkler. If a different sprinkler is currently active
// it is forced to inactive with its run timer cleared, inside the same
// transaction and with the active row locked, so two concurrent starts cannot
// both observe the same active sprinkler.
//
// The forced deactivation is deliberately not audited: the only history record
// written is action=start for the target.
func (s *Service) Start(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error) {
	var (
		updated *domain.Sprinkler
		demoted *domain.Sprinkler
		prev    domain.SprinklerStatus
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		active, err := s.sprinklers.GetActiveForUpdate(txCtx)
		switch {
		case err == nil && active.ID != id:
			inactive := domain.StatusInactive
			zero := 0
			demoted, err = s.sprinklers.Update(txCtx, active.ID, domain.SprinklerUpdateParams{
				Status:       &inactive,
				CurrentTimer: &zero,
			})
			if err != nil {
				return fmt.Errorf("deactivate %s: %w", active.ID, err)
			}
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("find active sprinkler: %w", err)
		}

		target, err := s.sprinklers.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get sprinkler: %w", err)
		}
		prev = target.Status

		status := domain.StatusActive
		updated, err = s.sprinklers.Update(txCtx, id, domain.SprinklerUpdateParams{Status: &status})
		if err != nil {
			return fmt.Errorf("activate sprinkler: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Start: %w", err)
	}

	if demoted != nil {
		s.publish(ctx, domain.StatusActive, demoted)
	}
	s.record(ctx, prev, updated, domain.ActionStart)

	s.log.InfoContext(ctx, "sprinkler started",
		slog.String("sprinkler_id", id.String()),
		slog.String("name", updated.Name),
	)

	return updated, nil
}
