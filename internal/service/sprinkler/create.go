package sprinkler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// Schedule defaults applied when a new sprinkler is created without a timer
// configuration: a ten-minute run every day at six in the morning.
const (
	defaultTimerDuration = 600
	defaultTimerDays     = 1
	defaultTimerTime     = "06:00"
)

// Create registers a new sprinkler. It always starts inactive with a cleared
// run timer; omitted timer fields fall back to the schedule defaults.
func (s *Service) Create(ctx context.Context, name string, timer domain.Timer) (*domain.Sprinkler, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("sprinkler.Create: %w", domain.NewValidationError("name", "is required"))
	}

	if timer.Duration <= 0 {
		timer.Duration = defaultTimerDuration
	}
	if timer.Days <= 0 {
		timer.Days = defaultTimerDays
	}
	if timer.Time == "" {
		timer.Time = defaultTimerTime
	}

	created, err := s.sprinklers.Create(ctx, &domain.Sprinkler{
		Name:   name,
		Status: domain.StatusInactive,
		Timer:  timer,
	})
	if err != nil {
		return nil, fmt.Errorf("sprinkler.Create: %w", err)
	}

	s.log.InfoContext(ctx, "sprinkler created",
		slog.String("sprinkler_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}
