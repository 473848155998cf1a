// Package history exposes the append-only audit log for display.
package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// historyRepo defines the history persistence operations needed by the service.
type historyRepo interface {
	List(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
}

// Service provides read access to the history log.
type Service struct {
	history      historyRepo
	defaultLimit int
	maxLimit     int
	log          *slog.Logger
}

// NewService creates a new history service. defaultLimit is used when the
// caller asks for zero or fewer records, maxLimit caps any request.
func NewService(
	log *slog.Logger,
	history historyRepo,
	defaultLimit, maxLimit int,
) *Service {
	return &Service{
		history:      history,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		log:          log.With("service", "history"),
	}
}

// List returns the most recent history records, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	out, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}
	return out, nil
}
