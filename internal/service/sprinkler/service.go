// Package sprinkler implements the sprinkler lifecycle controller: start,
// stop, pause, resume, reset and schedule toggling, plus the single-active
// invariant (at most one sprinkler is active across the whole collection).
package sprinkler

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// sprinklerRepo defines the sprinkler persistence operations needed by the service.
type sprinklerRepo interface {
	Create(ctx context.Context, s *domain.Sprinkler) (*domain.Sprinkler, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error)
	List(ctx context.Context) ([]domain.Sprinkler, error)
	GetActive(ctx context.Context) (*domain.Sprinkler, error)
	GetActiveForUpdate(ctx context.Context) (*domain.Sprinkler, error)
	Update(ctx context.Context, id uuid.UUID, params domain.SprinklerUpdateParams) (*domain.Sprinkler, error)
}

// historyLogger appends audit records to the history log.
type historyLogger interface {
	Log(ctx context.Context, sprinklerName string, action domain.HistoryAction) error
}

// StatePublisher broadcasts status changes to interested hardware and UIs.
// A nil StatePublisher disables publishing.
type StatePublisher interface {
	PublishStateChange(ctx context.Context, evt domain.StateChangeEvent) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides sprinkler lifecycle operations.
type Service struct {
	sprinklers sprinklerRepo
	history    historyLogger
	pub        StatePublisher // nil when event publishing is disabled
	tx         txManager
	clock      clockwork.Clock
	log        *slog.Logger
}

// NewService creates a new sprinkler lifecycle service.
func NewService(
	log *slog.Logger,
	sprinklers sprinklerRepo,
	history historyLogger,
	pub StatePublisher,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		sprinklers: sprinklers,
		history:    history,
		pub:        pub,
		tx:         tx,
		clock:      clock,
		log:        log.With("service", "sprinkler"),
	}
}

// record appends the audit record and publishes the status change after the
// store write has committed. Both are fire-and-forget: a failure is logged at
// warn and never surfaced to the caller, never rolled back, never retried.
func (s *Service) record(ctx context.Context, prev domain.SprinklerStatus, cur *domain.Sprinkler, action domain.HistoryAction) {
	if err := s.history.Log(ctx, cur.Name, action); err != nil {
		s.log.WarnContext(ctx, "history append failed",
			slog.String("sprinkler_id", cur.ID.String()),
			slog.String("action", action.String()),
			slog.Any("error", err),
		)
	}

	s.publish(ctx, prev, cur)
}

// publish emits a state-change event when the status actually changed.
func (s *Service) publish(ctx context.Context, prev domain.SprinklerStatus, cur *domain.Sprinkler) {
	if s.pub == nil || prev == cur.Status {
		return
	}

	evt := domain.StateChangeEvent{
		SprinklerID: cur.ID,
		Name:        cur.Name,
		OldStatus:   prev,
		NewStatus:   cur.Status,
		OccurredAt:  s.clock.Now().UTC(),
	}
	if err := s.pub.PublishStateChange(ctx, evt); err != nil {
		s.log.WarnContext(ctx, "state change publish failed",
			slog.String("sprinkler_id", cur.ID.String()),
			slog.Any("error", err),
		)
	}
}
