// Package sprinkler implements the Sprinkler repository using PostgreSQL.
// All mutations are partial-field merge updates keyed by id — the repository
// never replaces a whole row and never deletes one.
package sprinkler

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/greenhose/sprinklerd/internal/adapter/postgres"
	"github.com/greenhose/sprinklerd/internal/domain"
)

const table = "sprinklers"

var columns = []string{
	"id", "name", "status", "current_timer",
	"timer_active", "timer_duration", "timer_days", "timer_time",
	"created_at", "updated_at",
}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides sprinkler persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new sprinkler repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a new sprinkler and returns the persisted record.
func (r *Repo) Create(ctx context.Context, s *domain.Sprinkler) (*domain.Sprinkler, error) {
	sql, args, err := qb.Insert(table).
		Columns("name", "status", "timer_active", "timer_duration", "timer_days", "timer_time").
		Values(s.Name, domain.StatusInactive, s.Timer.Active, s.Timer.Duration, s.Timer.Days, s.Timer.Time).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.q).QueryRow(ctx, sql, args...)
	created, err := scanSprinkler(row)
	if err != nil {
		return nil, postgres.MapError(err, "sprinkler", s.ID)
	}
	return created, nil
}

// GetByID returns a sprinkler by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error) {
	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.q).QueryRow(ctx, sql, args...)
	s, err := scanSprinkler(row)
	if err != nil {
		return nil, postgres.MapError(err, "sprinkler", id)
	}
	return s, nil
}

// List returns all sprinklers ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Sprinkler, error) {
	sql, args, err := qb.Select(columns...).
		From(table).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.q).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list sprinklers: %w", err)
	}
	defer rows.Close()

	var out []domain.Sprinkler
	for rows.Next() {
		s, err := scanSprinkler(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sprinkler: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sprinklers: %w", err)
	}

	return out, nil
}

// GetActive returns the currently active sprinkler, or domain.ErrNotFound if
// no sprinkler is active. There is at most one by invariant.
func (r *Repo) GetActive(ctx context.Context) (*domain.Sprinkler, error) {
	return r.getActive(ctx, false)
}

// GetActiveForUpdate is GetActive with the row locked for the duration of the
// surrounding transaction. The lifecycle controller uses it so that two
// concurrent starts cannot both observe the same active sprinkler.
func (r *Repo) GetActiveForUpdate(ctx context.Context) (*domain.Sprinkler, error) {
	return r.getActive(ctx, true)
}

func (r *Repo) getActive(ctx context.Context, forUpdate bool) (*domain.Sprinkler, error) {
	b := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": domain.StatusActive})
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.q).QueryRow(ctx, sql, args...)
	s, err := scanSprinkler(row)
	if err != nil {
		return nil, postgres.MapError(err, "sprinkler", uuid.Nil)
	}
	return s, nil
}

// Update applies a partial-field update and returns the updated record.
// Only non-nil params are written; everything else is left untouched.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.SprinklerUpdateParams) (*domain.Sprinkler, error) {
	if params.IsZero() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update(table).Set("updated_at", squirrel.Expr("now()"))
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Status != nil {
		b = b.Set("status", *params.Status)
	}
	if params.CurrentTimer != nil {
		b = b.Set("current_timer", *params.CurrentTimer)
	}
	if params.TimerActive != nil {
		b = b.Set("timer_active", *params.TimerActive)
	}
	if params.TimerDur != nil {
		b = b.Set("timer_duration", *params.TimerDur)
	}
	if params.TimerDays != nil {
		b = b.Set("timer_days", *params.TimerDays)
	}
	if params.TimerTime != nil {
		b = b.Set("timer_time", *params.TimerTime)
	}

	sql, args, err := b.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.q).QueryRow(ctx, sql, args...)
	s, err := scanSprinkler(row)
	if err != nil {
		return nil, postgres.MapError(err, "sprinkler", id)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanSprinkler(row pgx.Row) (*domain.Sprinkler, error) {
	var s domain.Sprinkler
	err := row.Scan(
		&s.ID, &s.Name, &s.Status, &s.CurrentTimer,
		&s.Timer.Active, &s.Timer.Duration, &s.Timer.Days, &s.Timer.Time,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func columnList() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
