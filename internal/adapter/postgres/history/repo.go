// Package history implements the history log repository using PostgreSQL.
// The log is append-only: records are inserted once and never updated or
// deleted.
package history

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/greenhose/sprinklerd/internal/adapter/postgres"
	"github.com/greenhose/sprinklerd/internal/domain"
)

const table = "history"

var columns = []string{"id", "sprinkler_name", "action", "created_at"}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides history log persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new history repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a new history record and returns the persisted record.
// The timestamp is assigned by the database.
func (r *Repo) Create(ctx context.Context, rec domain.HistoryRecord) (domain.HistoryRecord, error) {
	if !rec.Action.IsValid() {
		return domain.HistoryRecord{}, domain.NewValidationError("action", fmt.Sprintf("unknown action %q", rec.Action))
	}

	sql, args, err := qb.Insert(table).
		Columns("sprinkler_name", "action").
		Values(rec.SprinklerName, rec.Action).
		Suffix("RETURNING id, sprinkler_name, action, created_at").
		ToSql()
	if err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("build insert: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.q).QueryRow(ctx, sql, args...)
	created, err := scanRecord(row)
	if err != nil {
		return domain.HistoryRecord{}, postgres.MapError(err, "history_record", uuid.Nil)
	}
	return created, nil
}

// Log appends a record without returning it (fire-and-forget).
// Satisfies the lifecycle controller's historyLogger interface.
func (r *Repo) Log(ctx context.Context, sprinklerName string, action domain.HistoryAction) error {
	_, err := r.Create(ctx, domain.HistoryRecord{
		SprinklerName: sprinklerName,
		Action:        action,
	})
	return err
}

// List returns the most recent records, ordered by created_at DESC.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	sql, args, err := qb.Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.q).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var out []domain.HistoryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return out, nil
}

func scanRecord(row pgx.Row) (domain.HistoryRecord, error) {
	var rec domain.HistoryRecord
	if err := row.Scan(&rec.ID, &rec.SprinklerName, &rec.Action, &rec.CreatedAt); err != nil {
		return domain.HistoryRecord{}, err
	}
	return rec, nil
}
