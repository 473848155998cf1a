package sprinkler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/greenhose/sprinklerd/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(func() { mock.Close() })
	return mock
}

func sprinklerRows(s domain.Sprinkler) *pgxmock.Rows {
	return pgxmock.NewRows(columns).AddRow(
		s.ID, s.Name, s.Status, s.CurrentTimer,
		s.Timer.Active, s.Timer.Duration, s.Timer.Days, s.Timer.Time,
		s.CreatedAt, s.UpdatedAt,
	)
}

func sampleSprinkler() domain.Sprinkler {
	now := time.Now()
	return domain.Sprinkler{
		ID:           uuid.New(),
		Name:         "Front Lawn",
		Status:       domain.StatusInactive,
		CurrentTimer: 0,
		Timer:        domain.Timer{Active: true, Duration: 600, Days: 2, Time: "06:00"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRepo_Create(t *testing.T) {
	t.Parallel()

	want := sampleSprinkler()

	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO sprinklers \(name,status,timer_active,timer_duration,timer_days,timer_time\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) RETURNING`).
		WithArgs(want.Name, domain.StatusInactive, want.Timer.Active, want.Timer.Duration, want.Timer.Days, want.Timer.Time).
		WillReturnRows(sprinklerRows(want))

	repo := New(mock)
	got, err := repo.Create(context.Background(), &domain.Sprinkler{
		Name:  want.Name,
		Timer: want.Timer,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name || got.Timer != want.Timer {
		t.Errorf("Create = %+v, want %+v", got, want)
	}
	// New sprinklers always start inactive, whatever the caller passed.
	if got.Status != domain.StatusInactive {
		t.Errorf("status = %s, want inactive", got.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()

	want := sampleSprinkler()
	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM sprinklers WHERE id =`).
		WithArgs(want.ID).
		WillReturnRows(sprinklerRows(want))

	repo := New(mock)
	got, err := repo.GetByID(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name || got.Timer != want.Timer {
		t.Errorf("GetByID = %+v, want %+v", got, want)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM sprinklers WHERE id =`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	repo := New(mock)
	_, err := repo.GetByID(context.Background(), id)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID error = %v, want ErrNotFound", err)
	}
}

func TestRepo_GetActive_None(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM sprinklers WHERE status =`).
		WithArgs(domain.StatusActive).
		WillReturnError(pgx.ErrNoRows)

	repo := New(mock)
	_, err := repo.GetActive(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetActive error = %v, want ErrNotFound", err)
	}
}

func TestRepo_GetActive_NoLock(t *testing.T) {
	t.Parallel()

	want := sampleSprinkler()
	want.Status = domain.StatusActive

	mock := newMock(t)
	// The plain read must not carry the FOR UPDATE suffix.
	mock.ExpectQuery(`SELECT .+ FROM sprinklers WHERE status = \$1$`).
		WithArgs(domain.StatusActive).
		WillReturnRows(sprinklerRows(want))

	repo := New(mock)
	got, err := repo.GetActive(context.Background())
	if err != nil {
		t.Fatalf("GetActive: %v", err)
	}
	if got.Status != domain.StatusActive {
		t.Errorf("status = %s, want active", got.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_GetActiveForUpdate_LocksRow(t *testing.T) {
	t.Parallel()

	want := sampleSprinkler()
	want.Status = domain.StatusActive

	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM sprinklers WHERE status = .+ FOR UPDATE`).
		WithArgs(domain.StatusActive).
		WillReturnRows(sprinklerRows(want))

	repo := New(mock)
	got, err := repo.GetActiveForUpdate(context.Background())
	if err != nil {
		t.Fatalf("GetActiveForUpdate: %v", err)
	}
	if got.Status != domain.StatusActive {
		t.Errorf("status = %s, want active", got.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_Update_PartialFields(t *testing.T) {
	t.Parallel()

	want := sampleSprinkler()
	want.Status = domain.StatusActive

	status := domain.StatusActive
	mock := newMock(t)
	// Only updated_at and status may be written; currentTimer and the timer
	// sub-record stay untouched.
	mock.ExpectQuery(`UPDATE sprinklers SET updated_at = now\(\), status = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(status, want.ID).
		WillReturnRows(sprinklerRows(want))

	repo := New(mock)
	got, err := repo.Update(context.Background(), want.ID, domain.SprinklerUpdateParams{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Status != domain.StatusActive {
		t.Errorf("status = %s, want active", got.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_Update_StopFields(t *testing.T) {
	t.Parallel()

	want := sampleSprinkler()
	status := domain.StatusInactive
	zero := 0

	mock := newMock(t)
	mock.ExpectQuery(`UPDATE sprinklers SET updated_at = now\(\), status = \$1, current_timer = \$2 WHERE id = \$3`).
		WithArgs(status, zero, want.ID).
		WillReturnRows(sprinklerRows(want))

	repo := New(mock)
	if _, err := repo.Update(context.Background(), want.ID, domain.SprinklerUpdateParams{
		Status:       &status,
		CurrentTimer: &zero,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_Update_NoFields(t *testing.T) {
	t.Parallel()

	want := sampleSprinkler()
	mock := newMock(t)
	// An empty update degrades to a plain read.
	mock.ExpectQuery(`SELECT .+ FROM sprinklers WHERE id =`).
		WithArgs(want.ID).
		WillReturnRows(sprinklerRows(want))

	repo := New(mock)
	if _, err := repo.Update(context.Background(), want.ID, domain.SprinklerUpdateParams{}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_List(t *testing.T) {
	t.Parallel()

	a := sampleSprinkler()
	b := sampleSprinkler()
	b.Name = "Back Garden"

	rows := pgxmock.NewRows(columns)
	for _, s := range []domain.Sprinkler{b, a} {
		rows.AddRow(
			s.ID, s.Name, s.Status, s.CurrentTimer,
			s.Timer.Active, s.Timer.Duration, s.Timer.Days, s.Timer.Time,
			s.CreatedAt, s.UpdatedAt,
		)
	}

	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM sprinklers ORDER BY name ASC`).
		WillReturnRows(rows)

	repo := New(mock)
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d sprinklers, want 2", len(got))
	}
	if got[0].Name != "Back Garden" {
		t.Errorf("first sprinkler = %q, want Back Garden", got[0].Name)
	}
}
