package domain

import (
	"time"

	"github.com/google/uuid"
)

// Timer is the per-sprinkler scheduling configuration. It is distinct from
// CurrentTimer, which tracks elapsed run seconds. Active toggles whether the
// automatic scheduler should fire at all; Duration is the run length in
// seconds; Days is the interval between automatic runs; Time is the clock
// time of day to start, as "HH:MM".
type Timer struct {
	Active   bool   `json:"active"`
	Duration int    `json:"duration"`
	Days     int    `json:"days"`
	Time     string `json:"time"`
}

// Sprinkler represents one irrigation zone.
type Sprinkler struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Status       SprinklerStatus `json:"status"`
	CurrentTimer int             `json:"currentTimer"` // elapsed seconds since activation
	Timer        Timer           `json:"timer"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// SprinklerUpdateParams holds the fields of a partial update. Nil fields are
// left untouched, mirroring a $set-style merge: the store never replaces the
// whole record.
type SprinklerUpdateParams struct {
	Name         *string
	Status       *SprinklerStatus
	CurrentTimer *int
	TimerActive  *bool
	TimerDur     *int
	TimerDays    *int
	TimerTime    *string
}

// IsZero reports whether the update would touch no fields at all.
func (p SprinklerUpdateParams) IsZero() bool {
	return p.Name == nil && p.Status == nil && p.CurrentTimer == nil &&
		p.TimerActive == nil && p.TimerDur == nil && p.TimerDays == nil && p.TimerTime == nil
}
