package view

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"
)

// Formatter renders time-dependent display strings. The clock is injected so
// relative phrases can be tested against a frozen instant.
type Formatter struct {
	clock clockwork.Clock
}

// NewFormatter creates a Formatter using the given clock. Pass
// clockwork.NewRealClock() in production.
func NewFormatter(clock clockwork.Clock) *Formatter {
	return &Formatter{clock: clock}
}

// TimeAgo renders how long ago an event happened, relative to the clock's
// current time: "5 minutes ago", "2 days ago".
func (f *Formatter) TimeAgo(t time.Time) string {
	return humanize.RelTime(t, f.clock.Now(), "ago", "from now")
}
