package view

import (
	"html/template"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// FuncMap exposes the formatters to html/template so dashboard templates can
// call them directly on the record being rendered.
func FuncMap(clock clockwork.Clock) template.FuncMap {
	f := NewFormatter(clock)
	return template.FuncMap{
		"statusDetails": StatusDetails,
		"timeAgo": func(t time.Time) string {
			return f.TimeAgo(t)
		},
		"remainingTime": func(s domain.Sprinkler) string {
			return RemainingTime(s.Timer.Duration, s.CurrentTimer)
		},
		"isActiveOrPaused": func(s domain.Sprinkler) bool {
			return IsActiveOrPaused(s.Status)
		},
		"timerIcon": func(s domain.Sprinkler) string {
			return TimerIcon(s.Timer.Active)
		},
		"timerActive":   TimerActive,
		"timerSchedule": TimerSchedule,
	}
}
