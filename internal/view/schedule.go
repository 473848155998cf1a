package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// NotScheduled is the schedule sentence for a sprinkler whose timer is off.
const NotScheduled = "This sprinkler is not scheduled to run automatically"

// dayPhrases holds the special-cased human phrases for the day interval.
// This is a literal enumeration, not a pluralization rule: 3, 5, 7 and the
// rest fall through to "N days".
var dayPhrases = map[int]string{
	1:  "day",
	2:  "couple of days",
	4:  "few days",
	14: "couple of weeks",
}

// TimerSchedule renders a human readable sentence describing the sprinkler's
// automatic schedule, e.g. "Scheduled to turn on every couple of days at
// 2:30 PM for 5 minutes".
func TimerSchedule(t domain.Timer) string {
	if !t.Active {
		return NotScheduled
	}

	duration := displayDuration(t.Duration)
	unit := "minute"
	if duration > 1 {
		unit = "minutes"
	}

	return strings.Join([]string{
		"Scheduled to turn on every",
		dayText(t.Days),
		"at",
		clockTime(t.Time),
		"for",
		fmt.Sprintf("%d", duration),
		unit,
	}, " ")
}

// displayDuration converts the run length from seconds to whole minutes.
// Nonsensical input falls back to 0 rather than failing the render.
func displayDuration(seconds int) int {
	if seconds < 0 {
		return 0
	}
	return int(math.Round(float64(seconds) / 60))
}

// dayText summarises how many days pass between automatic runs.
func dayText(days int) string {
	if phrase, ok := dayPhrases[days]; ok {
		return phrase
	}
	return fmt.Sprintf("%d days", days)
}

// clockTime formats an "HH:MM" start time as a short locale time ("2:30 PM").
// An unparseable value renders as-is.
func clockTime(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}
