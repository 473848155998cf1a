package view

import (
	"fmt"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// RemainingTime renders how much run time is left for a sprinkler, given the
// configured duration and the elapsed seconds. Over a minute left it floors
// to whole minutes; at a minute or less it reports the remainder in seconds.
// The value is not clamped: a timer that overran its duration produces a
// negative seconds string.
func RemainingTime(durationSec, currentTimerSec int) string {
	remaining := durationSec - currentTimerSec
	if remaining > 60 {
		return fmt.Sprintf("%d minutes", remaining/60)
	}
	return fmt.Sprintf("%d seconds", remaining)
}

// IsActiveOrPaused reports whether the sprinkler is running or paused, which
// is when the remaining-time display is shown.
func IsActiveOrPaused(status domain.SprinklerStatus) bool {
	return status == domain.StatusActive || status == domain.StatusPaused
}

// TimerIcon returns the icon template name for the sprinkler's timer state.
func TimerIcon(active bool) string {
	if active {
		return "iconTimerOn"
	}
	return "iconTimerOff"
}

// TimerActive reports whether the sprinkler's schedule timer is enabled.
func TimerActive(t domain.Timer) bool {
	return t.Active
}
