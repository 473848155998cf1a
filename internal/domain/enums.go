package domain

// SprinklerStatus represents the lifecycle state of a sprinkler zone.
type SprinklerStatus string

const (
	StatusInactive SprinklerStatus = "inactive"
	StatusActive   SprinklerStatus = "active"
	StatusPaused   SprinklerStatus = "paused"
)

func (s SprinklerStatus) String() string { return string(s) }

func (s SprinklerStatus) IsValid() bool {
	switch s {
	case StatusInactive, StatusActive, StatusPaused:
		return true
	}
	return false
}

// CanTransition reports whether a direct status change from s to target is a
// legal lifecycle transition. Active is reachable from every state because
// starting a sprinkler may force it on regardless of where it was; paused is
// only reachable from active; inactive from active or paused.
func (s SprinklerStatus) CanTransition(target SprinklerStatus) bool {
	switch target {
	case StatusActive:
		return true
	case StatusPaused:
		return s == StatusActive
	case StatusInactive:
		return s == StatusActive || s == StatusPaused
	}
	return false
}

// HistoryAction represents the kind of event recorded in the history log.
type HistoryAction string

const (
	ActionStart    HistoryAction = "start"
	ActionStop     HistoryAction = "stop"
	ActionPause    HistoryAction = "pause"
	ActionResume   HistoryAction = "resume"
	ActionTimerOn  HistoryAction = "timerOn"
	ActionTimerOff HistoryAction = "timerOff"
	ActionReset    HistoryAction = "reset"
)

func (a HistoryAction) String() string { return string(a) }

func (a HistoryAction) IsValid() bool {
	switch a {
	case ActionStart, ActionStop, ActionPause, ActionResume,
		ActionTimerOn, ActionTimerOff, ActionReset:
		return true
	}
	return false
}
