package domain

import (
	"time"

	"github.com/google/uuid"
)

// StateChangeEvent is emitted when a sprinkler's status changes. Consumers
// (valve controllers, dashboards) subscribe to these over the message broker.
type StateChangeEvent struct {
	SprinklerID uuid.UUID       `json:"sprinkler_id"`
	Name        string          `json:"name"`
	OldStatus   SprinklerStatus `json:"old_status"`
	NewStatus   SprinklerStatus `json:"new_status"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
