package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is an append-only audit entry for a sprinkler lifecycle
// transition or timer toggle. SprinklerName is a denormalized copy of the
// originating sprinkler's name at event time, not a foreign key: the record
// survives a later rename or deletion of the sprinkler. Records are created
// exactly once and never updated or deleted.
type HistoryRecord struct {
	ID            uuid.UUID     `json:"id"`
	SprinklerName string        `json:"sprinklerName"`
	Action        HistoryAction `json:"action"`
	CreatedAt     time.Time     `json:"timeStamp"`
}
