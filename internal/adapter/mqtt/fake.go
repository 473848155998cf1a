package mqtt

import (
	"context"
	"sync"

	"github.com/greenhose/sprinklerd/internal/domain"
)

// FakePublisher records published events for test assertions.
type FakePublisher struct {
	mu sync.Mutex

	// Events contains all state-change events that were published.
	Events []domain.StateChangeEvent

	// PublishError, if set, is returned by PublishStateChange.
	PublishError error

	// Closed tracks whether Close was called.
	Closed bool
}

// NewFakePublisher creates a FakePublisher for testing.
func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (f *FakePublisher) PublishStateChange(_ context.Context, evt domain.StateChangeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PublishError != nil {
		return f.PublishError
	}
	f.Events = append(f.Events, evt)
	return nil
}

func (f *FakePublisher) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
}

// PublishedEvents returns a copy of the recorded events.
func (f *FakePublisher) PublishedEvents() []domain.StateChangeEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.StateChangeEvent, len(f.Events))
	copy(out, f.Events)
	return out
}
