package engine

import (
	"sync"
	"time"
)

// Scheduler runs local self-destruct timers, one per message ID,
// independent of relay state. It lets the UI drop a self-destructing
// message on time even when the relay copy is already gone.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[string]*time.Timer)}
}

// Schedule fires onExpire once after delay. Scheduling an ID that already
// has a timer replaces it; only the latest deadline applies.
func (s *Scheduler) Schedule(messageID string, delay time.Duration, onExpire func(messageID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[messageID]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		// A replacement may have raced the firing; only the current
		// timer for the ID gets to run the callback.
		current := s.timers[messageID] == timer
		if current {
			delete(s.timers, messageID)
		}
		s.mu.Unlock()
		if current {
			onExpire(messageID)
		}
	})
	s.timers[messageID] = timer
}

// Cancel stops the timer for messageID. No-op when none is scheduled.
func (s *Scheduler) Cancel(messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[messageID]; ok {
		t.Stop()
		delete(s.timers, messageID)
	}
}

// Shutdown cancels every pending timer. Call it on session teardown so no
// callback fires against torn-down state.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending reports how many timers are outstanding.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
