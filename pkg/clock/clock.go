package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// System returns wall clock time in UTC.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

// Manual is a clock which moves only when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Set(now time.Time) {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
}

func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}
