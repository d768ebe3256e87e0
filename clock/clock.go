package clock

import "time"

// Clock supplies the current time. Services read "today" from it so tests can pin dates.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// MockClock stands still until moved with Set or Advance
type MockClock struct {
	now time.Time
}

func NewMockClock(now time.Time) *MockClock {
	return &MockClock{now: now}
}

func (m *MockClock) Now() time.Time {
	return m.now
}

func (m *MockClock) Set(now time.Time) {
	m.now = now
}

func (m *MockClock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
