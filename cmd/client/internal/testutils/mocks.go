package testutils

import "time"

// MockClock fires pacing waits instantly
type MockClock struct {
	Ticks int
}

func (m *MockClock) After(d time.Duration) <-chan time.Time {
	m.Ticks++
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}
