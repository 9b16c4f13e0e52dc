package clock

import "time"

// Clock abstracts wall time so booking and refund math can be tested
// against a fixed instant. Booking boundaries are millisecond epochs,
// hence the NowMs convenience.
type Clock interface {
	Now() time.Time
	NowMs() int64
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) NowMs() int64 {
	return time.Now().UnixMilli()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) NowMs() int64 {
	return c.currentTime.UnixMilli()
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) SetMs(ms int64) {
	c.currentTime = time.UnixMilli(ms)
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
