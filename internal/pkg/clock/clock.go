package clock

import "time"

type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
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

func (c *MockClock) Since(t time.Time) time.Duration {
	return c.currentTime.Sub(t)
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// DisplayFormatter renders instants the way operators read them in notifications.
type DisplayFormatter struct {
	location *time.Location
	layout   string
}

func NewDisplayFormatter(zoneName string, offsetSeconds int, layout string) *DisplayFormatter {
	return &DisplayFormatter{
		location: time.FixedZone(zoneName, offsetSeconds),
		layout:   layout,
	}
}

func (f *DisplayFormatter) Format(t time.Time) string {
	return t.In(f.location).Format(f.layout)
}
