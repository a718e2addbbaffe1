package dev

import (
	"time"
)

// Clock is a monotonic time source used only for relative comparisons.
type Clock interface {
	Now() time.Duration
	Sleep(d time.Duration)
}

// SystemClock measures time since its creation with the runtime monotonic clock.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

func (c *SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Since returns the time elapsed on c since t.
func Since(c Clock, t time.Duration) time.Duration {
	return c.Now() - t
}
