// Package sim provides host-side stand-ins for the device peripherals: a virtual
// clock, scripted input lines, latched outputs and a pixel framebuffer.
package sim

import (
	"fmt"
	"time"
)

// Clock is a virtual clock. Time only moves when Sleep is called, so a blocking
// control loop runs as fast as the host allows while observing exact durations.
type Clock struct {
	now   time.Duration
	limit time.Duration
	pace  float64
}

func NewClock() *Clock {
	return &Clock{}
}

// SetLimit makes Sleep panic once the clock would pass d. Zero disables the limit.
func (c *Clock) SetLimit(d time.Duration) {
	c.limit = d
}

// SetPace makes Sleep also block the host for d*pace. Zero disables pacing.
func (c *Clock) SetPace(pace float64) {
	c.pace = pace
}

func (c *Clock) Now() time.Duration {
	return c.now
}

func (c *Clock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	c.now += d
	if c.limit > 0 && c.now > c.limit {
		panic(fmt.Sprintf("sim: clock passed limit %v", c.limit))
	}
	if c.pace > 0 {
		time.Sleep(time.Duration(float64(d) * c.pace))
	}
}
