//go:build rp2040

package main

import (
	"runtime/volatile"
	"time"
	"unsafe"
)

const (
	TIMER_BASE     = 0x40054000        // Base address of the RP2040 timer
	TIMER_TIMERAWL = TIMER_BASE + 0x28 // Low 32 bits of the raw microsecond counter
	TIMER_TIMERAWH = TIMER_BASE + 0x24 // High 32 bits of the raw microsecond counter
)

// rawClock reads the free-running 1 MHz RP2040 timer.
type rawClock struct{}

// readRawTimer returns the microsecond counter. The high word is re-read to
// catch a carry out of the low word between the two reads.
func readRawTimer() uint64 {
	low := (*volatile.Register32)(unsafe.Pointer(uintptr(TIMER_TIMERAWL)))
	high := (*volatile.Register32)(unsafe.Pointer(uintptr(TIMER_TIMERAWH)))
	for {
		h := high.Get()
		l := low.Get()
		if high.Get() == h {
			return uint64(h)<<32 | uint64(l)
		}
	}
}

func (rawClock) Now() time.Duration {
	return time.Duration(readRawTimer()) * time.Microsecond
}

// Sleep busy-waits short delays and leaves longer ones to the scheduler.
func (c rawClock) Sleep(d time.Duration) {
	if d >= time.Millisecond {
		time.Sleep(d)
		return
	}
	start := c.Now()
	for c.Now()-start < d {
	}
}
