package model

import (
	"fmt"
	"time"
)

// VirtualTime is a point on the simulated timeline, in nanoseconds since the simulation began.
type VirtualTime int64

const TimeNever VirtualTime = -1
const TimeZero VirtualTime = 0

func (t VirtualTime) String() string {
	if !t.TimeExists() {
		return "[never]"
	}
	ns := int64(t)
	return fmt.Sprintf("[%ds+%09dns]", ns/int64(time.Second), ns%int64(time.Second))
}

func (t VirtualTime) TimeExists() bool {
	return t >= 0
}

func (t VirtualTime) mustExist(t2 VirtualTime) {
	if !t.TimeExists() || !t2.TimeExists() {
		panic("times don't exist")
	}
}

func (t VirtualTime) AtOrAfter(t2 VirtualTime) bool {
	t.mustExist(t2)
	return t >= t2
}

func (t VirtualTime) After(t2 VirtualTime) bool {
	t.mustExist(t2)
	return t > t2
}

func (t VirtualTime) AtOrBefore(t2 VirtualTime) bool {
	t.mustExist(t2)
	return t <= t2
}

func (t VirtualTime) Before(t2 VirtualTime) bool {
	t.mustExist(t2)
	return t < t2
}

func (t VirtualTime) Add(duration time.Duration) VirtualTime {
	if !t.TimeExists() {
		return t
	}
	t2 := t + VirtualTime(duration.Nanoseconds())
	if (duration > 0 && t2 < t) || (duration < 0 && t2 > t) {
		panic("times wrapped around")
	}
	return t2
}

func (t VirtualTime) Since(base VirtualTime) time.Duration {
	t.mustExist(base)
	if base > t {
		panic("cannot compute negative duration in since; expectation is that base is AT or BEFORE t")
	}
	return time.Duration(t - base)
}

// AfterTicks returns the time at which the n-th tick of a fixed cadence starting at t fires.
func (t VirtualTime) AfterTicks(n int, interval time.Duration) VirtualTime {
	if n < 0 || interval <= 0 {
		panic("invalid tick count or interval")
	}
	return t.Add(time.Duration(n) * interval)
}

// FromElapsed maps a wall-clock duration measured from start onto virtual time. Negative durations map to start.
func FromElapsed(start VirtualTime, elapsed time.Duration) VirtualTime {
	if elapsed < 0 {
		return start
	}
	return start.Add(elapsed)
}
