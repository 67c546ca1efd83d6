package animate

import (
	"time"

	"github.com/abhisek/streaks/internal/streak"
)

// Timing configures a staggered fade-in cycle.
type Timing struct {
	// Stagger is the start offset between consecutive indices.
	Stagger time.Duration
	// Duration is how long each index takes to fade in and grow its line.
	Duration time.Duration
	// Cooldown is the pause after the last index settles before the cycle restarts.
	Cooldown time.Duration
	// BoundaryDelay is added once for every index that closes a week,
	// pushing that index and every later one back.
	BoundaryDelay time.Duration
	// FrameInterval is the time between frame ticks.
	FrameInterval time.Duration
}

// DefaultTiming returns the stock cycle: 200ms stagger, 300ms fade,
// 2s cooldown, 50ms frames.
func DefaultTiming() Timing {
	return Timing{
		Stagger:       200 * time.Millisecond,
		Duration:      300 * time.Millisecond,
		Cooldown:      2 * time.Second,
		FrameInterval: 50 * time.Millisecond,
	}
}

// Delay returns when index starts relative to the beginning of a cycle.
// Delays never decrease with the index.
func (t Timing) Delay(index int) time.Duration {
	if index <= 0 {
		return 0
	}
	boundaries := (index + 1) / streak.WeekLength
	return time.Duration(index)*t.Stagger + time.Duration(boundaries)*t.BoundaryDelay
}

// CycleLength returns how long staggering n indices takes, cooldown excluded.
func (t Timing) CycleLength(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return t.Delay(n-1) + t.Duration
}
