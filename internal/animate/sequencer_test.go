package animate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTiming() Timing {
	return Timing{
		Stagger:       200 * time.Millisecond,
		Duration:      300 * time.Millisecond,
		Cooldown:      2 * time.Second,
		FrameInterval: 50 * time.Millisecond,
	}
}

func TestSequencerStartStop(t *testing.T) {
	s := NewSequencer(testTiming())
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.False(t, s.Running())

	id := s.Start(3)
	require.NotEmpty(t, id)
	assert.Equal(t, id, s.RunID())
	assert.Equal(t, PhaseStaggering, s.Phase())
	assert.Equal(t, 3, s.Len())

	s.Stop()
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Empty(t, s.RunID())

	// Idempotent.
	s.Stop()
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestSequencerStartEmptyStaysIdle(t *testing.T) {
	s := NewSequencer(testTiming())
	assert.Empty(t, s.Start(0))
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Equal(t, 0, s.Len())
}

func TestSequencerRestartReplacesRun(t *testing.T) {
	s := NewSequencer(testTiming())
	first := s.Start(3)
	s.Advance(250 * time.Millisecond)

	second := s.Start(5)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 5, s.Len())
	for i := 0; i < 5; i++ {
		assert.Zero(t, s.Progress(i).Opacity, "index %d should restart from zero", i)
	}
}

func TestSequencerStaggerOrder(t *testing.T) {
	s := NewSequencer(testTiming())
	s.Start(3)
	s.Advance(250 * time.Millisecond)

	p0, p1, p2 := s.Progress(0), s.Progress(1), s.Progress(2)
	assert.Greater(t, p0.Opacity, p1.Opacity)
	assert.Greater(t, p1.Opacity, 0.0)
	assert.Zero(t, p2.Opacity)
	assert.Equal(t, p0.Opacity, p0.LineWidth)
	assert.Equal(t, 1.0, p0.Scale)
}

func TestSequencerCycle(t *testing.T) {
	s := NewSequencer(testTiming())
	s.Start(3)

	// Three indices: last starts at 400ms and runs 300ms.
	s.Advance(650 * time.Millisecond)
	assert.Equal(t, PhaseStaggering, s.Phase())

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, PhaseSettled, s.Phase())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, s.Progress(i).Opacity)
		assert.Equal(t, 1.0, s.Progress(i).LineWidth)
	}

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, PhaseCoolingDown, s.Phase())

	s.Advance(1900 * time.Millisecond)
	assert.Equal(t, PhaseCoolingDown, s.Phase())

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, PhaseStaggering, s.Phase())
	assert.Equal(t, 1, s.Cycles())
	assert.Zero(t, s.Progress(0).Opacity)
}

func TestSequencerFrameByFrame(t *testing.T) {
	timing := testTiming()
	s := NewSequencer(timing)
	s.Start(9)

	var elapsed time.Duration
	for s.Phase() == PhaseStaggering {
		s.Advance(timing.FrameInterval)
		elapsed += timing.FrameInterval
		require.LessOrEqual(t, elapsed, 10*time.Second, "never settled")
	}
	assert.Equal(t, PhaseSettled, s.Phase())
	assert.Equal(t, timing.CycleLength(9), elapsed)
}

func TestSequencerStopFreezesProgress(t *testing.T) {
	s := NewSequencer(testTiming())
	s.Start(2)
	s.Advance(250 * time.Millisecond)
	before := s.Progress(0)

	s.Stop()
	s.Advance(time.Second)
	assert.Equal(t, before, s.Progress(0))
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestSequencerProgressOutOfRange(t *testing.T) {
	s := NewSequencer(testTiming())
	s.Start(1)
	assert.Equal(t, Progress{Opacity: 1, Scale: 1}, s.Progress(5))
	assert.Equal(t, Progress{Opacity: 1, Scale: 1}, s.Progress(-1))
}

func TestTimingDelay(t *testing.T) {
	timing := testTiming()
	timing.BoundaryDelay = 100 * time.Millisecond

	assert.Equal(t, time.Duration(0), timing.Delay(0))
	assert.Equal(t, 1000*time.Millisecond, timing.Delay(5))
	assert.Equal(t, 1300*time.Millisecond, timing.Delay(6), "index 6 closes the first week")
	assert.Equal(t, 2800*time.Millisecond, timing.Delay(13))

	for i := 1; i < 30; i++ {
		assert.Greater(t, timing.Delay(i), timing.Delay(i-1), "delay must increase at %d", i)
	}
}

func TestTimingCycleLength(t *testing.T) {
	timing := testTiming()
	assert.Equal(t, time.Duration(0), timing.CycleLength(0))
	assert.Equal(t, 300*time.Millisecond, timing.CycleLength(1))
	assert.Equal(t, 700*time.Millisecond, timing.CycleLength(3))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "cooling-down", PhaseCoolingDown.String())
}
