package animate

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the state of a Sequencer.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStaggering
	PhaseSettled
	PhaseCoolingDown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStaggering:
		return "staggering"
	case PhaseSettled:
		return "settled"
	case PhaseCoolingDown:
		return "cooling-down"
	default:
		return "unknown"
	}
}

// Progress holds the animated signals for one index.
type Progress struct {
	Opacity   float64
	Scale     float64
	LineWidth float64
}

// settledProgress is reported for indices the sequencer does not track.
var settledProgress = Progress{Opacity: 1, Scale: 1, LineWidth: 0}

// Animator is the frame-driven capability screens consume.
type Animator interface {
	// Advance moves the animation forward by one frame of length dt.
	Advance(dt time.Duration)
	// Stop halts the animation. Calling it more than once is a no-op.
	Stop()
	// Running reports whether frames still need to be scheduled.
	Running() bool
	// RunID identifies the current run; empty when stopped.
	RunID() string
}

// Sequencer fades in N indices one after another, waits for a cooldown,
// and starts over until stopped:
//
//	Idle → Staggering → Settled → CoolingDown → Staggering → ...
//
// Stop returns any phase to Idle.
type Sequencer struct {
	timing   Timing
	phase    Phase
	runID    string
	elapsed  time.Duration
	cycles   int
	progress []Progress
}

var _ Animator = (*Sequencer)(nil)

// NewSequencer creates an idle Sequencer.
func NewSequencer(timing Timing) *Sequencer {
	return &Sequencer{timing: timing}
}

// Start begins a new run over n indices and returns its run ID. Any
// previous run is replaced. With n <= 0 the sequencer stays idle.
func (s *Sequencer) Start(n int) string {
	s.Stop()
	if n <= 0 {
		s.progress = nil
		return ""
	}

	s.progress = make([]Progress, n)
	s.reset()
	s.phase = PhaseStaggering
	s.runID = uuid.NewString()
	s.cycles = 0
	return s.runID
}

// Stop freezes all progress values where they are and returns to Idle.
func (s *Sequencer) Stop() {
	s.phase = PhaseIdle
	s.runID = ""
	s.elapsed = 0
}

// Advance implements Animator.
func (s *Sequencer) Advance(dt time.Duration) {
	switch s.phase {
	case PhaseStaggering:
		s.elapsed += dt
		if s.stagger() {
			s.phase = PhaseSettled
			s.elapsed = 0
		}

	case PhaseSettled:
		s.phase = PhaseCoolingDown
		s.elapsed = dt
		s.coolDown()

	case PhaseCoolingDown:
		s.elapsed += dt
		s.coolDown()
	}
}

func (s *Sequencer) coolDown() {
	if s.elapsed < s.timing.Cooldown {
		return
	}
	s.reset()
	s.cycles++
	s.phase = PhaseStaggering
	s.elapsed = 0
}

// stagger updates every index for the current elapsed time and reports
// whether all of them have finished.
func (s *Sequencer) stagger() bool {
	done := true
	for i := range s.progress {
		f := fraction(s.elapsed-s.timing.Delay(i), s.timing.Duration)
		eased := easeInOut(f)
		s.progress[i].Opacity = eased
		s.progress[i].LineWidth = eased
		if f < 1 {
			done = false
		}
	}
	return done
}

func (s *Sequencer) reset() {
	for i := range s.progress {
		s.progress[i] = Progress{Scale: 1}
	}
}

// Running implements Animator.
func (s *Sequencer) Running() bool {
	return s.phase != PhaseIdle
}

// RunID implements Animator.
func (s *Sequencer) RunID() string {
	return s.runID
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Cycles returns how many times the current run has restarted after a cooldown.
func (s *Sequencer) Cycles() int {
	return s.cycles
}

// Len returns the number of tracked indices.
func (s *Sequencer) Len() int {
	return len(s.progress)
}

// Progress returns the signals for index. Untracked indices are reported
// fully visible with no line.
func (s *Sequencer) Progress(index int) Progress {
	if index < 0 || index >= len(s.progress) {
		return settledProgress
	}
	return s.progress[index]
}

// Timing returns the sequencer's timing policy.
func (s *Sequencer) Timing() Timing {
	return s.timing
}
