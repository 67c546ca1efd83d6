package animate

import (
	"time"

	"github.com/google/uuid"
)

// Pulse loops a scale signal from 1 up to Peak and back, used to draw the
// eye to the most recent day.
type Pulse struct {
	Rise time.Duration
	Fall time.Duration
	Peak float64

	runID   string
	elapsed time.Duration
	scale   float64
}

var _ Animator = (*Pulse)(nil)

// NewPulse returns an idle pulse: 500ms up to 1.1, 500ms back down.
func NewPulse() *Pulse {
	return &Pulse{
		Rise:  500 * time.Millisecond,
		Fall:  500 * time.Millisecond,
		Peak:  1.1,
		scale: 1,
	}
}

// Start begins a new loop and returns its run ID.
func (p *Pulse) Start() string {
	p.runID = uuid.NewString()
	p.elapsed = 0
	p.scale = 1
	return p.runID
}

// Stop implements Animator.
func (p *Pulse) Stop() {
	p.runID = ""
}

// Advance implements Animator.
func (p *Pulse) Advance(dt time.Duration) {
	if p.runID == "" {
		return
	}
	period := p.Rise + p.Fall
	if period <= 0 {
		return
	}
	p.elapsed = (p.elapsed + dt) % period

	var f float64
	if p.elapsed < p.Rise {
		f = easeInOut(fraction(p.elapsed, p.Rise))
	} else {
		f = 1 - easeInOut(fraction(p.elapsed-p.Rise, p.Fall))
	}
	p.scale = 1 + (p.Peak-1)*f
}

// Running implements Animator.
func (p *Pulse) Running() bool {
	return p.runID != ""
}

// RunID implements Animator.
func (p *Pulse) RunID() string {
	return p.runID
}

// Scale returns the current scale factor.
func (p *Pulse) Scale() float64 {
	return p.scale
}
