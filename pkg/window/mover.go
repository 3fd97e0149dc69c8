package window

import (
	"time"

	"github.com/dooshek/windowctl/pkg/geometry"
)

// Mover animates a window's transition from one rectangle to another. A
// caller selects a mover by name through Window.Move; unknown names fall
// back to an immediate, non-animated move.
type Mover interface {
	MoveWindow(w *Window, from, to geometry.Rectangle) error
}

// MoverFunc adapts a function to the Mover interface.
type MoverFunc func(w *Window, from, to geometry.Rectangle) error

func (f MoverFunc) MoveWindow(w *Window, from, to geometry.Rectangle) error {
	return f(w, from, to)
}

const (
	defaultMoveDuration = 250 * time.Millisecond
	defaultMoveSteps    = 20
)

// StepMover slides the window along a straight path in fixed steps over
// Duration, issuing one position set per step. Ease shapes the timing: nil
// means constant speed.
type StepMover struct {
	Duration time.Duration
	Steps    int
	Ease     func(t float64) float64
}

func (m StepMover) MoveWindow(w *Window, from, to geometry.Rectangle) error {
	steps := m.Steps
	if steps <= 0 {
		steps = defaultMoveSteps
	}
	duration := m.Duration
	if duration <= 0 {
		duration = defaultMoveDuration
	}
	interval := duration / time.Duration(steps)

	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if m.Ease != nil {
			t = m.Ease(t)
		}
		rect := geometry.Rectangle{
			X:      from.X + (to.X-from.X)*t,
			Y:      from.Y + (to.Y-from.Y)*t,
			Width:  from.Width + (to.Width-from.Width)*t,
			Height: from.Height + (to.Height-from.Height)*t,
		}
		if err := w.SetPosition(rect); err != nil {
			return err
		}
		if i < steps {
			time.Sleep(interval)
		}
	}
	return nil
}

// smoothstep accelerates into the move and decelerates out of it.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func builtinMovers() map[string]Mover {
	return map[string]Mover{
		"linear": StepMover{},
		"smooth": StepMover{Ease: smoothstep},
	}
}
