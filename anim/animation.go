package anim

import (
	"context"
	"sync"
	"time"
)

// State is the lifecycle state of an Animation.
type State int

const (
	Pending State = iota
	Delayed
	Running
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Delayed:
		return "delayed"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// An Animation is one live interpolation instance. It owns its Spec, its
// state machine and its most recently computed value. Instances are created
// by a Manager and removed from its registry once they reach a terminal
// state; they are never reused.
type Animation struct {
	spec Spec

	mu          sync.Mutex
	state       State
	startTime   time.Time
	currentLoop int
	current     Value
	cancel      context.CancelFunc
}

func newAnimation(spec Spec) *Animation {
	a := new(Animation)
	a.spec = spec
	a.state = Pending
	a.current = spec.Start
	return a
}

// Spec returns the immutable spec the animation was built from.
func (a *Animation) Spec() Spec {
	return a.spec
}

// State returns the current lifecycle state.
func (a *Animation) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Current returns the most recently computed value. Until the first tick it
// mirrors the spec's start value.
func (a *Animation) Current() Value {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Start waits out the spec's delay, then marks the animation Running and
// records its start timestamp. It blocks the calling goroutine for the
// delay phase only; cancellation of ctx or of the animation itself ends the
// wait early. Start is a no-op once the lifecycle is underway: only a
// Pending animation begins its delay, and Delayed, Running and terminal
// animations are left untouched.
func (a *Animation) Start(ctx context.Context) error {
	a.mu.Lock()
	if a.state != Pending {
		a.mu.Unlock()
		return nil
	}

	if a.spec.Delay > 0 {
		delayCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		a.cancel = cancel
		a.state = Delayed
		a.mu.Unlock()

		timer := time.NewTimer(a.spec.Delay)
		defer timer.Stop()
		select {
		case <-delayCtx.Done():
			return delayCtx.Err()
		case <-timer.C:
		}

		a.mu.Lock()
		if a.state != Delayed {
			a.mu.Unlock()
			return nil
		}
		a.cancel = nil
	}

	a.state = Running
	a.startTime = time.Now()
	a.mu.Unlock()
	return nil
}

// Progress returns normalized elapsed time in [0,1] while Running, and 0
// otherwise. A zero-duration animation reports 1.0 on first evaluation.
func (a *Animation) Progress() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != Running {
		return 0
	}
	if a.spec.Duration <= 0 {
		return 1
	}
	p := float64(time.Since(a.startTime)) / float64(a.spec.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ValueAt computes the interpolated value for the given progress. The eased
// progress is deliberately not clamped, so overshoot curves produce values
// transiently outside the start/end range.
func (a *Animation) ValueAt(progress float64) Value {
	eased := a.spec.Easing.Func()(progress)
	return a.spec.Start.Lerp(a.spec.End, eased)
}

func (a *Animation) setCurrent(v Value) {
	a.mu.Lock()
	a.current = v
	a.mu.Unlock()
}

// ShouldLoop reports whether the animation should restart instead of
// completing when it reaches full progress.
func (a *Animation) ShouldLoop() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.spec.Loop {
		return false
	}
	if a.spec.LoopCount == 0 {
		return true
	}
	return a.currentLoop < a.spec.LoopCount
}

// ResetForLoop restarts timing from now and counts the finished
// play-through. Overshoot past full progress is not carried over.
func (a *Animation) ResetForLoop() {
	a.mu.Lock()
	a.startTime = time.Now()
	a.currentLoop++
	a.mu.Unlock()
}

func (a *Animation) complete() {
	a.mu.Lock()
	if a.state == Running {
		a.state = Completed
	}
	a.mu.Unlock()
}

// Cancel moves the animation to Cancelled and aborts any in-flight delay.
// Cancelling a Completed or Cancelled animation is a no-op.
func (a *Animation) Cancel() {
	a.mu.Lock()
	if a.state == Completed || a.state == Cancelled {
		a.mu.Unlock()
		return
	}
	a.state = Cancelled
	cancel := a.cancel
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// IsComplete reports whether the animation has reached a terminal state.
func (a *Animation) IsComplete() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state == Completed || a.state == Cancelled
}
