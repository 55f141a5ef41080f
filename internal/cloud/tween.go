package cloud

import "sync"

// tweenEpsilon absorbs the float drift of repeated fixed steps so that
// ten steps of 0.1 land on the bound instead of one step short.
const tweenEpsilon = 1e-9

// TweenState is the phase of a RadiusTween.
type TweenState int

const (
	Resting TweenState = iota
	Expanding
	Expanded
	Contracting
)

func (s TweenState) String() string {
	switch s {
	case Resting:
		return "resting"
	case Expanding:
		return "expanding"
	case Expanded:
		return "expanded"
	case Contracting:
		return "contracting"
	default:
		return "unknown"
	}
}

// Completion is resolved exactly once when a tween ends. Err is nil when the
// tween reached its bound and ErrTweenAbandoned when it was cut short.
type Completion struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Done is closed when the tween ends.
func (c *Completion) Done() <-chan struct{} { return c.done }

// Err is only meaningful after Done is closed.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Resolved reports whether Done has been closed.
func (c *Completion) Resolved() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Completion) resolve(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.done)
	})
}

// RadiusTween animates the sphere's radius factor between 1 and a ceiling.
// At most one tween runs at a time; triggers while busy are ignored.
type RadiusTween struct {
	factor  float64
	ceiling float64
	step    float64
	state   TweenState
	pending *Completion
}

func NewRadiusTween(step, ceiling float64) *RadiusTween {
	if ceiling < 1 {
		ceiling = 1
	}
	return &RadiusTween{factor: 1, ceiling: ceiling, step: step, state: Resting}
}

func (t *RadiusTween) Factor() float64 { return t.factor }
func (t *RadiusTween) Ceiling() float64 { return t.ceiling }
func (t *RadiusTween) State() TweenState { return t.state }

// Busy reports whether a tween is in flight.
func (t *RadiusTween) Busy() bool {
	return t.state == Expanding || t.state == Contracting
}

// Multiplier is the global opacity multiplier for the current factor.
func (t *RadiusTween) Multiplier() float64 {
	return TweenMultiplier(t.factor, t.ceiling)
}

// Expand starts growing from factor 1 toward the ceiling. It returns false
// without side effects when a tween is already running.
func (t *RadiusTween) Expand() (*Completion, bool) {
	if t.Busy() {
		return nil, false
	}
	t.set(1)
	t.state = Expanding
	t.pending = newCompletion()
	return t.pending, true
}

// Contract starts shrinking from the ceiling back to factor 1. It returns
// false without side effects when a tween is already running.
func (t *RadiusTween) Contract() (*Completion, bool) {
	if t.Busy() {
		return nil, false
	}
	t.set(t.ceiling)
	t.state = Contracting
	t.pending = newCompletion()
	return t.pending, true
}

// Step advances the running tween by one frame and reports whether it has
// finished. Step on an idle tween is a no-op that reports true.
func (t *RadiusTween) Step() bool {
	switch t.state {
	case Expanding:
		t.set(t.factor + t.step)
		if t.factor >= t.ceiling-tweenEpsilon {
			t.set(t.ceiling)
			t.finish(Expanded, nil)
			return true
		}
	case Contracting:
		t.set(t.factor - t.step)
		if t.factor <= 1+tweenEpsilon {
			t.set(1)
			t.finish(Resting, nil)
			return true
		}
	default:
		return true
	}
	return false
}

// Abandon stops a running tween where it stands. Its completion resolves
// with ErrTweenAbandoned. Use Reset to also return the factor to 1.
func (t *RadiusTween) Abandon() {
	if !t.Busy() {
		return
	}
	next := Expanded
	if t.factor <= 1 {
		next = Resting
	}
	t.finish(next, ErrTweenAbandoned)
}

// Reset abandons any running tween and snaps the factor back to 1.
func (t *RadiusTween) Reset() {
	t.Abandon()
	t.set(1)
	t.state = Resting
}

func (t *RadiusTween) set(f float64) {
	t.factor = min(max(f, 1), t.ceiling)
}

func (t *RadiusTween) finish(next TweenState, err error) {
	t.state = next
	if t.pending != nil {
		t.pending.resolve(err)
		t.pending = nil
	}
}
