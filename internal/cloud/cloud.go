package cloud

import (
	"fmt"
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/iburimskiy/tagsphere/internal/config"
)

// Option is a functional option for configuring a Cloud.
type Option func(*Cloud)

// WithLogger sets the logger for skipped items and suppressed tweens.
func WithLogger(l *log.Logger) Option {
	return func(c *Cloud) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithScheduler shares a frame scheduler with other per-frame work. By
// default the cloud creates its own.
func WithScheduler(s *Scheduler) Option {
	return func(c *Cloud) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithContainer sets the size percentage widths are resolved against, and
// the window size the viewport is clipped to.
func WithContainer(container, window Viewport) Option {
	return func(c *Cloud) {
		c.container = container
		c.window = window
	}
}

// Cloud owns a set of items on a sphere and drives them through the frame
// scheduler onto a Surface.
type Cloud struct {
	opts    config.Options
	surface Surface
	sched   *Scheduler
	logger  *log.Logger

	container Viewport
	window    Viewport

	state CloudState
	tween *RadiusTween
	items []Item
	built bool

	renderID FrameID
	running  bool
	tweenID  FrameID
}

// New validates opts and returns an unbuilt cloud painting onto surface.
func New(opts config.Options, surface Surface, options ...Option) (*Cloud, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	c := &Cloud{
		opts:    opts,
		surface: surface,
		logger:  log.New(io.Discard, "", 0),
		tween:   NewRadiusTween(opts.AnimatingSpeed, opts.AnimatingRadiusLimit),
	}
	for _, opt := range options {
		opt(c)
	}
	if c.sched == nil {
		c.sched = NewScheduler(WithSchedulerLogger(c.logger))
	}
	c.state = NewState(opts, c.viewport())
	return c, nil
}

// Build lays out specs on the sphere, hands them to the surface and starts
// the render loop. Specs that are neither a label nor an image are skipped
// but keep their slot on the sphere. Nothing reaches the surface when no
// usable spec remains.
func (c *Cloud) Build(specs []ItemSpec) error {
	if c.built {
		c.Teardown()
	}
	if len(specs) == 0 {
		return ErrNoItems
	}

	points := Layout(len(specs))
	items := make([]Item, 0, len(specs))
	for i, spec := range specs {
		if spec.Kind() == KindInvalid {
			c.logger.Printf("skipping item %d: neither label nor image", i)
			continue
		}
		items = append(items, newItem(i, spec, points[i], c.opts.Font.ToUpperCase, c.opts.Tooltip.ToUpperCase))
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: all %d specs were malformed", ErrNoItems, len(specs))
	}

	c.state = c.state.Resize(c.opts, c.viewport())
	c.state.Factor = c.tween.Factor()
	c.state.Steering = true
	c.items = items
	c.rescale()

	if err := c.surface.Build(c.Items()); err != nil {
		c.items = nil
		return fmt.Errorf("build surface: %w", err)
	}
	c.built = true
	c.Start()
	return nil
}

// Teardown stops rendering, abandons a running tween, returns the radius
// to rest and releases the surface. It is safe to call on an unbuilt cloud.
func (c *Cloud) Teardown() {
	c.Stop()
	if c.tweenID != 0 {
		c.sched.Cancel(c.tweenID)
		c.tweenID = 0
	}
	// A rebuilt set always starts at rest.
	c.tween.Reset()
	c.state.Factor = 1
	if !c.built {
		return
	}
	c.surface.Teardown()
	c.items = nil
	c.built = false
}

// SetItems replaces the item set.
func (c *Cloud) SetItems(specs []ItemSpec) error {
	c.Teardown()
	return c.Build(specs)
}

// Start schedules the render loop. It does nothing when already running or
// not built.
func (c *Cloud) Start() {
	if c.running || !c.built {
		return
	}
	c.running = true
	c.renderID = c.sched.Request(c.render)
}

// Stop cancels the pending render frame. Stopping twice is a no-op.
func (c *Cloud) Stop() {
	if !c.running {
		return
	}
	c.sched.Cancel(c.renderID)
	c.renderID = 0
	c.running = false
}

func (c *Cloud) Running() bool { return c.running }
func (c *Cloud) Built() bool { return c.built }

// Resize responds to a new container or window size.
func (c *Cloud) Resize(container, window Viewport) {
	c.container = container
	c.window = window
	c.state = c.state.Resize(c.opts, c.viewport())
	c.rescale()
}

// PointerMove records the pointer offset from the surface origin. Steering
// resumes on the first move after a hover ends.
func (c *Cloud) PointerMove(x, y float64) {
	c.state.Pointer = mgl64.Vec2{x, y}
	if c.highlighted() < 0 {
		c.state.Steering = true
	}
}

// Hover highlights the item with the given index and freezes rotation. It
// reports false if no such item exists.
func (c *Cloud) Hover(index int) bool {
	found := false
	for i := range c.items {
		if c.items[i].Index == index {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for i := range c.items {
		c.items[i].Highlighted = c.items[i].Index == index
	}
	c.state.Steering = false
	return true
}

// Unhover clears the highlight. Items keep easing toward the dimmed
// opacity until the pointer moves again.
func (c *Cloud) Unhover() {
	for i := range c.items {
		c.items[i].Highlighted = false
	}
}

// Highlighted returns the index of the highlighted item, or -1.
func (c *Cloud) Highlighted() int { return c.highlighted() }

func (c *Cloud) highlighted() int {
	for _, it := range c.items {
		if it.Highlighted {
			return it.Index
		}
	}
	return -1
}

// Expand grows the sphere to the tween ceiling while fading it out. The
// second return is false, with a nil completion, when a tween is already
// running.
func (c *Cloud) Expand() (*Completion, bool) {
	return c.startTween(c.tween.Expand, "expand")
}

// Contract shrinks the sphere back to its resting radius while fading in.
// The same suppression rule as Expand applies.
func (c *Cloud) Contract() (*Completion, bool) {
	return c.startTween(c.tween.Contract, "contract")
}

// ResetRadius abandons any tween and snaps back to the resting radius.
func (c *Cloud) ResetRadius() {
	if c.tweenID != 0 {
		c.sched.Cancel(c.tweenID)
		c.tweenID = 0
	}
	c.tween.Reset()
	c.applyFactor()
}

func (c *Cloud) Tween() TweenState { return c.tween.State() }
func (c *Cloud) Factor() float64 { return c.tween.Factor() }
func (c *Cloud) Scheduler() *Scheduler { return c.sched }

// State returns a copy of the current frame state.
func (c *Cloud) State() CloudState { return c.state }

// Items returns a copy of the items in their current paint order.
func (c *Cloud) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cloud) startTween(trigger func() (*Completion, bool), name string) (*Completion, bool) {
	done, ok := trigger()
	if !ok {
		c.logger.Printf("%s ignored: %s in progress", name, c.tween.State())
		return nil, false
	}
	c.applyFactor()
	c.tweenID = c.sched.Request(c.stepTween)
	return done, true
}

func (c *Cloud) stepTween() {
	finished := c.tween.Step()
	c.applyFactor()
	if finished {
		c.tweenID = 0
		return
	}
	c.tweenID = c.sched.Request(c.stepTween)
}

func (c *Cloud) render() {
	// Queue the next frame first so one failing frame cannot end the loop.
	c.renderID = c.sched.Request(c.render)

	var frame Frame
	c.state, frame = Advance(c.state, c.items, c.opts)
	frame.Number = c.sched.Frame()
	c.surface.Present(frame)
}

func (c *Cloud) applyFactor() {
	c.state.Factor = c.tween.Factor()
	c.rescale()
}

func (c *Cloud) rescale() {
	r := c.state.WorkingRadius()
	for i := range c.items {
		v, err := Rescale(c.items[i].Position, r)
		if err != nil {
			c.logger.Printf("item %d: %v", c.items[i].Index, err)
			continue
		}
		c.items[i].Position = v
	}
}

func (c *Cloud) viewport() Viewport {
	return ResolveViewport(c.opts.Width, c.opts.Height, c.container, c.window)
}
