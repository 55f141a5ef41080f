package cloud

import (
	"context"
	"io"
	"log"
	"time"
)

// FrameID identifies a pending frame callback. The zero FrameID is never issued.
type FrameID uint64

type frameRequest struct {
	id FrameID
	fn func()
}

// Scheduler runs one-shot callbacks once per display refresh, in the manner
// of requestAnimationFrame. It is not safe for concurrent use; the host calls
// Tick from the same goroutine that requests and cancels frames.
type Scheduler struct {
	nextID  FrameID
	queue   []*frameRequest
	running []*frameRequest
	frame   uint64
	logger  *log.Logger
}

// SchedulerOption is a functional option for configuring a Scheduler.
type SchedulerOption func(*Scheduler)

// WithSchedulerLogger sets the logger used to report recovered callback panics.
func WithSchedulerLogger(l *log.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewScheduler(options ...SchedulerOption) *Scheduler {
	s := &Scheduler{logger: log.New(io.Discard, "", 0)}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Request queues fn to run on the next Tick.
func (s *Scheduler) Request(fn func()) FrameID {
	s.nextID++
	s.queue = append(s.queue, &frameRequest{id: s.nextID, fn: fn})
	return s.nextID
}

// Cancel drops a pending callback. It reports whether the callback was still
// pending; cancelling twice, or after it ran, is harmless.
func (s *Scheduler) Cancel(id FrameID) bool {
	if id == 0 {
		return false
	}
	for i, req := range s.queue {
		if req.id == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return true
		}
	}
	// Callbacks already picked up by the current tick are disarmed in place.
	for _, req := range s.running {
		if req.id == id && req.fn != nil {
			req.fn = nil
			return true
		}
	}
	return false
}

// Tick runs every callback that was pending when the tick began, in request
// order, and returns how many ran. Callbacks requested during the tick run
// on the next one.
func (s *Scheduler) Tick() int {
	s.frame++
	s.running, s.queue = s.queue, nil
	ran := 0
	for _, req := range s.running {
		fn := req.fn
		if fn == nil {
			continue
		}
		req.fn = nil
		s.invoke(req.id, fn)
		ran++
	}
	s.running = nil
	return ran
}

// Frame is the number of ticks so far.
func (s *Scheduler) Frame() uint64 { return s.frame }

// Pending is the number of callbacks waiting for the next tick.
func (s *Scheduler) Pending() int { return len(s.queue) }

// Run ticks at the given interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// select picks at random when both are ready.
			if err := ctx.Err(); err != nil {
				return err
			}
			s.Tick()
		}
	}
}

func (s *Scheduler) invoke(id FrameID, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("frame %d: callback %d recovered from panic: %v", s.frame, id, r)
		}
	}()
	fn()
}
