package animator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iw2rmb/typewriter/clock"
	"github.com/iw2rmb/typewriter/engine"
)

// Frame is an engine frame stamped with the clock time it was produced at.
type Frame struct {
	engine.Frame
	At time.Time
}

type Options struct {
	Clock  clock.Clock  // default: clock.Real()
	Logger *slog.Logger // default: slog.Default()

	// OnFrame receives the start frame and one frame per transition. It may
	// call Dispose and the read accessors.
	OnFrame func(Frame)
}

// Animator is the handle for one animation run.
type Animator struct {
	clock   clock.Clock
	log     *slog.Logger
	onFrame func(Frame)

	mu       sync.Mutex
	machine  *engine.Machine
	last     Frame
	timer    *clock.Timer
	gen      uint64
	started  bool
	disposed bool
	done     chan struct{}
	closed   bool
}

// New prepares a run for cfg. Nothing is scheduled until Start.
func New(cfg engine.Config, opt Options) *Animator {
	if opt.Clock == nil {
		opt.Clock = clock.Real()
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	a := &Animator{
		clock:   opt.Clock,
		log:     opt.Logger,
		onFrame: opt.OnFrame,
		machine: engine.NewMachine(cfg),
		done:    make(chan struct{}),
	}
	a.last = Frame{Frame: a.machine.Frame(), At: a.clock.Now()}
	return a
}

// Start delivers the start frame and arms the first timer. Calls after the
// first, or after Dispose, do nothing.
func (a *Animator) Start() {
	a.mu.Lock()
	if a.started || a.disposed {
		a.mu.Unlock()
		return
	}
	a.started = true
	a.last = Frame{Frame: a.machine.Frame(), At: a.clock.Now()}
	frame := a.last
	gen := a.gen
	a.log.Debug("typewriter started",
		"phase", frame.Phase.String(),
		"text", a.machine.Config().Text,
		"loop", a.machine.Config().Loop)
	a.mu.Unlock()

	a.deliver(frame)

	a.rearm(gen)
}

// Dispose cancels the pending timer and closes Done. Nothing is scheduled
// and no transition runs after Dispose returns; a frame that another
// goroutine was already delivering still completes. Safe to call more than
// once.
func (a *Animator) Dispose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.disposed {
		return
	}
	a.disposed = true
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.log.Info("typewriter disposed",
		"phase", a.last.Phase.String(),
		"cycle", a.last.Cycle,
		"tick", a.last.Tick)
	a.closeDoneLocked()
}

// Run starts the animator and blocks until it stops on its own (nil) or ctx
// is done, in which case it disposes the animator and returns ctx.Err().
func (a *Animator) Run(ctx context.Context) error {
	a.Start()
	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		a.Dispose()
		return ctx.Err()
	}
}

// Done is closed when the run reaches engine.Stopped or is disposed.
func (a *Animator) Done() <-chan struct{} { return a.done }

// Frame returns the most recently produced frame.
func (a *Animator) Frame() Frame {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

func (a *Animator) Text() string { return a.Frame().Text }

func (a *Animator) Phase() engine.Phase { return a.Frame().Phase }

// Pending reports whether a timer is armed.
func (a *Animator) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timer != nil
}

func (a *Animator) Disposed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.disposed
}

// rearm schedules the next transition unless the run moved past gen while
// the frame was delivered. Dispose (possibly from OnFrame) bumps the
// generation.
func (a *Animator) rearm(gen uint64) {
	a.mu.Lock()
	if a.disposed || gen != a.gen {
		a.mu.Unlock()
		return
	}
	delay, next, ok := a.nextLocked()
	a.mu.Unlock()
	if ok {
		a.schedule(delay, next)
	}
}

// nextLocked cancels the pending timer and starts a new generation. ok is
// false when the machine has stopped, in which case Done is closed.
func (a *Animator) nextLocked() (delay time.Duration, gen uint64, ok bool) {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++

	delay, ok = a.machine.Delay()
	if !ok {
		a.log.Info("typewriter stopped", "cycle", a.last.Cycle, "tick", a.last.Tick)
		a.closeDoneLocked()
		return 0, 0, false
	}
	return delay, a.gen, true
}

// schedule arms the timer for gen. a.mu is not held across AfterFunc, so a
// Clock may run the callback before AfterFunc returns. A timer whose
// generation is already gone is stopped instead of kept.
func (a *Animator) schedule(delay time.Duration, gen uint64) {
	t := a.clock.AfterFunc(delay, func() { a.fire(gen) })

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.disposed || gen != a.gen {
		t.Stop()
		return
	}
	a.timer = t
}

func (a *Animator) fire(gen uint64) {
	a.mu.Lock()
	if a.disposed || gen != a.gen {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	a.last = Frame{Frame: a.machine.Step(), At: a.clock.Now()}
	frame := a.last
	a.log.Debug("typewriter tick",
		"phase", frame.Phase.String(),
		"cycle", frame.Cycle,
		"tick", frame.Tick,
		"len", a.machine.Len())
	a.mu.Unlock()

	a.deliver(frame)
	a.rearm(gen)
}

func (a *Animator) deliver(frame Frame) {
	if a.onFrame != nil {
		a.onFrame(frame)
	}
}

func (a *Animator) closeDoneLocked() {
	if a.closed {
		return
	}
	a.closed = true
	close(a.done)
}
