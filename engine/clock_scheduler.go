package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/kitty-run/constants"
	"github.com/lixenwraith/kitty-run/core"
	"github.com/lixenwraith/kitty-run/status"
)

// ClockScheduler runs the frame callback on a fixed interval from one goroutine
// Work posted through Post runs on the same goroutine between ticks, so the callback
// and posted work never race. Pause gates ticks without stopping the loop
type ClockScheduler struct {
	clock    *PausableClock
	interval time.Duration
	frame    func(now time.Time)

	mailbox  chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool

	mu               sync.Mutex
	nextTickDeadline time.Time

	statTicks  *atomic.Int64
	statPaused *atomic.Int64
}

// NewClockScheduler creates a stopped scheduler calling frame every interval with wall-clock now
func NewClockScheduler(clock *PausableClock, interval time.Duration, frame func(now time.Time), reg *status.Registry) *ClockScheduler {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &ClockScheduler{
		clock:      clock,
		interval:   interval,
		frame:      frame,
		mailbox:    make(chan func(), constants.EventQueueSize),
		stopChan:   make(chan struct{}),
		done:       make(chan struct{}),
		statTicks:  reg.Ints.Get(status.KeyTicks),
		statPaused: reg.Ints.Get(status.KeyPausedTicks),
	}
}

// Start begins the scheduler loop; later calls are no-ops
// The loop exits when ctx is cancelled or Stop/RequestStop is called
func (cs *ClockScheduler) Start(ctx context.Context) {
	if !cs.running.CompareAndSwap(false, true) {
		return
	}
	core.Go(func() { cs.schedulerLoop(ctx) })
}

// RequestStop asks the loop to exit without waiting; safe from inside posted work
func (cs *ClockScheduler) RequestStop() {
	cs.stopOnce.Do(func() { close(cs.stopChan) })
}

// Stop halts the loop and waits for it to exit; must not be called from the loop goroutine
func (cs *ClockScheduler) Stop() {
	cs.RequestStop()
	if cs.running.Load() {
		<-cs.done
	}
}

// Done is closed once the loop has exited
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.done
}

// Post queues fn onto the loop goroutine; returns false once the scheduler is stopping
func (cs *ClockScheduler) Post(fn func()) bool {
	select {
	case <-cs.stopChan:
		return false
	default:
	}
	select {
	case cs.mailbox <- fn:
		return true
	case <-cs.stopChan:
		return false
	}
}

// Pause gates ticks; posted work still runs
func (cs *ClockScheduler) Pause() {
	if cs.clock.Pause() {
		slog.Debug("scheduler paused")
	}
}

// Resume re-enables ticks
func (cs *ClockScheduler) Resume() {
	if cs.clock.Resume() {
		slog.Debug("scheduler resumed", "paused_total", cs.clock.TotalPauseDuration())
	}
}

func (cs *ClockScheduler) IsPaused() bool {
	return cs.clock.IsPaused()
}

// TickCount returns the number of frames executed
func (cs *ClockScheduler) TickCount() int64 {
	return cs.statTicks.Load()
}

func (cs *ClockScheduler) schedulerLoop(ctx context.Context) {
	defer close(cs.done)

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.RealTime().Add(cs.interval)
	cs.mu.Unlock()

	timer := time.NewTimer(cs.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-cs.stopChan:
			return
		case fn := <-cs.mailbox:
			fn()
		case <-timer.C:
			cs.processTick()
			timer.Reset(cs.untilNextTick())
		}
	}
}

// processTick runs one frame, or records a skipped frame while paused
func (cs *ClockScheduler) processTick() {
	realNow := cs.clock.RealTime()

	if cs.clock.IsPaused() {
		cs.statPaused.Add(1)
		cs.mu.Lock()
		// Slower polling while paused to save CPU
		cs.nextTickDeadline = realNow.Add(cs.interval * 2)
		cs.mu.Unlock()
		return
	}

	cs.frame(realNow)
	cs.statTicks.Add(1)

	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.interval)
	if realNow.Sub(cs.nextTickDeadline) > cs.interval*constants.MaxTicksBehind {
		cs.nextTickDeadline = realNow.Add(cs.interval)
	}
}

func (cs *ClockScheduler) untilNextTick() time.Duration {
	cs.mu.Lock()
	deadline := cs.nextTickDeadline
	cs.mu.Unlock()

	d := deadline.Sub(cs.clock.RealTime())
	if d < 0 {
		d = 0
	}
	return d
}
