package pyg

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Version is the engine version string.
const Version = "0.1.0"

const defaultTickRate = 60

// Engine drives a Scene: it runs the per-frame Update dispatch and a
// fixed-timestep FixedUpdate cadence derived from the tick rate. The engine
// owns no window or renderer; hosts that need one wrap the engine in a
// driver (see driver/ebitengine) or call Step from their own loop.
//
// The engine is single-threaded by contract. Run drives ticks on the
// calling goroutine; hosts mutating the scene from elsewhere must
// serialize against it — the engine takes no locks.
type Engine struct {
	scene *Scene
	log   *zap.Logger

	tickRate    int
	accumulator float64

	running bool
	paused  bool

	bootTime  time.Time // set once at construction
	startTime time.Time // reset by Start and Restart
}

// NewEngine creates an engine driving the given scene at the default tick
// rate of 60.
func NewEngine(scene *Scene) *Engine {
	return &Engine{
		scene:    scene,
		log:      zap.NewNop(),
		tickRate: defaultTickRate,
		bootTime: time.Now(),
	}
}

// SetLogger sets the engine's lifecycle logger and forwards it to the scene.
func (e *Engine) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	e.log = log
	e.scene.SetLogger(log)
}

// Scene returns the scene the engine drives.
func (e *Engine) Scene() *Scene { return e.scene }

// TickRate returns the fixed-update rate in ticks per second.
func (e *Engine) TickRate() int { return e.tickRate }

// SetTickRate sets the fixed-update rate. Rates below 1 are rejected.
func (e *Engine) SetTickRate(rate int) error {
	if rate <= 0 {
		e.log.Error("invalid tick rate", zap.Int("tick_rate", rate))
		return errors.Errorf("tick rate must be positive, got %d", rate)
	}
	e.tickRate = rate
	return nil
}

// FixedDelta returns the fixed timestep in seconds (1 / tick rate).
func (e *Engine) FixedDelta() float64 {
	return 1.0 / float64(e.tickRate)
}

// IsRunning reports whether the engine is between Start and Stop.
func (e *Engine) IsRunning() bool { return e.running }

// IsPaused reports whether the engine is paused.
func (e *Engine) IsPaused() bool { return e.paused }

// Start marks the engine running, resets the run clock, and starts all
// scene components. No-op if already running.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.paused = false
	e.startTime = time.Now()
	e.accumulator = 0
	e.scene.Start()
	e.log.Info("engine started", zap.String("version", Version), zap.Int("tick_rate", e.tickRate))
}

// Stop stops the engine and all scene components. No-op if not running.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.scene.Stop()
	e.log.Info("engine stopped", zap.Duration("elapsed", e.Elapsed()))
}

// Pause suspends tick dispatch without stopping components' state.
func (e *Engine) Pause() {
	if !e.running || e.paused {
		return
	}
	e.paused = true
	e.scene.Pause()
	e.log.Info("engine paused")
}

// Resume clears the pause flag.
func (e *Engine) Resume() {
	if !e.paused {
		return
	}
	e.paused = false
	e.log.Info("engine resumed")
}

// Restart stops and starts the engine, resetting the run clock. The total
// runtime clock keeps counting from construction.
func (e *Engine) Restart() {
	e.Stop()
	e.Start()
	e.log.Info("engine restarted")
}

// Elapsed returns the time since the last Start or Restart.
func (e *Engine) Elapsed() time.Duration {
	if e.startTime.IsZero() {
		return 0
	}
	return time.Since(e.startTime)
}

// TotalElapsed returns the time since the engine was constructed,
// unaffected by Restart.
func (e *Engine) TotalElapsed() time.Duration {
	return time.Since(e.bootTime)
}

// Step advances the engine by dt seconds: one Update pass, plus as many
// fixed-timestep FixedUpdate passes as the accumulator covers. Hosts with
// their own loop call this directly; Run calls it on a ticker. Negative dt
// is treated as zero. No-op while paused or stopped.
func (e *Engine) Step(dt float64) {
	if !e.running || e.paused {
		return
	}
	if dt < 0 {
		dt = 0
	}
	e.scene.Update(dt)
	fixed := e.FixedDelta()
	e.accumulator += dt
	for e.accumulator >= fixed {
		e.scene.FixedUpdate(fixed)
		e.accumulator -= fixed
	}
}

// Run starts the engine and drives Step at the tick rate until ctx is
// cancelled or Stop is called. Returns the context error on cancellation,
// nil on Stop. A SetTickRate while running takes effect on the next tick.
func (e *Engine) Run(ctx context.Context) error {
	e.Start()
	interval := time.Second / time.Duration(e.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			e.Stop()
			return ctx.Err()
		case now := <-ticker.C:
			if !e.running {
				return nil
			}
			e.Step(now.Sub(last).Seconds())
			last = now
			if next := time.Second / time.Duration(e.tickRate); next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}
