// Package fullscreen keeps the dashboard in its in-page full-screen state by
// pressing the page's own control a settle delay after every load.
package fullscreen

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/nmgaston/protect-kiosk/config"
	"github.com/nmgaston/protect-kiosk/pkg/clock"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

// Page evaluates script in the loaded document and decodes its result.
type Page interface {
	Evaluate(ctx context.Context, expression string, res any) error
}

// State -.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateTriggering
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateTriggering:
		return "triggering"
	default:
		return "unknown"
	}
}

// Kind names the control invocation for logs and metrics.
type Kind string

const (
	KindTrigger Kind = "trigger"
	KindExit    Kind = "exit"
)

// Outcome of one control invocation.
type Outcome string

const (
	OutcomeClicked  Outcome = "clicked"
	OutcomeMissing  Outcome = "missing"
	OutcomeInactive Outcome = "inactive"
	OutcomeError    Outcome = "error"
)

// Driver -.
type Driver struct {
	page    Page
	locator Locator
	clock   clock.Clock
	log     logger.Interface

	settleDelay     time.Duration
	retryTimeout    time.Duration
	initialInterval time.Duration
	maxInterval     time.Duration

	mu     sync.Mutex
	state  State
	cycle  string
	timer  *clock.Timer
	cancel context.CancelFunc
}

// Option -.
type Option func(*Driver)

// WithClock replaces the wall clock the settle delay is measured on.
func WithClock(c clock.Clock) Option {
	return func(d *Driver) {
		d.clock = c
	}
}

// New -.
func New(page Page, locator Locator, cfg config.Automation, log logger.Interface, opts ...Option) *Driver {
	d := &Driver{
		page:            page,
		locator:         locator,
		clock:           clock.Real(),
		log:             log,
		settleDelay:     cfg.SettleDelay,
		retryTimeout:    cfg.RetryTimeout,
		initialInterval: cfg.RetryInitialInterval,
		maxInterval:     cfg.RetryMaxInterval,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// State -.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// OnLoadFinished arms the settle timer for a new load cycle. A pending timer
// or in-flight attempt from an earlier load is cancelled first.
func (d *Driver) OnLoadFinished(ctx context.Context) {
	cycleCtx, cancel := context.WithCancel(ctx)
	id := uuid.NewString()

	d.mu.Lock()
	d.resetLocked()
	d.cycle = id
	d.cancel = cancel
	d.state = StateArmed
	d.mu.Unlock()

	d.log.Debug("fullscreen - OnLoadFinished - cycle %s armed, firing in %s", id, d.settleDelay)

	// AfterFunc may run the callback before returning when the delay is zero,
	// so the lock is not held across it.
	timer := d.clock.AfterFunc(d.settleDelay, func() { d.fire(cycleCtx, id) })

	d.mu.Lock()
	if d.cycle == id {
		d.timer = timer
	} else {
		timer.Stop()
	}
	d.mu.Unlock()
}

// Trigger presses the full-screen control now, outside any load cycle.
func (d *Driver) Trigger(ctx context.Context) Outcome {
	return d.attempt(ctx, KindTrigger, d.locator.TriggerScript())
}

// Exit presses the control only if the page is currently full-screen.
func (d *Driver) Exit(ctx context.Context) Outcome {
	return d.attempt(ctx, KindExit, d.locator.ExitScript())
}

// Stop cancels any pending timer and in-flight polling.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.resetLocked()
	d.cycle = ""
	d.state = StateIdle
}

func (d *Driver) resetLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Driver) fire(ctx context.Context, id string) {
	d.mu.Lock()
	if d.cycle != id || ctx.Err() != nil {
		d.mu.Unlock()

		return
	}

	d.state = StateTriggering
	d.timer = nil
	d.mu.Unlock()

	script := d.locator.TriggerScript()

	if d.attempt(ctx, KindTrigger, script) == OutcomeMissing && d.retryTimeout > 0 {
		go d.poll(ctx, id, script)

		return
	}

	d.finish(id)
}

// poll retries a missing control with growing intervals until it is found,
// the cycle is cancelled, or the retry budget runs out.
func (d *Driver) poll(ctx context.Context, id, script string) {
	defer d.finish(id)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.initialInterval
	b.MaxInterval = d.maxInterval
	b.MaxElapsedTime = d.retryTimeout
	b.RandomizationFactor = 0
	b.Clock = d.clock
	b.Reset()

	for {
		next := b.NextBackOff()
		if next == backoff.Stop {
			d.log.Warn("fullscreen - poll - cycle %s: control not found within %s", id, d.retryTimeout)

			return
		}

		select {
		case <-ctx.Done():
			return
		case <-d.clock.After(next):
		}

		if ctx.Err() != nil {
			return
		}

		if d.attempt(ctx, KindTrigger, script) != OutcomeMissing {
			return
		}
	}
}

func (d *Driver) finish(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cycle != id {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}

	d.state = StateIdle
}

// attempt never fails: script errors are logged and counted.
func (d *Driver) attempt(ctx context.Context, kind Kind, script string) Outcome {
	var res string

	outcome := OutcomeError

	if err := d.page.Evaluate(ctx, script, &res); err != nil {
		d.log.Warn("fullscreen - attempt - %s failed: %v", kind, err)
	} else {
		switch Outcome(res) {
		case OutcomeClicked:
			outcome = OutcomeClicked

			d.log.Info("fullscreen - attempt - %s control pressed", kind)
		case OutcomeMissing, OutcomeInactive:
			outcome = Outcome(res)

			d.log.Debug("fullscreen - attempt - %s skipped: %s", kind, res)
		default:
			d.log.Warn("fullscreen - attempt - %s returned unexpected result %q", kind, res)
		}
	}

	attemptsTotal.WithLabelValues(string(kind), string(outcome)).Inc()

	return outcome
}
