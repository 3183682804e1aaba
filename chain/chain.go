package chain

import (
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/chainkit/logger"
)

// config carries chain-wide settings, fixed at seed creation and propagated
// through every composition.
type config struct {
	immediate bool
	log       *logger.Logger
}

// Option configures a chain at creation.
type Option func(*config)

// Immediate makes the chain execute synchronously at creation and again
// after every composition, instead of waiting for an explicit Execute call.
func Immediate() Option {
	return func(c *config) { c.immediate = true }
}

// WithLogger attaches a logger; each run is logged at debug level with a
// run ID, step count, duration, and status.
func WithLogger(l *logger.Logger) Option {
	return func(c *config) { c.log = l.WithComponent("chain") }
}

// Chain is the handle for a typed chain. It owns the tip step and,
// transitively, every step back to the seed. Composition via Then or ThenDo
// consumes the handle.
type Chain[T any] struct {
	tip   valueStep[T]
	steps int
	cfg   config
}

// New creates a chain seeded with value.
func New[T any](value T, opts ...Option) *Chain[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Chain[T]{tip: &seedStep[T]{seed: value}, steps: 1, cfg: cfg}
	c.autorun()
	return c
}

// Pipe feeds a value directly into a transform, creating the chain
// implicitly. Equivalent to Then(New(value, opts...), fn).
func Pipe[I, O any](value I, fn func(I) (O, error), opts ...Option) *Chain[O] {
	return Then(New(value, opts...), fn)
}

// Execute runs the chain to completion. Safe to call multiple times: every
// step runs at most once, so repeated calls recompute nothing and re-emit
// no side effects. A step that failed did not run and is retried.
func (c *Chain[T]) Execute() error {
	return run(c.tip, c.steps, c.cfg.log)
}

// Result returns the value produced by the tip step. It returns a
// RESULT_NOT_AVAILABLE error if the tip has not executed yet. The seed's
// value is fixed at creation and always available.
func (c *Chain[T]) Result() (T, error) {
	return c.tip.value()
}

func (c *Chain[T]) autorun() {
	if c.cfg.immediate {
		if err := c.Execute(); err != nil && c.cfg.log != nil {
			c.cfg.log.Error("immediate execution failed", logger.ErrorFields("execute", err))
		}
	}
}

// VoidChain is the terminal state of a chain, entered once an effect-only
// step is appended. It produces no value; its only composition appends
// further zero-argument effects.
type VoidChain struct {
	tip   step
	steps int
	cfg   config
}

// Then appends an unconditional effect, consuming the handle.
func (v *VoidChain) Then(fn func() error) *VoidChain {
	next := &VoidChain{
		tip:   &seqStep{prev: v.tip, fn: fn},
		steps: v.steps + 1,
		cfg:   v.cfg,
	}
	v.tip = nil
	next.autorun()
	return next
}

// Execute runs the chain to completion. See Chain.Execute.
func (v *VoidChain) Execute() error {
	return run(v.tip, v.steps, v.cfg.log)
}

func (v *VoidChain) autorun() {
	if v.cfg.immediate {
		if err := v.Execute(); err != nil && v.cfg.log != nil {
			v.cfg.log.Error("immediate execution failed", logger.ErrorFields("execute", err))
		}
	}
}

// run executes tip, logging the run when a logger is attached.
func run(tip step, steps int, log *logger.Logger) error {
	if log == nil {
		return tip.execute()
	}

	runID := uuid.NewString()
	start := time.Now()
	err := tip.execute()
	fields := logger.DurationFields("execute", time.Since(start))
	fields[logger.FieldRunID] = runID
	fields[logger.FieldCount] = steps

	if err != nil {
		fields[logger.FieldError] = err.Error()
		log.Error("chain run failed", fields)
		return err
	}
	log.Debug("chain run completed", fields)
	return nil
}
