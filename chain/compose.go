package chain

// Then appends a transform producing a new typed value, consuming c. The new
// step's input type is derived from the current chain's value type, so a
// chain assembled through composition can never feed a step a value of the
// wrong type. The returned chain owns the whole step graph; the immediate
// flag and logger carry over, and an immediate chain runs before returning.
func Then[I, O any](c *Chain[I], fn func(I) (O, error)) *Chain[O] {
	next := &Chain[O]{
		tip:   &transformStep[I, O]{prev: c.tip, fn: fn},
		steps: c.steps + 1,
		cfg:   c.cfg,
	}
	c.tip = nil
	next.autorun()
	return next
}

// ThenDo appends an effect-only step, consuming c and switching the chain
// into its terminal state.
func ThenDo[I any](c *Chain[I], fn func(I) error) *VoidChain {
	next := &VoidChain{
		tip:   &termStep[I]{prev: c.tip, fn: fn},
		steps: c.steps + 1,
		cfg:   c.cfg,
	}
	c.tip = nil
	next.autorun()
	return next
}

// Pure lifts a pure function into the error-returning shape Then expects.
func Pure[I, O any](fn func(I) O) func(I) (O, error) {
	return func(in I) (O, error) {
		return fn(in), nil
	}
}

// Effect lifts a plain side effect into the shape ThenDo expects.
func Effect[I any](fn func(I)) func(I) error {
	return func(in I) error {
		fn(in)
		return nil
	}
}

// Do lifts a zero-argument side effect into the shape VoidChain.Then expects.
func Do(fn func()) func() error {
	return func() error {
		fn()
		return nil
	}
}
