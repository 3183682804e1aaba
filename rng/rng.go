// Package rng provides a linear-congruential pseudo-random sequence exposed
// as a pull iterator.
//
// The generator produces x' = (A*x + C) mod M from a floating-point state.
// Its iterator walks the sequence and reports exhaustion when the state
// cycles back to within Epsilon of the initial seed, mirroring an
// end-sentinel bounded range.
package rng

import (
	"math"

	"github.com/kbukum/chainkit/validation"
)

// Params configures a generator. A contracting multiplier and a positive
// increment below the modulus keep the state inside [0, M).
type Params struct {
	A       float64 `mapstructure:"a" validate:"gt=0,lt=1"`
	C       float64 `mapstructure:"c" validate:"gt=0,ltfield=M"`
	M       float64 `mapstructure:"m" validate:"gt=1"`
	Seed    float64 `mapstructure:"seed" validate:"gte=0"`
	Epsilon float64 `mapstructure:"epsilon" validate:"gte=0"`
}

// ApplyDefaults fills in the default seed and epsilon.
func (p *Params) ApplyDefaults() {
	if p.Seed == 0 {
		p.Seed = 0.1
	}
	if p.Epsilon == 0 {
		p.Epsilon = 0.05
	}
}

// LCG is a linear-congruential generator over float64 state.
type LCG struct {
	params  Params
	x       float64
	initial float64
}

// New creates a generator, applying defaults and validating parameters.
func New(p Params) (*LCG, error) {
	p.ApplyDefaults()
	if err := validation.Validate(p); err != nil {
		return nil, err
	}
	return &LCG{params: p, x: p.Seed, initial: p.Seed}, nil
}

// Next advances the generator and returns the new state.
func (g *LCG) Next() float64 {
	g.x = math.Mod(g.params.A*g.x+g.params.C, g.params.M)
	return g.x
}

// Reset rewinds the generator to its initial seed.
func (g *LCG) Reset() {
	g.x = g.initial
}

// ResetTo sets both the current state and the initial seed to x.
func (g *LCG) ResetTo(x float64) {
	g.x = x
	g.initial = x
}

// Iter returns an iterator over the sequence starting from the current
// state. The iterator is independent of the generator: advancing one does
// not affect the other.
func (g *LCG) Iter() *Iterator {
	return &Iterator{
		params:  g.params,
		x:       g.x,
		initial: g.initial,
		eps:     g.params.Epsilon,
	}
}

// Iterator walks a generator sequence until the state returns to within
// epsilon of the initial seed. Sequences that never re-approach the seed do
// not exhaust; use Take to bound collection.
type Iterator struct {
	params  Params
	x       float64
	initial float64
	eps     float64
	done    bool
}

// Next returns the next value in the sequence. It returns ok=false once the
// state has cycled back to within epsilon of the initial seed.
func (it *Iterator) Next() (float64, bool) {
	if it.done {
		return 0, false
	}
	it.x = math.Mod(it.params.A*it.x+it.params.C, it.params.M)
	if math.Abs(it.x-it.initial) < it.eps {
		it.done = true
		return 0, false
	}
	return it.x, true
}

// Take collects at most n values from the iterator.
func (it *Iterator) Take(n int) []float64 {
	result := make([]float64, 0, n)
	for len(result) < n {
		v, ok := it.Next()
		if !ok {
			break
		}
		result = append(result, v)
	}
	return result
}
