package chain

import "github.com/kbukum/chainkit/errors"

// step is one node in the ownership chain. Executing a step first executes
// its predecessor, so steps always complete in root-to-tip order. A step
// runs at most once; re-execution is a no-op.
type step interface {
	execute() error
}

// valueStep is a step able to surface a typed value once it has executed:
// the seed step and transform steps. Composition stores each predecessor
// through this interface, so a step's declared input type is fixed at
// construction time and always matches what the predecessor provides.
type valueStep[T any] interface {
	step
	value() (T, error)
}

// slot holds a step's produced output. The value is readable only after it
// has been set.
type slot[T any] struct {
	val T
	has bool
}

func (s *slot[T]) set(v T) {
	s.val = v
	s.has = true
}

func (s *slot[T]) get() (T, error) {
	if !s.has {
		var zero T
		return zero, errors.ResultNotAvailable()
	}
	return s.val, nil
}

// seedStep holds the chain's immutable initial value. It has nothing to
// compute; executing it only marks it as ran.
type seedStep[T any] struct {
	seed T
	ran  bool
}

func (s *seedStep[T]) execute() error {
	s.ran = true
	return nil
}

func (s *seedStep[T]) value() (T, error) {
	return s.seed, nil
}

// transformStep owns its predecessor and applies a unary function to the
// predecessor's value, storing the output in its result slot.
type transformStep[In, Out any] struct {
	prev valueStep[In]
	fn   func(In) (Out, error)
	out  slot[Out]
	ran  bool
}

func (s *transformStep[In, Out]) execute() error {
	if s.ran {
		return nil
	}
	if err := s.prev.execute(); err != nil {
		return err
	}
	in, err := s.prev.value()
	if err != nil {
		return err
	}
	out, err := s.fn(in)
	if err != nil {
		return err
	}
	s.out.set(out)
	s.ran = true
	return nil
}

func (s *transformStep[In, Out]) value() (Out, error) {
	return s.out.get()
}

// termStep owns its predecessor and consumes its value for a side effect,
// producing no output. Appending one switches the chain into terminal state.
type termStep[In any] struct {
	prev valueStep[In]
	fn   func(In) error
	ran  bool
}

func (s *termStep[In]) execute() error {
	if s.ran {
		return nil
	}
	if err := s.prev.execute(); err != nil {
		return err
	}
	in, err := s.prev.value()
	if err != nil {
		return err
	}
	if err := s.fn(in); err != nil {
		return err
	}
	s.ran = true
	return nil
}

// seqStep chains an unconditional effect after a terminal step. It ignores
// any upstream value entirely, so it owns its predecessor as a bare step.
type seqStep struct {
	prev step
	fn   func() error
	ran  bool
}

func (s *seqStep) execute() error {
	if s.ran {
		return nil
	}
	if err := s.prev.execute(); err != nil {
		return err
	}
	if err := s.fn(); err != nil {
		return err
	}
	s.ran = true
	return nil
}
