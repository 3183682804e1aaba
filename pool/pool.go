package pool

import "github.com/kbukum/chainkit/errors"

// Pool is a fixed-capacity object pool. Storage for all slots is reserved at
// construction; Create places objects into free slots and returns pointers
// that stay valid until the slot is deleted.
type Pool[T any] struct {
	items    []T
	occupied []bool
}

// New creates a pool with the given capacity.
func New[T any](capacity int) (*Pool[T], error) {
	if capacity <= 0 {
		return nil, errors.InvalidInput("capacity", "must be greater than zero")
	}
	return &Pool[T]{
		items:    make([]T, capacity),
		occupied: make([]bool, capacity),
	}, nil
}

// Capacity returns the fixed number of slots.
func (p *Pool[T]) Capacity() int {
	return len(p.items)
}

// Count returns the number of live objects.
func (p *Pool[T]) Count() int {
	count := 0
	for _, occ := range p.occupied {
		if occ {
			count++
		}
	}
	return count
}

// Create places v into the first free slot and returns a pointer to it.
// Returns a SLOTS_EXHAUSTED error when no slot is free.
func (p *Pool[T]) Create(v T) (*T, error) {
	for i := range p.items {
		if !p.occupied[i] {
			p.items[i] = v
			p.occupied[i] = true
			return &p.items[i], nil
		}
	}
	return nil, errors.SlotsExhausted(p.Count())
}

// Get returns a pointer to the object at the given slot.
// Returns an EMPTY_SLOT error for out-of-range or unoccupied slots.
func (p *Pool[T]) Get(index int) (*T, error) {
	if index < 0 || index >= len(p.items) || !p.occupied[index] {
		return nil, errors.EmptySlot(index)
	}
	return &p.items[index], nil
}

// Delete frees the slot at the given index, zeroing its storage.
// Returns an EMPTY_SLOT error for out-of-range or unoccupied slots.
func (p *Pool[T]) Delete(index int) error {
	if index < 0 || index >= len(p.items) || !p.occupied[index] {
		return errors.EmptySlot(index)
	}
	var zero T
	p.items[index] = zero
	p.occupied[index] = false
	return nil
}

// Position returns the slot index of an object previously returned by
// Create or Get, located by pointer identity. Returns an EMPTY_SLOT error
// when the pointer does not address a live slot.
func (p *Pool[T]) Position(obj *T) (int, error) {
	for i := range p.items {
		if p.occupied[i] && &p.items[i] == obj {
			return i, nil
		}
	}
	return 0, errors.EmptySlot(-1).WithDetail("reason", "pointer is not a live slot")
}
