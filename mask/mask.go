// Package mask provides boolean-mask-driven slice filtering and
// transformation.
//
// A Mask is a fixed pattern of 0/1 bits validated at construction. Applied
// to a slice, the pattern cycles: element i is selected when bit i modulo
// the mask length is 1.
//
//	m, _ := mask.New(1, 0, 1)
//	kept := mask.Filter(m, []int{10, 20, 30, 40}) // [10 30 40]
package mask

import (
	"fmt"

	"github.com/kbukum/chainkit/errors"
	"github.com/kbukum/chainkit/validation"
)

// Mask holds a fixed 0/1 selection pattern.
type Mask struct {
	bits []int
}

// New creates a mask from the given bits. Every bit must be 0 or 1 and at
// least one bit is required.
func New(bits ...int) (*Mask, error) {
	if len(bits) == 0 {
		return nil, errors.InvalidInput("bits", "at least one bit is required")
	}
	v := validation.New()
	for i, b := range bits {
		v.Custom(b == 0 || b == 1, fmt.Sprintf("bits[%d]", i), "must be 0 or 1")
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &Mask{bits: append([]int(nil), bits...)}, nil
}

// Size returns the pattern length.
func (m *Mask) Size() int {
	return len(m.bits)
}

// At returns the bit at the given index.
// Returns an OUT_OF_RANGE error for indexes outside the pattern.
func (m *Mask) At(index int) (int, error) {
	if index < 0 || index >= len(m.bits) {
		return 0, errors.OutOfRange(index, len(m.bits))
	}
	return m.bits[index], nil
}

// keep reports whether element i is selected, cycling the pattern.
func (m *Mask) keep(i int) bool {
	return m.bits[i%len(m.bits)] == 1
}

// Filter returns the elements of items whose (cycled) mask bit is 1.
func Filter[T any](m *Mask, items []T) []T {
	result := make([]T, 0, len(items))
	for i, item := range items {
		if m.keep(i) {
			result = append(result, item)
		}
	}
	return result
}

// Transform returns a copy of items with fn applied to every element whose
// (cycled) mask bit is 1; other elements pass through unchanged.
func Transform[T any](m *Mask, items []T, fn func(T) T) []T {
	result := make([]T, len(items))
	for i, item := range items {
		if m.keep(i) {
			result[i] = fn(item)
		} else {
			result[i] = item
		}
	}
	return result
}

// FilterTransform returns only the elements whose (cycled) mask bit is 1,
// with fn applied to each.
func FilterTransform[T any](m *Mask, items []T, fn func(T) T) []T {
	result := make([]T, 0, len(items))
	for i, item := range items {
		if m.keep(i) {
			result = append(result, fn(item))
		}
	}
	return result
}
