package pool

import (
	"testing"

	"github.com/kbukum/chainkit/errors"
)

type widget struct {
	Name string
	N    int
}

func TestNewInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		if _, err := New[widget](capacity); !errors.IsCode(err, errors.ErrCodeInvalidInput) {
			t.Errorf("capacity %d: expected INVALID_INPUT, got %v", capacity, err)
		}
	}
}

func TestCreateAndGet(t *testing.T) {
	p, err := New[widget](3)
	if err != nil {
		t.Fatal(err)
	}

	w, err := p.Create(widget{Name: "a", N: 1})
	if err != nil {
		t.Fatal(err)
	}
	if w.Name != "a" {
		t.Errorf("expected name 'a', got %q", w.Name)
	}

	got, err := p.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if got != w {
		t.Error("expected Get to return the same pointer as Create")
	}
	if p.Count() != 1 {
		t.Errorf("expected count 1, got %d", p.Count())
	}
}

func TestCreateFillsFirstFreeSlot(t *testing.T) {
	p, _ := New[int](3)
	for i := 0; i < 3; i++ {
		if _, err := p.Create(i * 10); err != nil {
			t.Fatal(err)
		}
	}

	if err := p.Delete(1); err != nil {
		t.Fatal(err)
	}

	v, err := p.Create(99)
	if err != nil {
		t.Fatal(err)
	}
	idx, err := p.Position(v)
	if err != nil {
		t.Fatal(err)
	}
	if idx != 1 {
		t.Errorf("expected freed slot 1 to be reused, got %d", idx)
	}
}

func TestCreateExhausted(t *testing.T) {
	p, _ := New[int](2)
	p.Create(1)
	p.Create(2)

	_, err := p.Create(3)
	if !errors.IsCode(err, errors.ErrCodeSlotsExhausted) {
		t.Fatalf("expected SLOTS_EXHAUSTED, got %v", err)
	}
	appErr := errors.AsAppError(err)
	if appErr.Details["count"] != 2 {
		t.Errorf("expected count detail 2, got %v", appErr.Details["count"])
	}
}

func TestGetAndDeleteErrors(t *testing.T) {
	p, _ := New[int](2)
	p.Create(1)

	tests := []struct {
		name  string
		index int
	}{
		{"negative index", -1},
		{"out of range", 2},
		{"unoccupied slot", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := p.Get(tc.index); !errors.IsCode(err, errors.ErrCodeEmptySlot) {
				t.Errorf("Get: expected EMPTY_SLOT, got %v", err)
			}
			if err := p.Delete(tc.index); !errors.IsCode(err, errors.ErrCodeEmptySlot) {
				t.Errorf("Delete: expected EMPTY_SLOT, got %v", err)
			}
		})
	}
}

func TestDeleteZeroesSlot(t *testing.T) {
	p, _ := New[widget](1)
	p.Create(widget{Name: "x", N: 9})

	if err := p.Delete(0); err != nil {
		t.Fatal(err)
	}
	if p.Count() != 0 {
		t.Errorf("expected count 0, got %d", p.Count())
	}
	// Slot storage is cleared for the next occupant.
	if p.items[0] != (widget{}) {
		t.Errorf("expected zeroed slot, got %+v", p.items[0])
	}
}

func TestPosition(t *testing.T) {
	p, _ := New[int](3)
	a, _ := p.Create(1)
	b, _ := p.Create(2)

	if idx, err := p.Position(a); err != nil || idx != 0 {
		t.Errorf("expected position 0, got %d (%v)", idx, err)
	}
	if idx, err := p.Position(b); err != nil || idx != 1 {
		t.Errorf("expected position 1, got %d (%v)", idx, err)
	}

	outside := 7
	if _, err := p.Position(&outside); !errors.IsCode(err, errors.ErrCodeEmptySlot) {
		t.Errorf("expected EMPTY_SLOT for foreign pointer, got %v", err)
	}

	p.Delete(0)
	if _, err := p.Position(a); !errors.IsCode(err, errors.ErrCodeEmptySlot) {
		t.Errorf("expected EMPTY_SLOT after delete, got %v", err)
	}
}
