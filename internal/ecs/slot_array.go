package ecs

import "fmt"

type slot[T any] struct {
	value      T
	generation uint32
	alive      bool
}

// SlotArray is a stable-handle store for one component type.
// Freed slots are reused last-in first-out; each reuse bumps the slot's
// generation.
type SlotArray[T any] struct {
	name  string
	slots []slot[T]
	free  []uint32
	count int
}

// NewSlotArray creates an empty store. The name only appears in panics.
func NewSlotArray[T any](name string) *SlotArray[T] {
	return &SlotArray[T]{name: name}
}

// Name returns the store name.
func (s *SlotArray[T]) Name() string {
	return s.name
}

// Insert stores v and returns its handle.
func (s *SlotArray[T]) Insert(v T) Handle {
	s.count++

	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]

		sl := &s.slots[idx]
		sl.generation++
		sl.value = v
		sl.alive = true
		return Handle{Index: idx, Generation: sl.generation}
	}

	s.slots = append(s.slots, slot[T]{value: v, alive: true})
	return Handle{Index: uint32(len(s.slots) - 1)}
}

// Has reports whether h refers to a live slot of the current generation.
func (s *SlotArray[T]) Has(h Handle) bool {
	if int(h.Index) >= len(s.slots) {
		return false
	}
	sl := &s.slots[h.Index]
	return sl.alive && sl.generation == h.Generation
}

// Lookup returns a pointer to the value behind h, or false if h is stale.
func (s *SlotArray[T]) Lookup(h Handle) (*T, bool) {
	if !s.Has(h) {
		return nil, false
	}
	return &s.slots[h.Index].value, true
}

// Get returns a pointer to the value behind h.
// The pointer is valid until the next Insert. Panics on a stale handle.
func (s *SlotArray[T]) Get(h Handle) *T {
	if !s.Has(h) {
		panic(fmt.Sprintf("ecs: %s: invalid handle %s", s.name, h))
	}
	return &s.slots[h.Index].value
}

// Erase frees the slot behind h. Panics on a stale handle.
func (s *SlotArray[T]) Erase(h Handle) {
	if !s.Has(h) {
		panic(fmt.Sprintf("ecs: %s: erase of invalid handle %s", s.name, h))
	}

	sl := &s.slots[h.Index]
	var zero T
	sl.value = zero
	sl.alive = false
	s.free = append(s.free, h.Index)
	s.count--
}

// Len returns the number of live values.
func (s *SlotArray[T]) Len() int {
	return s.count
}

// Handles returns the handles of all live values in slot order.
func (s *SlotArray[T]) Handles() []Handle {
	out := make([]Handle, 0, s.count)
	for i := range s.slots {
		if s.slots[i].alive {
			out = append(out, Handle{Index: uint32(i), Generation: s.slots[i].generation})
		}
	}
	return out
}

// Clear drops every value and releases the backing storage.
func (s *SlotArray[T]) Clear() {
	s.slots = nil
	s.free = nil
	s.count = 0
}

// AnyStore is the type-erased view of a SlotArray used by Group.
type AnyStore interface {
	Name() string
	Has(h Handle) bool
	Erase(h Handle)
	Len() int
	Clear()
}

var _ AnyStore = (*SlotArray[int])(nil)
