package ecs

import "testing"

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestSlotArrayInsertGet(t *testing.T) {
	s := NewSlotArray[string]("names")

	a := s.Insert("a")
	b := s.Insert("b")

	if a == b {
		t.Fatalf("handles should differ, got %v twice", a)
	}
	if *s.Get(a) != "a" || *s.Get(b) != "b" {
		t.Errorf("Get returned wrong values: %q %q", *s.Get(a), *s.Get(b))
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}

	*s.Get(a) = "changed"
	if v, ok := s.Lookup(a); !ok || *v != "changed" {
		t.Errorf("Lookup after write = %v, %v", v, ok)
	}
}

func TestSlotArrayReuseBumpsGeneration(t *testing.T) {
	s := NewSlotArray[int]("ints")

	first := s.Insert(1)
	s.Erase(first)
	second := s.Insert(2)

	if second.Index != first.Index {
		t.Errorf("freed slot should be reused: got index %d, expected %d", second.Index, first.Index)
	}
	if second.Generation == first.Generation {
		t.Error("reused slot should have a new generation")
	}
	if s.Has(first) {
		t.Error("stale handle reported as live")
	}
	if _, ok := s.Lookup(first); ok {
		t.Error("Lookup of stale handle should fail")
	}

	expectPanic(t, "Get stale", func() { s.Get(first) })
	expectPanic(t, "Erase stale", func() { s.Erase(first) })
}

func TestSlotArrayFreeListIsLIFO(t *testing.T) {
	s := NewSlotArray[int]("ints")

	h0 := s.Insert(0)
	h1 := s.Insert(1)
	s.Insert(2)

	s.Erase(h0)
	s.Erase(h1)

	if got := s.Insert(10); got.Index != h1.Index {
		t.Errorf("first reuse index = %d, expected %d", got.Index, h1.Index)
	}
	if got := s.Insert(11); got.Index != h0.Index {
		t.Errorf("second reuse index = %d, expected %d", got.Index, h0.Index)
	}
}

func TestSlotArrayHandles(t *testing.T) {
	s := NewSlotArray[int]("ints")
	a := s.Insert(1)
	b := s.Insert(2)
	c := s.Insert(3)
	s.Erase(b)

	handles := s.Handles()
	if len(handles) != 2 || handles[0] != a || handles[1] != c {
		t.Errorf("Handles() = %v, expected [%v %v]", handles, a, c)
	}

	s.Clear()
	if s.Len() != 0 || len(s.Handles()) != 0 {
		t.Error("Clear should drop everything")
	}
}

func TestSlotArrayOutOfRange(t *testing.T) {
	s := NewSlotArray[int]("ints")
	h := Handle{Index: 42}

	if s.Has(h) {
		t.Error("out-of-range handle reported as live")
	}
	expectPanic(t, "Get out of range", func() { s.Get(h) })
}
