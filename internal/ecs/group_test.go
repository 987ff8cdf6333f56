package ecs

import "testing"

type testGroup struct {
	names  *SlotArray[string]
	values *SlotArray[int]
	*Group
}

func newTestGroup() *testGroup {
	g := &testGroup{
		names:  NewSlotArray[string]("names"),
		values: NewSlotArray[int]("values"),
	}
	g.Group = NewGroup("test", g.names, g.values)
	return g
}

func (g *testGroup) add(name string, v int) Handle {
	return g.Commit(g.names.Insert(name), g.values.Insert(v))
}

func TestGroupInvariantAcrossAddRemove(t *testing.T) {
	g := newTestGroup()

	var handles []Handle
	for i := 0; i < 10; i++ {
		handles = append(handles, g.add("e", i))
	}

	for _, idx := range []int{3, 0, 9, 5} {
		g.Remove(handles[idx])
		if err := g.Check(); err != nil {
			t.Fatalf("after removing %d: %v", idx, err)
		}
	}

	if g.Len() != 6 {
		t.Errorf("Len() = %d, expected 6", g.Len())
	}

	for i := 0; i < 4; i++ {
		g.add("again", 100+i)
		if err := g.Check(); err != nil {
			t.Fatalf("after re-add %d: %v", i, err)
		}
	}

	for _, h := range g.Live() {
		if !g.names.Has(h) || !g.values.Has(h) {
			t.Errorf("live handle %v missing from a store", h)
		}
	}
}

func TestGroupAddRemoveAdd(t *testing.T) {
	g := newTestGroup()

	a := g.add("a", 1)
	g.Remove(a)
	b := g.add("b", 2)

	if g.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", g.Len())
	}
	if g.Contains(a) {
		t.Error("removed handle still contained")
	}
	if !g.Contains(b) || *g.values.Get(b) != 2 {
		t.Error("new entity not reachable")
	}
}

func TestGroupRemoveSwapsLast(t *testing.T) {
	g := newTestGroup()
	a := g.add("a", 1)
	g.add("b", 2)
	c := g.add("c", 3)

	g.Remove(a)

	live := g.Live()
	if len(live) != 2 || live[0] != c {
		t.Errorf("Live() = %v, expected last entity %v moved to front", live, c)
	}
}

func TestGroupDeferredRemoval(t *testing.T) {
	g := newTestGroup()
	a := g.add("a", 1)
	b := g.add("b", 2)
	g.add("c", 3)

	g.MarkForRemoval(a)
	g.MarkForRemoval(a)
	g.MarkForRemoval(b)

	if g.Pending() != 2 {
		t.Errorf("Pending() = %d, expected 2 (duplicates ignored)", g.Pending())
	}
	if g.Len() != 3 {
		t.Error("marking must not remove immediately")
	}

	if n := g.Flush(); n != 2 {
		t.Errorf("Flush() = %d, expected 2", n)
	}
	if g.Len() != 1 || g.Pending() != 0 {
		t.Errorf("after flush Len=%d Pending=%d", g.Len(), g.Pending())
	}
	if err := g.Check(); err != nil {
		t.Error(err)
	}
}

func TestGroupDestroyListGrows(t *testing.T) {
	g := newTestGroup()
	for i := 0; i < 500; i++ {
		g.MarkForRemoval(g.add("e", i))
	}
	if n := g.Flush(); n != 500 {
		t.Errorf("Flush() = %d, expected 500", n)
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", g.Len())
	}
}

func TestGroupLockstepViolationPanics(t *testing.T) {
	g := newTestGroup()
	g.names.Insert("orphan")

	expectPanic(t, "out of lockstep", func() {
		g.add("x", 1)
	})
}

func TestGroupRemoveUnknownPanics(t *testing.T) {
	g := newTestGroup()
	h := g.add("a", 1)
	g.Remove(h)

	expectPanic(t, "double remove", func() { g.Remove(h) })
}

func TestGroupShutdown(t *testing.T) {
	g := newTestGroup()
	g.add("a", 1)
	g.MarkForRemoval(g.add("b", 2))

	g.Shutdown()

	if g.Len() != 0 || g.Pending() != 0 || g.names.Len() != 0 || g.values.Len() != 0 {
		t.Error("Shutdown should leave the group empty")
	}
}
