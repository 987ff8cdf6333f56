package ecs

import (
	"fmt"
	"strings"
)

// Group ties a set of component stores to one compact list of live entities.
//
// Every live handle has a populated slot in every store. Entities are added
// by inserting into each store and committing the returned handles, and are
// removed from all stores and the live list together.
type Group struct {
	name    string
	stores  []AnyStore
	live    []Handle
	destroy []Handle
}

// NewGroup creates a group over the given stores.
func NewGroup(name string, stores ...AnyStore) *Group {
	if len(stores) == 0 {
		panic(fmt.Sprintf("ecs: group %q needs at least one store", name))
	}
	return &Group{name: name, stores: stores}
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Commit registers a new entity whose components were just inserted.
// All stores move in lockstep, so every insert must have produced the same
// handle; anything else is a programming error and panics.
func (g *Group) Commit(handles ...Handle) Handle {
	if len(handles) != len(g.stores) {
		panic(fmt.Sprintf("ecs: group %q: commit with %d handles, have %d stores",
			g.name, len(handles), len(g.stores)))
	}
	h := handles[0]
	for i, other := range handles[1:] {
		if other != h {
			panic(fmt.Sprintf("ecs: group %q: store %s out of lockstep (%s != %s)",
				g.name, g.stores[i+1].Name(), other, h))
		}
	}
	g.live = append(g.live, h)
	return h
}

// Remove evicts h from every store and from the live list.
// The last live entity takes the removed one's place, so iteration order is
// not preserved. Panics if h is not live.
func (g *Group) Remove(h Handle) {
	idx := g.indexOf(h)
	if idx < 0 {
		panic(fmt.Sprintf("ecs: group %q: remove of unknown handle %s", g.name, h))
	}
	for _, s := range g.stores {
		s.Erase(h)
	}

	last := len(g.live) - 1
	g.live[idx] = g.live[last]
	g.live = g.live[:last]
}

// MarkForRemoval queues h for the next Flush. Marking twice is a no-op.
func (g *Group) MarkForRemoval(h Handle) {
	for _, queued := range g.destroy {
		if queued == h {
			return
		}
	}
	g.destroy = append(g.destroy, h)
}

// Pending returns the number of queued removals.
func (g *Group) Pending() int {
	return len(g.destroy)
}

// Flush removes every queued entity that is still live and returns how many
// were removed.
func (g *Group) Flush() int {
	removed := 0
	for _, h := range g.destroy {
		if g.indexOf(h) < 0 {
			continue
		}
		g.Remove(h)
		removed++
	}
	g.destroy = g.destroy[:0]
	return removed
}

// Live returns the live handles. The slice is owned by the group and is
// only valid until the next Commit or Remove.
func (g *Group) Live() []Handle {
	return g.live
}

// Len returns the number of live entities.
func (g *Group) Len() int {
	return len(g.live)
}

// Contains reports whether h is live in this group.
func (g *Group) Contains(h Handle) bool {
	return g.indexOf(h) >= 0
}

// Shutdown drops all entities and frees the stores.
func (g *Group) Shutdown() {
	for _, s := range g.stores {
		s.Clear()
	}
	g.live = nil
	g.destroy = nil
}

// Check verifies that every live handle is present in every store and that
// the store sizes match the live list.
func (g *Group) Check() error {
	var problems []string
	for _, s := range g.stores {
		if s.Len() != len(g.live) {
			problems = append(problems, fmt.Sprintf("store %s holds %d, live %d", s.Name(), s.Len(), len(g.live)))
		}
		for _, h := range g.live {
			if !s.Has(h) {
				problems = append(problems, fmt.Sprintf("store %s misses %s", s.Name(), h))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("ecs: group %q: %s", g.name, strings.Join(problems, "; "))
	}
	return nil
}

func (g *Group) indexOf(h Handle) int {
	for i, live := range g.live {
		if live == h {
			return i
		}
	}
	return -1
}

// Archetype is the contract shared by concrete entity groups.
// S is the spawn description the group builds an entity from.
type Archetype[S any] interface {
	Init()
	Add(spawn S) Handle
	Remove(h Handle)
	Len() int
	Shutdown()
}
