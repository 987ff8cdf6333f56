// Package ecs provides the minimal fixed-function entity storage used by the
// simulation: generation-checked handles, generic slot arrays and entity
// groups that keep several component stores in lockstep.
//
// Nothing here is safe for concurrent use; the whole simulation runs on the
// frame loop goroutine.
package ecs

import "fmt"

// Handle identifies a slot in a SlotArray.
// Generation changes every time the slot is reused, so a handle kept after
// its entity was removed is detected instead of aliasing a new entity.
type Handle struct {
	Index      uint32
	Generation uint32
}

// String returns a compact representation used in logs and panics.
func (h Handle) String() string {
	return fmt.Sprintf("%d@%d", h.Index, h.Generation)
}
