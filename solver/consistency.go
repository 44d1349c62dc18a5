package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/grid"
)

// EnforceNodeConsistency removes from every domain the words whose
// length does not match the slot's. It never fails; a slot left with
// an empty domain surfaces later in AC3 or in the search.
func (s *Solver) EnforceNodeConsistency() {
	for slot, dom := range s.domains {
		for w := range dom {
			if len(w) != slot.Length {
				delete(dom, w)
			}
		}
	}
}

// Revise makes x arc-consistent with y: every word kept for x must
// have at least one distinct partner in y's domain with a matching
// letter at the crossing. Returns whether x's domain shrank. A no-op
// when the slots do not cross.
func (s *Solver) Revise(x, y grid.Slot) bool {
	ix, iy, ok := s.g.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	ydom := s.domains[y]
	for wx := range s.domains[x] {
		supported := false
		for wy := range ydom {
			if wx != wy && wx[ix] == wy[iy] {
				supported = true
				break
			}
		}
		if !supported {
			delete(s.domains[x], wx)
			revised = true
		}
	}
	return revised
}

// AC3 runs arc-consistency propagation to a fixed point. A nil arcs
// argument starts from every (slot, neighbor) pair; the search passes
// targeted arcs after committing a word. Returns false as soon as any
// domain empties, which proves the puzzle unsolvable along the
// current branch.
//
// The worklist is a LIFO stack. A FIFO queue reaches the same fixed
// point; the processing order only changes how fast we get there.
func (s *Solver) AC3(arcs []Arc) bool {
	var stack []Arc
	if arcs == nil {
		for _, x := range s.g.Slots() {
			for _, y := range s.g.Neighbors(x) {
				stack = append(stack, Arc{x, y})
			}
		}
	} else {
		stack = append(stack, arcs...)
	}
	for len(stack) > 0 {
		arc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !s.Revise(arc.X, arc.Y) {
			continue
		}
		if len(s.domains[arc.X]) == 0 {
			log.Debug().Str("slot", arc.X.String()).Msg("domain wiped out")
			return false
		}
		// arcs into X may have lost their support; recheck them
		for _, z := range s.g.Neighbors(arc.X) {
			if z != arc.Y {
				stack = append(stack, Arc{z, arc.X})
			}
		}
	}
	return true
}

// Consistent reports whether an assignment, partial or complete,
// satisfies the length and crossing constraints. It is a pure
// predicate; it never touches the domain store.
func (s *Solver) Consistent(assignment Assignment) bool {
	for slot, word := range assignment {
		if slot.Length != len(word) {
			return false
		}
	}
	for s1, w1 := range assignment {
		for _, s2 := range s.g.Neighbors(s1) {
			w2, ok := assignment[s2]
			if !ok {
				continue
			}
			i, j, _ := s.g.Overlap(s1, s2)
			if w1[i] != w2[j] {
				return false
			}
		}
	}
	return true
}

// fits reports whether word can extend assignment at slot without
// breaking any constraint visible right now.
func (s *Solver) fits(assignment Assignment, slot grid.Slot, word string) bool {
	if len(word) != slot.Length {
		return false
	}
	if s.requireDistinct {
		for _, w := range assignment {
			if w == word {
				return false
			}
		}
	}
	for _, n := range s.g.Neighbors(slot) {
		w2, ok := assignment[n]
		if !ok {
			continue
		}
		i, j, _ := s.g.Overlap(slot, n)
		if word[i] != w2[j] {
			return false
		}
	}
	return true
}
