package solver

import (
	"github.com/domino14/crossfill/grid"
)

// Backtrack runs depth-first search from the given partial assignment
// and returns the first complete assignment found, or nil. Committing
// a word narrows the slot's domain to a singleton and propagates with
// AC-3 over the arcs into the slot; the whole domain store is
// snapshotted first and restored when the branch fails, so domains
// are exact on every backtrack.
func (s *Solver) Backtrack(assignment Assignment) Assignment {
	if len(assignment) == len(s.domains) {
		return assignment
	}
	slot := s.SelectUnassigned(assignment)
	for _, word := range s.OrderDomainValues(slot, assignment) {
		s.nodes++
		s.logNode(slot, word, len(assignment))
		if !s.fits(assignment, slot, word) {
			continue
		}
		snapshot := s.snapshot()
		assignment[slot] = word
		s.domains[slot] = Domain{word: true}
		if s.AC3(s.arcsInto(slot)) {
			if result := s.Backtrack(assignment); result != nil {
				return result
			}
		}
		delete(assignment, slot)
		s.restore(snapshot)
	}
	return nil
}

func (s *Solver) arcsInto(slot grid.Slot) []Arc {
	neighbors := s.g.Neighbors(slot)
	arcs := make([]Arc, 0, len(neighbors))
	for _, z := range neighbors {
		arcs = append(arcs, Arc{z, slot})
	}
	return arcs
}

func (s *Solver) snapshot() map[grid.Slot]Domain {
	snap := make(map[grid.Slot]Domain, len(s.domains))
	for slot, dom := range s.domains {
		snap[slot] = dom.copy()
	}
	return snap
}

func (s *Solver) restore(snap map[grid.Slot]Domain) {
	s.domains = snap
}
