package solver

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/crossfill/grid"
)

// SelectUnassigned picks the next slot to fill: fewest remaining
// domain values first (MRV), ties broken by the most crossings
// (degree), remaining ties by grid order. Panics if called with a
// complete assignment.
func (s *Solver) SelectUnassigned(assignment Assignment) grid.Slot {
	var best grid.Slot
	found := false
	for _, slot := range s.g.Slots() {
		if _, assigned := assignment[slot]; assigned {
			continue
		}
		if !found {
			best, found = slot, true
			continue
		}
		if len(s.domains[slot]) < len(s.domains[best]) {
			best = slot
		} else if len(s.domains[slot]) == len(s.domains[best]) &&
			len(s.g.Neighbors(slot)) > len(s.g.Neighbors(best)) {
			best = slot
		}
	}
	if !found {
		panic("select called with complete assignment")
	}
	return best
}

// OrderDomainValues returns the slot's candidates, least constraining
// first: ascending by the number of words the candidate would rule
// out across the unassigned crossing slots. Ties broken
// lexicographically so the order is stable.
func (s *Solver) OrderDomainValues(slot grid.Slot, assignment Assignment) []string {
	unassigned := lo.Filter(s.g.Neighbors(slot), func(n grid.Slot, _ int) bool {
		_, ok := assignment[n]
		return !ok
	})
	words := lo.Keys(s.domains[slot])
	ruledOut := make(map[string]int, len(words))
	for _, w := range words {
		count := 0
		for _, n := range unassigned {
			i, j, _ := s.g.Overlap(slot, n)
			for nw := range s.domains[n] {
				if w[i] != nw[j] {
					count++
				}
			}
		}
		ruledOut[w] = count
	}
	sort.Slice(words, func(a, b int) bool {
		if ruledOut[words[a]] != ruledOut[words[b]] {
			return ruledOut[words[a]] < ruledOut[words[b]]
		}
		return words[a] < words[b]
	})
	return words
}
