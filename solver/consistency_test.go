package solver

import (
	"sort"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/crossfill/grid"
)

// a 3-length across slot crossed at its middle by a 3-length down slot
var crossDesc = []string{
	"___",
	"#_#",
	"#_#",
}

var (
	crossAcross = grid.Slot{Row: 0, Col: 0, Dir: grid.Across, Length: 3}
	crossDown   = grid.Slot{Row: 0, Col: 1, Dir: grid.Down, Length: 3}
)

func mustGrid(t *testing.T, desc []string) *grid.Grid {
	t.Helper()
	g, err := grid.MakeGrid(desc)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func domainWords(s *Solver, slot grid.Slot) []string {
	var words []string
	for w := range s.domains[slot] {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func TestEnforceNodeConsistency(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, crossDesc)
	s := New(g, []string{"CAT", "HOUSE", "AT", "DOG", "EIGHT"})
	s.EnforceNodeConsistency()
	for _, slot := range g.Slots() {
		for w := range s.domains[slot] {
			is.Equal(len(w), slot.Length)
		}
	}
	is.Equal(domainWords(s, crossAcross), []string{"CAT", "DOG"})
}

func TestRevise(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, crossDesc)
	s := New(g, []string{"CAT", "DOG", "ATE", "OAK", "TEN"})
	s.EnforceNodeConsistency()

	// a down word survives iff some distinct across word has a
	// matching middle letter
	revised := s.Revise(crossDown, crossAcross)
	is.True(revised)
	is.Equal(domainWords(s, crossDown), []string{"ATE", "OAK", "TEN"})

	// already at a fixed point for this arc
	is.True(!s.Revise(crossDown, crossAcross))
}

func TestReviseNoOverlap(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, []string{"___", "###", "___"})
	slots := g.Slots()
	s := New(g, []string{"CAT", "DOG"})
	s.EnforceNodeConsistency()
	is.True(!s.Revise(slots[0], slots[1]))
	is.Equal(domainWords(s, slots[0]), []string{"CAT", "DOG"})
}

func TestAC3Closure(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, crossDesc)
	s := New(g, []string{"CAT", "DOG", "ATE", "OAK", "TEN", "NET"})
	s.EnforceNodeConsistency()

	before := s.snapshot()
	is.True(s.AC3(nil))

	for _, x := range g.Slots() {
		// monotonicity: domains only shrink
		for w := range s.domains[x] {
			is.True(before[x][w])
		}
		// closure: every remaining word has a distinct supporting
		// partner across every arc
		for _, y := range g.Neighbors(x) {
			ix, iy, ok := s.g.Overlap(x, y)
			is.True(ok)
			for wx := range s.domains[x] {
				supported := false
				for wy := range s.domains[y] {
					if wx != wy && wx[ix] == wy[iy] {
						supported = true
					}
				}
				is.True(supported)
			}
		}
	}

	// fixed point: no arc revises further
	for _, x := range g.Slots() {
		for _, y := range g.Neighbors(x) {
			is.True(!s.Revise(x, y))
		}
	}
}

func TestAC3WipesDomain(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, crossDesc)
	// no word's first letter matches any word's middle letter
	s := New(g, []string{"CAT", "DOG", "TAP"})
	s.EnforceNodeConsistency()
	is.True(!s.AC3(nil))
}

func TestConsistentIsPure(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, crossDesc)
	s := New(g, []string{"CAT", "ATE", "DOG"})
	s.EnforceNodeConsistency()
	before := s.snapshot()

	good := Assignment{crossAcross: "CAT", crossDown: "ATE"}
	bad := Assignment{crossAcross: "CAT", crossDown: "TEN"}
	is.True(s.Consistent(good))
	is.True(!s.Consistent(bad))
	is.True(!s.Consistent(Assignment{crossAcross: "TOAD"})) // wrong length

	// the predicate must not touch the domain store
	for _, slot := range g.Slots() {
		is.Equal(domainWords(s, slot), sortedKeys(before[slot]))
	}
}

func sortedKeys(d Domain) []string {
	var words []string
	for w := range d {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func TestSnapshotRestore(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, crossDesc)
	s := New(g, []string{"CAT", "DOG", "ATE", "OAK", "TEN"})
	s.EnforceNodeConsistency()

	snap := s.snapshot()
	s.Revise(crossDown, crossAcross)
	s.domains[crossAcross] = Domain{"CAT": true}
	s.restore(snap)

	is.Equal(domainWords(s, crossAcross), []string{"ATE", "CAT", "DOG", "OAK", "TEN"})
	is.Equal(domainWords(s, crossDown), []string{"ATE", "CAT", "DOG", "OAK", "TEN"})
}
