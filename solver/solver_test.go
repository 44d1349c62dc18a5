package solver

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/crossfill/grid"
)

var numberWords = []string{
	"ONE", "TWO", "THREE", "FOUR", "FIVE",
	"SIX", "SEVEN", "EIGHT", "NINE", "TEN",
}

func TestSolveUniqueSolution(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, laddersDesc)
	s := New(g, numberWords)
	a, ok := s.Solve()
	is.True(ok)
	is.Equal(len(a), len(g.Slots()))
	is.True(s.Consistent(a))
	is.Equal(a, Assignment{
		ladderA1: "SIX",
		ladderD1: "SEVEN",
		ladderD2: "FIVE",
		ladderA2: "NINE",
	})
}

func TestSolveSoundness(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, crossDesc)
	s := New(g, []string{"CAT", "ATE", "DOG"})
	a, ok := s.Solve()
	is.True(ok)
	is.Equal(len(a), 2)
	for slot, word := range a {
		is.Equal(len(word), slot.Length)
	}
	for _, x := range g.Slots() {
		for _, y := range g.Neighbors(x) {
			ix, iy, _ := g.Overlap(x, y)
			is.Equal(a[x][ix], a[y][iy])
		}
	}
}

func TestSolveIsolatedSlot(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, []string{"____"})
	s := New(g, []string{"WORD", "GAME"})
	a, ok := s.Solve()
	is.True(ok)
	word := a[grid.Slot{Row: 0, Col: 0, Dir: grid.Across, Length: 4}]
	// either word fits; assert membership, not a specific pick
	is.True(word == "WORD" || word == "GAME")
}

func TestSolveNoSolution(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, crossDesc)
	// no word can start with any word's middle letter
	s := New(g, []string{"CAT", "DOG", "TAP"})
	_, ok := s.Solve()
	is.True(!ok)
}

func TestSolveNoWordOfRequiredLength(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, laddersDesc)
	// nothing of length 5 for the long down slot
	s := New(g, []string{"ONE", "TWO", "FOUR", "FIVE", "NINE"})
	_, ok := s.Solve()
	is.True(!ok)
}

func TestSolveRequireDistinct(t *testing.T) {
	is := is.New(t)
	desc := []string{"___", "###", "___"}
	top := grid.Slot{Row: 0, Col: 0, Dir: grid.Across, Length: 3}
	bottom := grid.Slot{Row: 2, Col: 0, Dir: grid.Across, Length: 3}

	g := mustGrid(t, desc)
	s := New(g, []string{"CAT", "DOG"})
	a, ok := s.Solve()
	is.True(ok)
	// non-crossing slots may share a word by default
	is.Equal(a[top], a[bottom])

	g = mustGrid(t, desc)
	s = New(g, []string{"CAT", "DOG"})
	s.SetRequireDistinct(true)
	a, ok = s.Solve()
	is.True(ok)
	is.True(a[top] != a[bottom])
}

func TestSolveBacktracks(t *testing.T) {
	is := is.New(t)
	// the across slots compete for words through the shared down
	// slot; several near-miss fills exist
	g := mustGrid(t, []string{
		"___",
		"_##",
		"___",
	})
	s := New(g, []string{"BUS", "SUB", "BOB", "SOB", "USE"})
	a, ok := s.Solve()
	is.True(ok)
	is.True(s.Consistent(a))
	is.Equal(len(a), len(g.Slots()))
	is.True(s.Nodes() > 0)
}

func TestSolveLogStream(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, crossDesc)
	s := New(g, []string{"CAT", "ATE", "DOG"})
	var buf bytes.Buffer
	s.SetLogStream(&buf)
	_, ok := s.Solve()
	is.True(ok)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.True(len(lines) > 0)
	for _, line := range lines {
		var node LogNode
		is.NoErr(json.Unmarshal([]byte(line), &node))
		is.True(node.Word != "")
	}
}
