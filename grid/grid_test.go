package grid

import (
	"testing"

	"github.com/matryer/is"
)

// a 3-length across slot crossed at its middle by a 3-length down slot
var crossDesc = []string{
	"___",
	"#_#",
	"#_#",
}

func TestMakeGrid(t *testing.T) {
	is := is.New(t)
	g, err := MakeGrid(crossDesc)
	is.NoErr(err)
	is.Equal(g.Width(), 3)
	is.Equal(g.Height(), 3)
	is.Equal(g.Slots(), []Slot{
		{Row: 0, Col: 0, Dir: Across, Length: 3},
		{Row: 0, Col: 1, Dir: Down, Length: 3},
	})
}

func TestMakeGridPadsShortRows(t *testing.T) {
	is := is.New(t)
	g, err := MakeGrid([]string{"____", "__"})
	is.NoErr(err)
	is.Equal(g.Width(), 4)
	is.True(!g.Open(1, 2))
	is.True(!g.Open(1, 3))
}

func TestMakeGridNoSlots(t *testing.T) {
	is := is.New(t)
	// single open cells only; runs of one don't make slots
	_, err := MakeGrid([]string{"_#_", "###", "_#_"})
	is.Equal(err, ErrNoSlots)
}

func TestOverlap(t *testing.T) {
	is := is.New(t)
	g, err := MakeGrid(crossDesc)
	is.NoErr(err)
	across := Slot{Row: 0, Col: 0, Dir: Across, Length: 3}
	down := Slot{Row: 0, Col: 1, Dir: Down, Length: 3}

	ia, ib, ok := g.Overlap(across, down)
	is.True(ok)
	is.Equal(ia, 1)
	is.Equal(ib, 0)

	// asymmetric indices, symmetric existence
	ia, ib, ok = g.Overlap(down, across)
	is.True(ok)
	is.Equal(ia, 0)
	is.Equal(ib, 1)

	_, _, ok = g.Overlap(across, across)
	is.True(!ok)
}

func TestNeighbors(t *testing.T) {
	is := is.New(t)
	g, err := MakeGrid([]string{
		"#___#",
		"#_##_",
		"#_##_",
		"#_##_",
		"#____",
	})
	is.NoErr(err)
	is.Equal(len(g.Slots()), 4)

	a1 := Slot{Row: 0, Col: 1, Dir: Across, Length: 3}
	d1 := Slot{Row: 0, Col: 1, Dir: Down, Length: 5}
	d2 := Slot{Row: 1, Col: 4, Dir: Down, Length: 4}
	a2 := Slot{Row: 4, Col: 1, Dir: Across, Length: 4}

	is.Equal(g.Neighbors(a1), []Slot{d1})
	is.Equal(g.Neighbors(d1), []Slot{a1, a2})
	is.Equal(g.Neighbors(a2), []Slot{d1, d2})
	is.Equal(g.Neighbors(d2), []Slot{a2})

	ia, ib, ok := g.Overlap(d1, a2)
	is.True(ok)
	is.Equal(ia, 4)
	is.Equal(ib, 0)
}

func TestSlotCells(t *testing.T) {
	is := is.New(t)
	s := Slot{Row: 2, Col: 1, Dir: Down, Length: 3}
	is.Equal(s.Cells(), [][2]int{{2, 1}, {3, 1}, {4, 1}})
	r, c := s.Cell(2)
	is.Equal(r, 4)
	is.Equal(c, 1)
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	g, err := MakeGrid(crossDesc)
	is.NoErr(err)
	across := Slot{Row: 0, Col: 0, Dir: Across, Length: 3}
	down := Slot{Row: 0, Col: 1, Dir: Down, Length: 3}
	assignment := map[Slot]string{across: "CAT", down: "ATE"}

	expected := "\n" +
		"   A B C \n" +
		"   ------\n" +
		" 1|C A T |\n" +
		" 2|# T # |\n" +
		" 3|# E # |\n" +
		"   ------\n"
	is.Equal(g.ToDisplayText(assignment), expected)
}

func TestFromFile(t *testing.T) {
	is := is.New(t)
	g, err := FromFile("testdata/structure1.txt")
	is.NoErr(err)
	is.Equal(g.Height(), 5)
	is.Equal(g.Width(), 5)
	is.Equal(len(g.Slots()), 4)
}
