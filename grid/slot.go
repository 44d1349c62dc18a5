package grid

import "fmt"

// A Direction is the orientation of a slot on the grid.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// A Slot is a maximal run of open cells in one direction. It is the
// variable of the fill problem. Slots are plain comparable values so
// they can be used as map keys.
type Slot struct {
	Row    int
	Col    int
	Dir    Direction
	Length int
}

func (s Slot) String() string {
	return fmt.Sprintf("%c%d-%s(%d)", 'A'+s.Col, s.Row+1, s.Dir, s.Length)
}

// Cell returns the coordinates of the idx-th cell of this slot.
func (s Slot) Cell(idx int) (row, col int) {
	if s.Dir == Across {
		return s.Row, s.Col + idx
	}
	return s.Row + idx, s.Col
}

// Cells returns the coordinates of every cell of this slot, in order.
func (s Slot) Cells() [][2]int {
	cells := make([][2]int, s.Length)
	for i := 0; i < s.Length; i++ {
		r, c := s.Cell(i)
		cells[i] = [2]int{r, c}
	}
	return cells
}
