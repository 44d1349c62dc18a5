package grid

import (
	"fmt"
	"strings"
)

// Letters projects an assignment onto the grid, returning one rune per
// cell; zero for an unfilled open cell and for blocked cells.
func (g *Grid) Letters(assignment map[Slot]string) [][]rune {
	letters := make([][]rune, g.height)
	for i := range letters {
		letters[i] = make([]rune, g.width)
	}
	for slot, word := range assignment {
		for k, ch := range word {
			row, col := slot.Cell(k)
			letters[row][col] = ch
		}
	}
	return letters
}

// ToDisplayText returns a printable representation of the grid with
// the given (possibly partial) assignment filled in.
func (g *Grid) ToDisplayText(assignment map[Slot]string) string {
	letters := g.Letters(assignment)
	var str string
	row := "   "
	for i := 0; i < g.width; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", g.width*2) + "\n"
	for i := 0; i < g.height; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < g.width; j++ {
			switch {
			case !g.open[i][j]:
				row = row + "# "
			case letters[i][j] != 0:
				row = row + string(letters[i][j]) + " "
			default:
				row = row + "  "
			}
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", g.width*2) + "\n"
	return "\n" + str
}
