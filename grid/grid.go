// Package grid implements the puzzle model for the crossword filler:
// the layout of open and blocked cells, the slots carved out of that
// layout, and the crossing relation between slots.
package grid

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// OpenCell marks a fillable cell in a structure file. Any other
// character is a blocked cell.
const OpenCell = '_'

var ErrNoSlots = errors.New("structure has no runs of two or more open cells")

// A Grid is the fixed layout of a puzzle plus everything derived from
// it: the slot set, the neighbor relation and the overlap indices for
// every crossing pair. It is immutable after creation.
type Grid struct {
	width  int
	height int
	open   [][]bool

	slots     []Slot
	neighbors map[Slot][]Slot
	overlaps  map[[2]Slot][2]int
}

// MakeGrid creates a grid from a row-per-string description, with
// underscores marking open cells. Rows shorter than the widest row are
// padded with blocked cells.
func MakeGrid(desc []string) (*Grid, error) {
	height := len(desc)
	width := 0
	for _, row := range desc {
		if len(row) > width {
			width = len(row)
		}
	}
	g := &Grid{width: width, height: height}
	g.open = make([][]bool, height)
	for i, row := range desc {
		g.open[i] = make([]bool, width)
		for j, c := range row {
			g.open[i][j] = c == OpenCell
		}
	}
	g.findSlots()
	if len(g.slots) == 0 {
		return nil, ErrNoSlots
	}
	g.findCrossings()
	log.Debug().Int("width", width).Int("height", height).
		Int("slots", len(g.slots)).Msg("made grid")
	return g, nil
}

// FromFile reads a structure file and creates a grid from it.
func FromFile(filename string) (*Grid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	text := strings.TrimRight(string(data), "\r\n")
	var desc []string
	for _, line := range strings.Split(text, "\n") {
		desc = append(desc, strings.TrimRight(line, "\r"))
	}
	return MakeGrid(desc)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Open returns whether the given cell is fillable. Out-of-bounds cells
// count as blocked.
func (g *Grid) Open(row, col int) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	return g.open[row][col]
}

// Slots returns every slot of the grid, in a deterministic order:
// row-major by starting cell, across before down.
func (g *Grid) Slots() []Slot {
	return g.slots
}

// Neighbors returns the slots that cross s.
func (g *Grid) Neighbors(s Slot) []Slot {
	return g.neighbors[s]
}

// Overlap returns the crossing indices for the ordered pair (a, b):
// cell ia of a is the same grid cell as cell ib of b. ok is false when
// the slots do not cross.
func (g *Grid) Overlap(a, b Slot) (ia, ib int, ok bool) {
	ov, ok := g.overlaps[[2]Slot{a, b}]
	if !ok {
		return 0, 0, false
	}
	return ov[0], ov[1], true
}

// findSlots scans for maximal runs of open cells. Runs of a single
// cell do not make a slot.
func (g *Grid) findSlots() {
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			if !g.open[i][j] {
				continue
			}
			// A slot starts wherever a run is not preceded by an
			// open cell.
			if !g.Open(i, j-1) {
				length := 0
				for g.Open(i, j+length) {
					length++
				}
				if length > 1 {
					g.slots = append(g.slots, Slot{Row: i, Col: j, Dir: Across, Length: length})
				}
			}
			if !g.Open(i-1, j) {
				length := 0
				for g.Open(i+length, j) {
					length++
				}
				if length > 1 {
					g.slots = append(g.slots, Slot{Row: i, Col: j, Dir: Down, Length: length})
				}
			}
		}
	}
}

func (g *Grid) findCrossings() {
	g.neighbors = make(map[Slot][]Slot)
	g.overlaps = make(map[[2]Slot][2]int)
	// index of each slot's cells, for intersecting pairs
	cellIdx := make(map[Slot]map[[2]int]int)
	for _, s := range g.slots {
		idx := make(map[[2]int]int)
		for i, cell := range s.Cells() {
			idx[cell] = i
		}
		cellIdx[s] = idx
	}
	for _, a := range g.slots {
		for _, b := range g.slots {
			if a == b {
				continue
			}
			for cell, ia := range cellIdx[a] {
				if ib, ok := cellIdx[b][cell]; ok {
					g.overlaps[[2]Slot{a, b}] = [2]int{ia, ib}
					g.neighbors[a] = append(g.neighbors[a], b)
					break
				}
			}
		}
	}
}
