// Package solver fills a crossword grid from a word pool. The puzzle
// is treated as a constraint satisfaction problem: every slot must get
// a word of its exact length, and crossing slots must agree on their
// shared letter. The solver enforces node consistency, propagates with
// AC-3, and then runs a heuristic backtracking search.
//
// Words are compared byte-wise; pools are expected to hold single-byte
// letters (the usual upper-cased A-Z lists).
package solver

import (
	"encoding/json"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/grid"
)

// A Domain is the set of words still considered possible for a slot.
// It only ever shrinks once the solver starts.
type Domain map[string]bool

func (d Domain) copy() Domain {
	cp := make(Domain, len(d))
	for w := range d {
		cp[w] = true
	}
	return cp
}

// An Assignment maps slots to the words placed in them. It is complete
// when every slot of the grid has an entry.
type Assignment map[grid.Slot]string

// An Arc is an ordered pair of crossing slots, the unit of work for
// AC-3.
type Arc struct {
	X, Y grid.Slot
}

// LogNode is one line of the optional search trace.
type LogNode struct {
	Slot  string `json:"slot" yaml:"slot"`
	Word  string `json:"word" yaml:"word"`
	Depth int    `json:"depth" yaml:"depth"`
	Nodes int    `json:"nodes" yaml:"nodes"`
}

// Solver holds the domain store for one solve attempt. Create a fresh
// one per attempt; domains are pruned in place and are not reusable
// after Solve returns.
type Solver struct {
	g       *grid.Grid
	domains map[grid.Slot]Domain

	requireDistinct bool
	nodes           int
	elapsed         time.Duration
	logStream       io.Writer
}

// New seeds every slot's domain from the full pool.
func New(g *grid.Grid, words []string) *Solver {
	s := &Solver{g: g, domains: make(map[grid.Slot]Domain)}
	for _, slot := range g.Slots() {
		dom := make(Domain, len(words))
		for _, w := range words {
			dom[w] = true
		}
		s.domains[slot] = dom
	}
	return s
}

// SetRequireDistinct makes the search refuse to place the same word in
// two different slots, crossing or not. Off by default; crossing slots
// always get distinct words regardless.
func (s *Solver) SetRequireDistinct(d bool) {
	s.requireDistinct = d
}

// SetLogStream sets a writer that receives one JSON line per search
// node. Must be called before Solve.
func (s *Solver) SetLogStream(l io.Writer) {
	s.logStream = l
}

// Nodes returns the number of search nodes expanded so far.
func (s *Solver) Nodes() int {
	return s.nodes
}

// Elapsed returns the duration of the last Solve call.
func (s *Solver) Elapsed() time.Duration {
	return s.elapsed
}

// DomainSize returns the number of words remaining for a slot.
func (s *Solver) DomainSize(slot grid.Slot) int {
	return len(s.domains[slot])
}

// Solve enforces node consistency, propagates with AC-3, and searches.
// ok is false when no complete assignment exists.
func (s *Solver) Solve() (a Assignment, ok bool) {
	start := time.Now()
	defer func() {
		s.elapsed = time.Since(start)
		log.Debug().Int("nodes", s.nodes).Bool("solved", ok).
			Dur("elapsed", s.elapsed).Msg("solve done")
	}()
	s.EnforceNodeConsistency()
	if !s.AC3(nil) {
		return nil, false
	}
	result := s.Backtrack(Assignment{})
	if result == nil {
		return nil, false
	}
	return result, true
}

func (s *Solver) logNode(slot grid.Slot, word string, depth int) {
	if s.logStream == nil {
		return
	}
	out, err := json.Marshal(LogNode{
		Slot: slot.String(), Word: word, Depth: depth, Nodes: s.nodes,
	})
	if err != nil {
		log.Err(err).Msg("marshalling log node")
		return
	}
	s.logStream.Write(out)
	io.WriteString(s.logStream, "\n")
}
