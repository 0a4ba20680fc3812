// Package perft counts the leaf nodes of the legal move tree, the standard
// check that move generation and make/undo agree with reference engines.
package perft

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Count returns the number of leaf positions depth plies below g.
// The game is restored before Count returns.
func Count(g *engine.Game, depth int) uint64 {
	return count(g, depth, nil)
}

// CountCached is Count with subtree results memoised in table.
func CountCached(g *engine.Game, depth int, table *hashing.ThreadSafePerftTable) uint64 {
	return count(g, depth, table)
}

func count(g *engine.Game, depth int, table *hashing.ThreadSafePerftTable) uint64 {
	if depth == 0 {
		return 1
	}
	moves := g.Derived().Moves
	if depth == 1 {
		return uint64(len(moves))
	}

	var key uint64
	if table != nil {
		key = hashing.GameKey(g)
		if nodes, ok := table.Lookup(key, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range moves {
		if err := g.Push(m); err != nil {
			panic(fmt.Sprintf("perft: generated move %s rejected: %v", m, err))
		}
		nodes += count(g, depth-1, table)
		g.UndoMove()
	}

	if table != nil {
		table.Store(key, depth, nodes)
	}
	return nodes
}

// Report is the result of a divide run: node counts per root move.
type Report struct {
	Depth int
	Nodes uint64
	Moves map[string]uint64
}

// SortedMoves returns the root moves in lexical order.
func (r *Report) SortedMoves() []string {
	keys := maps.Keys(r.Moves)
	slices.Sort(keys)
	return keys
}

// String renders the report in the usual divide format: one "move: nodes"
// line per root move, then the total.
func (r *Report) String() string {
	var sb strings.Builder
	for _, m := range r.SortedMoves() {
		fmt.Fprintf(&sb, "%s: %d\n", m, r.Moves[m])
	}
	fmt.Fprintf(&sb, "Total: %d\n", r.Nodes)
	return sb.String()
}

// Divide counts nodes below each root move of g, sequentially.
func Divide(g *engine.Game, depth int) *Report {
	r := &Report{Depth: depth, Moves: make(map[string]uint64)}
	if depth < 1 {
		r.Nodes = 1
		return r
	}
	for _, m := range g.Moves() {
		if err := g.Push(m); err != nil {
			panic(fmt.Sprintf("perft: generated move %s rejected: %v", m, err))
		}
		n := Count(g, depth-1)
		g.UndoMove()
		r.Moves[m.String()] = n
		r.Nodes += n
	}
	return r
}
