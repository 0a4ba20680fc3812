// Package reference cross-checks the engine against independent move
// generators. Two oracles are available: dragontoothmg, a bitboard move
// generator that also drives perft comparisons, and notnil/chess, a
// complete rules library used as a second opinion on legal move sets.
package reference

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// Oracle names accepted by Moves and the CLI.
const (
	Dragontooth = "dragontooth"
	Notnil      = "notnil"
	Both        = "both"
)

// Oracles lists the individual oracles in a fixed order.
var Oracles = []string{Dragontooth, Notnil}

// DragontoothMoves returns the legal moves dragontoothmg generates for fen,
// in lowercase UCI form.
func DragontoothMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, strings.ToLower(moves[i].String()))
	}
	return out
}

// DragontoothPerft counts leaf nodes depth plies below fen with dragontoothmg.
func DragontoothPerft(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return dragontoothPerft(&board, depth)
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// NotnilMoves returns the legal moves notnil/chess generates for fen, in
// UCI form.
func NotnilMoves(fen string) ([]string, error) {
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "notnil: parse %q", fen)
	}
	game := notnil.NewGame(opt)
	pos := game.Position()
	valid := pos.ValidMoves()
	out := make([]string, 0, len(valid))
	for _, m := range valid {
		out = append(out, notnil.UCINotation{}.Encode(pos, m))
	}
	return out, nil
}

// Moves returns the legal moves of the named oracle.
func Moves(oracle, fen string) ([]string, error) {
	switch oracle {
	case Dragontooth:
		return DragontoothMoves(fen), nil
	case Notnil:
		return NotnilMoves(fen)
	}
	return nil, fmt.Errorf("unknown oracle %q", oracle)
}

// Diff is the difference between the engine's move set and an oracle's.
type Diff struct {
	Oracle  string
	FEN     string
	Missing []string // generated by the oracle but not by the engine
	Extra   []string // generated by the engine but not by the oracle
}

// Empty reports whether the two move sets agree.
func (d *Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// Err returns nil for an empty diff, otherwise an error wrapping
// ErrReferenceMismatch that lists the disagreeing moves.
func (d *Diff) Err() error {
	if d.Empty() {
		return nil
	}
	return errors.Wrapf(errors.ErrReferenceMismatch, "%s on %q: missing [%s] extra [%s]",
		d.Oracle, d.FEN, strings.Join(d.Missing, " "), strings.Join(d.Extra, " "))
}

// DiffMoves compares two move lists as sets. Both result slices are sorted.
func DiffMoves(engineMoves, oracleMoves []string) (missing, extra []string) {
	have := make(map[string]bool, len(engineMoves))
	for _, m := range engineMoves {
		have[m] = true
	}
	want := make(map[string]bool, len(oracleMoves))
	for _, m := range oracleMoves {
		want[m] = true
		if !have[m] {
			missing = append(missing, m)
		}
	}
	for _, m := range engineMoves {
		if !want[m] {
			extra = append(extra, m)
		}
	}
	slices.Sort(missing)
	slices.Sort(extra)
	return missing, extra
}

// Compare checks the legal moves of g against the named oracle, or against
// every oracle when oracle is Both. The first disagreement is returned as
// an error; the diffs are returned either way.
func Compare(g *engine.Game, oracle string) ([]*Diff, error) {
	names := []string{oracle}
	if oracle == Both {
		names = Oracles
	}

	fen := g.FEN()
	got := g.LegalMoves()
	var diffs []*Diff
	var firstErr error
	for _, name := range names {
		want, err := Moves(name, fen)
		if err != nil {
			return diffs, err
		}
		d := &Diff{Oracle: name, FEN: fen}
		d.Missing, d.Extra = DiffMoves(got, want)
		diffs = append(diffs, d)
		if firstErr == nil {
			firstErr = d.Err()
		}
	}
	return diffs, firstErr
}

// PerftMismatch walks the tree below g to depth and returns the first
// position, at the shallowest level where the subtree counts differ, whose
// move set disagrees with dragontoothmg. It returns nil when the counts agree.
func PerftMismatch(g *engine.Game, depth int) *Diff {
	if depth < 1 {
		return nil
	}
	fen := g.FEN()
	d := &Diff{Oracle: Dragontooth, FEN: fen}
	d.Missing, d.Extra = DiffMoves(g.LegalMoves(), DragontoothMoves(fen))
	if !d.Empty() {
		return d
	}
	for _, m := range g.Moves() {
		if err := g.Push(m); err != nil {
			panic(fmt.Sprintf("reference: generated move %s rejected: %v", m, err))
		}
		var found *Diff
		if perft.Count(g, depth-1) != DragontoothPerft(g.FEN(), depth-1) {
			found = PerftMismatch(g, depth-1)
		}
		g.UndoMove()
		if found != nil {
			return found
		}
	}
	return nil
}
