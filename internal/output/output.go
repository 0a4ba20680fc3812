// Package output renders game states, perft reports and reference diffs
// as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/reference"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes the board, the FEN, the status line, the legal moves
// and the move history of g.
func OutputGame(g *engine.Game, cfg *config.Config, w io.Writer) {
	if cfg.Output.ShowBoard {
		b := g.Board()
		fmt.Fprint(w, b.Draw())
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	fmt.Fprintln(w, statusLine(g))

	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	ow.Write("Moves:")
	for _, m := range sortedMoves(g) {
		ow.Write(m)
	}
	ow.NewLine()

	if g.Ply() > 0 {
		outputHistory(g, ow)
	}
}

func statusLine(g *engine.Game) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s to move", g.Turn())
	if checkers := g.CheckingPieces(); len(checkers) > 0 {
		names := make([]string, len(checkers))
		for i, sq := range checkers {
			names[i] = sq.String()
		}
		fmt.Fprintf(&sb, ", check from %s", strings.Join(names, " "))
	}
	if outcome := g.Outcome(); outcome != chess.Ongoing {
		fmt.Fprintf(&sb, ", %s", outcome)
	}
	return sb.String()
}

// outputHistory writes the played moves with move numbers.
func outputHistory(g *engine.Game, ow *OutputWriter) {
	history := g.History()
	isWhite, moveNum := historyStart(g)

	ow.Write("History:")
	for i, m := range history {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(m.String())
		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	ow.NewLine()
}

// historyStart works back from the current clocks to the side and move
// number of the first played move.
func historyStart(g *engine.Game) (isWhite bool, moveNum int) {
	plies := g.Ply()
	startTurn := g.Turn()
	if plies%2 == 1 {
		startTurn = startTurn.Opposite()
	}
	blackMoves := plies / 2
	if startTurn == chess.Black {
		blackMoves = (plies + 1) / 2
	}
	return startTurn == chess.White, g.FullMoveNumber() - blackMoves
}

func sortedMoves(g *engine.Game) []string {
	moves := g.LegalMoves()
	slices.Sort(moves)
	return moves
}

// OutputReport writes a perft or divide report.
func OutputReport(r *perft.Report, w io.Writer) {
	if len(r.Moves) > 0 {
		fmt.Fprint(w, r.String())
		return
	}
	fmt.Fprintf(w, "Depth %d: %d\n", r.Depth, r.Nodes)
}

// OutputDiffs writes one line per oracle: "ok" when it agrees, otherwise
// the moves each side is missing.
func OutputDiffs(diffs []*reference.Diff, w io.Writer) {
	for _, d := range diffs {
		if d.Empty() {
			fmt.Fprintf(w, "%s: ok\n", d.Oracle)
			continue
		}
		fmt.Fprintf(w, "%s: mismatch\n", d.Oracle)
		if len(d.Missing) > 0 {
			fmt.Fprintf(w, "  missing: %s\n", strings.Join(d.Missing, " "))
		}
		if len(d.Extra) > 0 {
			fmt.Fprintf(w, "  extra: %s\n", strings.Join(d.Extra, " "))
		}
	}
}
