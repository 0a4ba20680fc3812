package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// undoRecord is the value snapshot needed to reverse one applied move.
type undoRecord struct {
	move  chess.Move
	moved chess.Piece // the mover as it stood on move.From

	captured   chess.Piece // zero when nothing was captured
	capturedAt chess.Square

	// Castling rook relocation; rookFrom is NoSquare for other moves.
	rook             chess.Piece
	rookFrom, rookTo chess.Square

	castling  chess.CastlingRights
	enPassant chess.Square
	halfMove  int
	fullMove  int

	// derived is the state Derive produced for the position before the
	// move; restoring it is equivalent to re-deriving.
	derived *Derived
}

// UndoMove reverts the most recent move. It is a no-op when no move has been played.
func (g *Game) UndoMove() {
	n := len(g.history)
	if n == 0 {
		return
	}
	rec := g.history[n-1]
	g.history = g.history[:n-1]

	board := &g.pos.Board
	board.Clear(rec.move.To)
	board.Set(rec.move.From, rec.moved)
	if !rec.captured.IsEmpty() {
		board.Set(rec.capturedAt, rec.captured)
	}
	if rec.rookFrom != chess.NoSquare {
		board.Clear(rec.rookTo)
		board.Set(rec.rookFrom, rec.rook)
	}

	g.pos.Castling = rec.castling
	g.pos.EnPassant = rec.enPassant
	g.pos.Turn = rec.moved.Colour
	g.halfMove = rec.halfMove
	g.fullMove = rec.fullMove
	g.setDerived(rec.derived)
}

// Ply returns the number of moves that can be undone.
func (g *Game) Ply() int {
	return len(g.history)
}
