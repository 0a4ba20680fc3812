package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game owns a position, its move counters, its derived legality state and
// the undo history. A Game is not safe for concurrent use; Clone it to
// explore branches in parallel.
type Game struct {
	pos      Position
	halfMove int
	fullMove int
	derived  *Derived
	over     bool
	history  []undoRecord
}

// NewGame creates a game from a FEN string. An empty string selects the
// standard starting position.
func NewGame(fen string) (*Game, error) {
	if fen == "" {
		fen = InitialFEN
	}
	pos, halfMove, fullMove, err := parseFEN(fen)
	if err != nil {
		return nil, err
	}

	g := &Game{pos: pos, halfMove: halfMove, fullMove: fullMove}
	if err := g.validate(); err != nil {
		return nil, errors.Wrapf(err, "position %q", fen)
	}
	return g, nil
}

// NewStandardGame creates a game at the standard starting position.
func NewStandardGame() *Game {
	g, err := NewGame(InitialFEN)
	if err != nil {
		panic(err)
	}
	return g
}

// validate derives the position and rejects ones where the side not to
// move is already in check.
func (g *Game) validate() error {
	d, err := Derive(&g.pos)
	if err != nil {
		return err
	}
	them := g.pos.Turn.Opposite()
	if kings := g.pos.Board.Find(them, chess.King); isSquareAttacked(&g.pos.Board, kings[0], g.pos.Turn) {
		return errors.Wrapf(errors.ErrIllegalPosition, "%s king is in check with %s to move", them, g.pos.Turn)
	}
	g.setDerived(d)
	return nil
}

// refresh re-runs the pipeline after a mutation. A failure here means the
// position was corrupted, which cannot happen from a validated start.
func (g *Game) refresh() {
	d, err := Derive(&g.pos)
	if err != nil {
		panic(err)
	}
	g.setDerived(d)
}

// setDerived installs derived state and evaluates the game-over condition.
func (g *Game) setDerived(d *Derived) {
	g.derived = d
	g.over = len(d.Moves) == 0 || g.pos.Board.Count() == 2
}

// Clone returns an independent copy of the game, history included.
func (g *Game) Clone() *Game {
	c := *g
	c.history = make([]undoRecord, len(g.history), cap(g.history))
	copy(c.history, g.history)
	return &c
}

// Board returns a snapshot of the board.
func (g *Game) Board() chess.Board {
	return g.pos.Board
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq chess.Square) chess.Piece {
	return g.pos.Board.Get(sq)
}

// Position returns a copy of the position.
func (g *Game) Position() Position {
	return g.pos
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.pos.Turn
}

// Castling returns the castling rights.
func (g *Game) Castling() chess.CastlingRights {
	return g.pos.Castling
}

// EnPassant returns the en passant target square, or NoSquare.
func (g *Game) EnPassant() chess.Square {
	return g.pos.EnPassant
}

// HalfMoveClock returns the number of half-moves since the last pawn move or capture.
func (g *Game) HalfMoveClock() int {
	return g.halfMove
}

// FullMoveNumber returns the full-move number, incremented after Black moves.
func (g *Game) FullMoveNumber() int {
	return g.fullMove
}

// Derived returns the derived legality state for the current position.
func (g *Game) Derived() *Derived {
	return g.derived
}

// CheckingPieces returns the squares of the pieces giving check to the side to move.
func (g *Game) CheckingPieces() []chess.Square {
	return append([]chess.Square(nil), g.derived.Checkers...)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return len(g.derived.Checkers) > 0
}

// Moves returns the legal moves of the side to move.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.derived.Moves...)
}

// LegalMoves returns the legal moves of the side to move in long algebraic notation.
func (g *Game) LegalMoves() []string {
	out := make([]string, len(g.derived.Moves))
	for i, m := range g.derived.Moves {
		out[i] = m.String()
	}
	return out
}

// PossibleMoves returns the legal moves of the piece on sq.
func (g *Game) PossibleMoves(sq chess.Square) []chess.Move {
	return g.derived.PossibleMoves(sq)
}

// AttackedSquares maps each piece of the side not to move, keyed by its
// square, to the squares it attacks.
func (g *Game) AttackedSquares() map[chess.Square][]chess.Square {
	out := make(map[chess.Square][]chess.Square, len(g.derived.Attacks))
	for _, a := range g.derived.Attacks {
		out[a.From] = a.Squares.Squares()
	}
	return out
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.history))
	for i, rec := range g.history {
		out[i] = rec.move
	}
	return out
}
