package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MakeMove applies a move given in long algebraic notation.
// Returns true if the move was applied successfully; a rejected move leaves
// the game untouched.
func (g *Game) MakeMove(text string) bool {
	return g.Play(text) == nil
}

// Play applies a move given in long algebraic notation, reporting why a
// rejected move was refused as a *errors.MoveError.
func (g *Game) Play(text string) error {
	m, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	return g.push(m, text)
}

// Push applies a move value.
func (g *Game) Push(m chess.Move) error {
	return g.push(m, "")
}

func (g *Game) push(m chess.Move, text string) error {
	piece := g.pos.Board.Get(m.From)
	var reason errors.MoveReason
	switch {
	case piece.IsEmpty():
		reason = errors.NoPieceAtSource
	case piece.Colour != g.pos.Turn:
		reason = errors.WrongTurn
	case !g.derived.contains(m):
		reason = errors.NotPossible
	default:
		g.apply(m)
		return nil
	}
	if text == "" {
		text = m.String()
	}
	return &errors.MoveError{Move: text, Reason: reason}
}

// apply mutates the game for a move already known to be legal.
//
// Side effects follow a fixed precedence, first match wins: promotion,
// double pawn push, en passant capture, castling, other king move, rook
// leaving its corner. A rook captured on its corner clears that right
// whatever the mover was.
func (g *Game) apply(m chess.Move) {
	pos := &g.pos
	board := &pos.Board
	mover := board[m.From]
	colour := mover.Colour

	rec := undoRecord{
		move:       m,
		moved:      mover,
		capturedAt: chess.NoSquare,
		rookFrom:   chess.NoSquare,
		rookTo:     chess.NoSquare,
		castling:   pos.Castling,
		enPassant:  pos.EnPassant,
		halfMove:   g.halfMove,
		fullMove:   g.fullMove,
		derived:    g.derived,
	}
	if target := board[m.To]; !target.IsEmpty() {
		rec.captured = target
		rec.capturedAt = m.To
	}

	placed := mover
	placed.Moved = true
	enPassant := chess.NoSquare

	switch {
	case mover.Kind == chess.Pawn && m.To.Rank() == colour.PromotionRank():
		placed = chess.NewPiece(colour, m.Promotion, m.To)
		placed.Moved = true

	case mover.Kind == chess.Pawn && abs(m.To.Rank()-m.From.Rank()) == 2:
		enPassant = chess.NewSquare((m.From.Rank()+m.To.Rank())/2, m.From.File())

	case isEnPassant(board, m, pos.EnPassant):
		victim := enPassantVictim(m)
		rec.captured = board.Clear(victim)
		rec.capturedAt = victim

	case isCastle(board, m):
		geom := chess.CastlingGeometry(colour, castleSide(m))
		rook := board.Clear(geom.RookFrom)
		rec.rook = rook
		rec.rookFrom, rec.rookTo = geom.RookFrom, geom.RookTo
		rook.Moved = true
		board.Set(geom.RookTo, rook)
		pos.Castling = pos.Castling.ClearColour(colour)

	case mover.Kind == chess.King:
		pos.Castling = pos.Castling.ClearColour(colour)

	case mover.Kind == chess.Rook:
		if chess.CastlingGeometry(colour, mover.Side).RookFrom == m.From {
			pos.Castling = pos.Castling.Clear(colour, mover.Side)
		}
	}

	if rec.captured.Kind == chess.Rook {
		pos.Castling = clearRookRights(pos.Castling, rec.captured.Colour, rec.capturedAt)
	}

	board.Clear(m.From)
	board.Set(m.To, placed)
	pos.EnPassant = enPassant

	if mover.Kind == chess.Pawn || !rec.captured.IsEmpty() {
		g.halfMove = 0
	} else {
		g.halfMove++
	}
	if colour == chess.Black {
		g.fullMove++
	}
	pos.Turn = colour.Opposite()

	g.history = append(g.history, rec)
	g.refresh()
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
