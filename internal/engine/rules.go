package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsGameOver reports whether the game has ended: either only the two kings
// remain, or the side to move has no legal moves. Callers tell checkmate from
// stalemate by combining this with CheckingPieces, or use Outcome.
func (g *Game) IsGameOver() bool {
	return g.over
}

// Outcome classifies the current position.
func (g *Game) Outcome() chess.Outcome {
	switch {
	case len(g.derived.Moves) == 0 && g.InCheck():
		return chess.Checkmate
	case len(g.derived.Moves) == 0:
		return chess.Stalemate
	case g.pos.Board.Count() == 2:
		return chess.BareKings
	}
	return chess.Ongoing
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (g *Game) IsCheckmate() bool {
	return g.Outcome() == chess.Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (g *Game) IsStalemate() bool {
	return g.Outcome() == chess.Stalemate
}
