package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnGenerator handles pawns, whose attacks differ from their moves.
type pawnGenerator struct{}

// attacks returns the two forward diagonals regardless of occupancy.
func (pawnGenerator) attacks(_ *chess.Board, from chess.Square, colour chess.Colour) chess.SquareSet {
	var set chess.SquareSet
	dir := colour.Forward()
	for _, df := range [2]int{-1, 1} {
		if to := from.Offset(dir, df); to != chess.NoSquare {
			set = set.Add(to)
		}
	}
	return set
}

func (g pawnGenerator) moves(ctx *moveContext, from chess.Square, dst []chess.Move) []chess.Move {
	dir := ctx.colour.Forward()

	// Forward moves are blocked by any occupant.
	one := from.Offset(dir, 0)
	if one != chess.NoSquare && ctx.board[one].IsEmpty() {
		dst = appendPawnMove(dst, from, one, ctx.colour)
		if from.Rank() == ctx.colour.PawnRank() {
			two := one.Offset(dir, 0)
			if two != chess.NoSquare && ctx.board[two].IsEmpty() {
				dst = append(dst, chess.Move{From: from, To: two})
			}
		}
	}

	for rest := g.attacks(ctx.board, from, ctx.colour); rest != 0; {
		to := rest.Pop()
		if ctx.enemy.Has(to) {
			dst = appendPawnMove(dst, from, to, ctx.colour)
			continue
		}
		if to == ctx.enPassant {
			victim := ctx.board[enPassantVictim(chess.Move{From: from, To: to})]
			if victim.Kind == chess.Pawn && victim.Colour != ctx.colour {
				dst = append(dst, chess.Move{From: from, To: to})
			}
		}
	}
	return dst
}

// appendPawnMove appends one move, or one per promotion kind when the pawn
// reaches the far rank.
func appendPawnMove(dst []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if to.Rank() != colour.PromotionRank() {
		return append(dst, chess.Move{From: from, To: to})
	}
	for _, kind := range chess.PromotionKinds {
		dst = append(dst, chess.Move{From: from, To: to, Promotion: kind})
	}
	return dst
}

// isEnPassant reports whether m, made by the piece on m.From, is an en passant capture.
func isEnPassant(b *chess.Board, m chess.Move, enPassant chess.Square) bool {
	return enPassant != chess.NoSquare && m.To == enPassant &&
		b[m.From].Kind == chess.Pawn && m.From.File() != m.To.File() && b[m.To].IsEmpty()
}

// enPassantVictim returns the square of the pawn removed by an en passant capture.
func enPassantVictim(m chess.Move) chess.Square {
	return chess.NewSquare(m.From.Rank(), m.To.File())
}
