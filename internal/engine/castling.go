package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// kingGenerator handles the king's single steps and castling.
type kingGenerator struct{}

// attacks returns the adjacent squares unconditionally; the king does not
// avoid self-check when computing what it attacks.
func (kingGenerator) attacks(_ *chess.Board, from chess.Square, _ chess.Colour) chess.SquareSet {
	return kingAttacks[from]
}

func (kingGenerator) moves(ctx *moveContext, from chess.Square, dst []chess.Move) []chess.Move {
	dst = appendTargets(dst, from, kingAttacks[from]&^ctx.own&^ctx.danger)
	for _, side := range [2]chess.CastleSide{chess.Kingside, chess.Queenside} {
		if canCastle(ctx, from, side) {
			geom := chess.CastlingGeometry(ctx.colour, side)
			dst = append(dst, chess.Move{From: from, To: geom.KingTo})
		}
	}
	return dst
}

// canCastle checks castling legality for a king standing on from.
func canCastle(ctx *moveContext, from chess.Square, side chess.CastleSide) bool {
	if ctx.inCheck || !ctx.castling.Has(ctx.colour, side) {
		return false
	}
	geom := chess.CastlingGeometry(ctx.colour, side)
	if from != geom.KingFrom {
		return false
	}

	rook := ctx.board[geom.RookFrom]
	if rook.Kind != chess.Rook || rook.Colour != ctx.colour {
		return false
	}

	// Every square strictly between king and rook must be empty.
	if chess.Between(geom.KingFrom, geom.RookFrom)&(ctx.own|ctx.enemy) != 0 {
		return false
	}

	// The king may not pass through or land on an attacked square.
	path := chess.Between(geom.KingFrom, geom.KingTo).Add(geom.KingTo)
	return path&ctx.danger == 0
}

// castleSide returns the wing a two-file king move castles towards.
func castleSide(m chess.Move) chess.CastleSide {
	if m.To.File() > m.From.File() {
		return chess.Kingside
	}
	return chess.Queenside
}

// isCastle reports whether m, made by the piece on m.From, is a castling move.
func isCastle(b *chess.Board, m chess.Move) bool {
	if b[m.From].Kind != chess.King {
		return false
	}
	diff := m.To.File() - m.From.File()
	return diff == 2 || diff == -2
}

// clearRookRights removes the castling right tied to a rook corner, if any.
// It is used both for a rook leaving its corner and a rook captured there.
func clearRookRights(rights chess.CastlingRights, colour chess.Colour, sq chess.Square) chess.CastlingRights {
	for _, side := range [2]chess.CastleSide{chess.Kingside, chess.Queenside} {
		if chess.CastlingGeometry(colour, side).RookFrom == sq {
			rights = rights.Clear(colour, side)
		}
	}
	return rights
}
