package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// isSquareAttacked returns true if the square is attacked by the given colour.
// It probes outward from the target instead of building attack sets, so it
// suits one-off questions on scratch boards.
func isSquareAttacked(b *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one rank behind the target.
	back := -byColour.Forward()
	for _, df := range [2]int{-1, 1} {
		if p := b.Get(sq.Offset(back, df)); p.Kind == chess.Pawn && p.Colour == byColour {
			return true
		}
	}

	for rest := knightAttacks[sq]; rest != 0; {
		if p := b[rest.Pop()]; p.Kind == chess.Knight && p.Colour == byColour {
			return true
		}
	}

	for rest := kingAttacks[sq]; rest != 0; {
		if p := b[rest.Pop()]; p.Kind == chess.King && p.Colour == byColour {
			return true
		}
	}

	return slidingAttacker(b, sq, byColour, diagonalDirs[:], chess.Bishop) ||
		slidingAttacker(b, sq, byColour, straightDirs[:], chess.Rook)
}

// slidingAttacker scans each ray from sq and reports whether the first piece
// met is a byColour queen or the given slider kind.
func slidingAttacker(b *chess.Board, sq chess.Square, byColour chess.Colour, dirs [][2]int, kind chess.Kind) bool {
	for _, dir := range dirs {
		for cur := sq.Offset(dir[0], dir[1]); cur != chess.NoSquare; cur = cur.Offset(dir[0], dir[1]) {
			p := b[cur]
			if p.IsEmpty() {
				continue
			}
			if p.Colour == byColour && (p.Kind == kind || p.Kind == chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}

// enPassantExposesKing plays an en passant capture on a scratch board and
// reports whether the mover's king would then be attacked. Removing two pawns
// from one rank can open a line no pin scan sees.
func enPassantExposesKing(b *chess.Board, m chess.Move, king chess.Square, colour chess.Colour) bool {
	scratch := *b
	pawn := scratch.Clear(m.From)
	scratch.Clear(enPassantVictim(m))
	scratch.Set(m.To, pawn)
	return isSquareAttacked(&scratch, king, colour.Opposite())
}
