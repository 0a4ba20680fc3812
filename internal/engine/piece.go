package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// generator computes the geometry of one piece kind.
//
// attacks returns every square the piece on from attacks, ignoring pins on
// the piece itself. moves returns the piece's raw destinations; pin and
// check filtering is applied afterwards by Derive.
type generator interface {
	attacks(b *chess.Board, from chess.Square, colour chess.Colour) chess.SquareSet
	moves(ctx *moveContext, from chess.Square, dst []chess.Move) []chess.Move
}

// generators is the single dispatch point for kind-specific behaviour.
var generators = [chess.NumKinds]generator{
	chess.Pawn:   pawnGenerator{},
	chess.Knight: leaperGenerator{table: &knightAttacks},
	chess.Bishop: sliderGenerator{dirs: diagonalDirs[:]},
	chess.Rook:   sliderGenerator{dirs: straightDirs[:]},
	chess.Queen:  sliderGenerator{dirs: queenDirs[:]},
	chess.King:   kingGenerator{},
}

// moveContext carries the board-wide facts piece generators need.
type moveContext struct {
	board     *chess.Board
	colour    chess.Colour
	own       chess.SquareSet
	enemy     chess.SquareSet
	enPassant chess.Square
	castling  chess.CastlingRights

	// danger holds squares the king may not step onto: every attacked
	// square plus the square behind the king on each slider check ray.
	danger  chess.SquareSet
	inCheck bool
}

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = [8][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	knightAttacks [chess.NumSquares]chess.SquareSet
	kingAttacks   [chess.NumSquares]chess.SquareSet
)

func init() {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		for _, off := range knightOffsets {
			if to := sq.Offset(off[0], off[1]); to != chess.NoSquare {
				knightAttacks[sq] = knightAttacks[sq].Add(to)
			}
		}
		for _, off := range kingOffsets {
			if to := sq.Offset(off[0], off[1]); to != chess.NoSquare {
				kingAttacks[sq] = kingAttacks[sq].Add(to)
			}
		}
	}
}

// appendTargets appends a move from -> to for every square in targets.
func appendTargets(dst []chess.Move, from chess.Square, targets chess.SquareSet) []chess.Move {
	for targets != 0 {
		dst = append(dst, chess.Move{From: from, To: targets.Pop()})
	}
	return dst
}

// leaperGenerator handles pieces with a fixed jump pattern (knights).
type leaperGenerator struct {
	table *[chess.NumSquares]chess.SquareSet
}

func (g leaperGenerator) attacks(_ *chess.Board, from chess.Square, _ chess.Colour) chess.SquareSet {
	return g.table[from]
}

func (g leaperGenerator) moves(ctx *moveContext, from chess.Square, dst []chess.Move) []chess.Move {
	return appendTargets(dst, from, g.table[from]&^ctx.own)
}

// sliderGenerator handles bishops, rooks and queens.
type sliderGenerator struct {
	dirs [][2]int
}

// attacks casts each ray up to and including the first occupied square,
// whichever colour stands there.
func (g sliderGenerator) attacks(b *chess.Board, from chess.Square, _ chess.Colour) chess.SquareSet {
	var set chess.SquareSet
	for _, dir := range g.dirs {
		for sq := from.Offset(dir[0], dir[1]); sq != chess.NoSquare; sq = sq.Offset(dir[0], dir[1]) {
			set = set.Add(sq)
			if !b[sq].IsEmpty() {
				break
			}
		}
	}
	return set
}

func (g sliderGenerator) moves(ctx *moveContext, from chess.Square, dst []chess.Move) []chess.Move {
	return appendTargets(dst, from, g.attacks(ctx.board, from, ctx.colour)&^ctx.own)
}

// movesAlong reports whether a slider of the given kind travels in direction (dr, df).
func movesAlong(kind chess.Kind, dr, df int) bool {
	diagonal := dr != 0 && df != 0
	switch kind {
	case chess.Bishop:
		return diagonal
	case chess.Rook:
		return !diagonal
	case chess.Queen:
		return true
	}
	return false
}
