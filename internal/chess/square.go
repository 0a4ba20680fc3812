package chess

import (
	"fmt"
	"math/bits"
)

// Square is a board square indexed rank-major from a8 (0) to h1 (63).
type Square int8

// NoSquare marks an absent square, e.g. no en passant target.
const NoSquare Square = -1

// NewSquare builds a square from a rank index (0 = rank 8) and a file index (0 = file a).
// It returns NoSquare when either index is off the board.
func NewSquare(rank, file int) Square {
	if !OnBoard(rank, file) {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// OnBoard reports whether the rank and file indices lie on the board.
func OnBoard(rank, file int) bool {
	return rank >= 0 && rank < BoardSize && file >= 0 && file < BoardSize
}

// Rank returns the rank index of the square.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the file index of the square.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Valid reports whether s names a square on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square dr ranks and df files away, or NoSquare.
func (s Square) Offset(dr, df int) Square {
	return NewSquare(s.Rank()+dr, s.File()+df)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{Files[s.File()], Ranks[s.Rank()]})
}

// FileIndex converts a file character to its index, or -1.
func FileIndex(c byte) int {
	if c >= 'a' && c <= 'h' {
		return int(c - 'a')
	}
	return -1
}

// RankIndex converts a rank character to its index, or -1.
func RankIndex(c byte) int {
	if c >= '1' && c <= '8' {
		return int('8' - c)
	}
	return -1
}

// ParseSquare converts algebraic notation such as "e4" to a square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("square %q: want 2 characters", name)
	}
	file := FileIndex(name[0])
	rank := RankIndex(name[1])
	if file < 0 || rank < 0 {
		return NoSquare, fmt.Errorf("square %q: outside a1-h8", name)
	}
	return NewSquare(rank, file), nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// SquareSet is a set of squares stored as a 64-bit mask.
type SquareSet uint64

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	return s | 1<<uint(sq)
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq)) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Pop removes and returns the lowest-index square, or NoSquare when empty.
//
//	for rest := set; rest != 0; {
//		sq := rest.Pop()
//		...
//	}
func (s *SquareSet) Pop() Square {
	if *s == 0 {
		return NoSquare
	}
	sq := Square(bits.TrailingZeros64(uint64(*s)))
	*s &= *s - 1
	return sq
}

// Squares returns the members in ascending index order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, Square(bits.TrailingZeros64(rest)))
	}
	return out
}

// Direction returns the unit step from a towards b when they share a rank,
// file or diagonal. ok is false for unaligned or identical squares.
func Direction(a, b Square) (dr, df int, ok bool) {
	rankDiff := b.Rank() - a.Rank()
	fileDiff := b.File() - a.File()
	if rankDiff == 0 && fileDiff == 0 {
		return 0, 0, false
	}
	if rankDiff != 0 && fileDiff != 0 && abs(rankDiff) != abs(fileDiff) {
		return 0, 0, false
	}
	return sign(rankDiff), sign(fileDiff), true
}

// Between returns the squares strictly between a and b along their shared line.
// The set is empty when the squares are adjacent or unaligned.
func Between(a, b Square) SquareSet {
	dr, df, ok := Direction(a, b)
	if !ok {
		return 0
	}
	var set SquareSet
	for sq := a.Offset(dr, df); sq != b && sq != NoSquare; sq = sq.Offset(dr, df) {
		set = set.Add(sq)
	}
	return set
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
