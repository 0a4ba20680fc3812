// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank-index step a pawn of this colour advances by.
// Rank index 0 is rank 8, so White moves towards lower indices.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRank returns the rank index pawns of this colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRank returns the rank index on which pawns of this colour promote.
func (c Colour) PromotionRank() int {
	if c == White {
		return 0
	}
	return 7
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsSlider reports whether the kind moves along rays.
func (k Kind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}

// CastleSide distinguishes the two castling wings.
type CastleSide int

const (
	NoSide CastleSide = iota
	Kingside
	Queenside
)

// String returns the string representation of a castling side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "Kingside"
	case Queenside:
		return "Queenside"
	}
	return "None"
}

// Constants for board dimensions and notation alphabets.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	// Files is indexed by file index, Ranks by rank index (index 0 = rank 8).
	Files = "abcdefgh"
	Ranks = "87654321"
)

// Outcome summarises how a game stands.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	BareKings
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case BareKings:
		return "bare kings"
	}
	return "ongoing"
}
