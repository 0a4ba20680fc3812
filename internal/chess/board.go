package chess

// Piece is a piece value held directly by a board square.
// The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind

	// Moved is set once the piece has left its starting square.
	Moved bool

	// Side is the castling wing a rook belongs to, fixed when the rook is created.
	Side CastleSide
}

// NewPiece creates a piece of the given colour and kind standing on sq.
// Rooks take their castling side from the file they are created on.
func NewPiece(colour Colour, kind Kind, sq Square) Piece {
	p := Piece{Colour: colour, Kind: kind}
	if kind == Rook {
		if sq.File() < 4 {
			p.Side = Queenside
		} else {
			p.Side = Kingside
		}
	}
	return p
}

// IsEmpty reports whether the value represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Board is the 8x8 grid, stored flat and rank-major from a8.
// Each occupied square owns its piece by value.
type Board [NumSquares]Piece

// Get returns the piece on sq; the zero Piece when empty or off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b[sq]
}

// Set places a piece on sq.
func (b *Board) Set(sq Square, p Piece) {
	b[sq] = p
}

// Clear empties sq and returns what stood there.
func (b *Board) Clear(sq Square) Piece {
	p := b[sq]
	b[sq] = Piece{}
	return p
}

// Occupied returns the set of non-empty squares.
func (b *Board) Occupied() SquareSet {
	var set SquareSet
	for sq := Square(0); sq < NumSquares; sq++ {
		if !b[sq].IsEmpty() {
			set = set.Add(sq)
		}
	}
	return set
}

// Find returns every square holding a piece of the given colour and kind.
func (b *Board) Find(colour Colour, kind Kind) []Square {
	var squares []Square
	for sq := Square(0); sq < NumSquares; sq++ {
		if p := b[sq]; p.Kind == kind && p.Colour == colour {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	return b.Occupied().Len()
}

// Grid returns a rank-by-file snapshot of the board (grid[0] is rank 8).
func (b *Board) Grid() [BoardSize][BoardSize]Piece {
	var grid [BoardSize][BoardSize]Piece
	for sq := Square(0); sq < NumSquares; sq++ {
		grid[sq.Rank()][sq.File()] = b[sq]
	}
	return grid
}

// Draw renders the board as text, rank 8 first, '.' for empty squares.
func (b *Board) Draw() string {
	out := make([]byte, 0, (BoardSize*2+4)*(BoardSize+1))
	for rank := 0; rank < BoardSize; rank++ {
		out = append(out, Ranks[rank], ' ')
		for file := 0; file < BoardSize; file++ {
			p := b[NewSquare(rank, file)]
			if p.IsEmpty() {
				out = append(out, '.')
			} else {
				out = append(out, p.Letter())
			}
			if file < BoardSize-1 {
				out = append(out, ' ')
			}
		}
		out = append(out, '\n')
	}
	out = append(out, ' ', ' ')
	for file := 0; file < BoardSize; file++ {
		out = append(out, Files[file])
		if file < BoardSize-1 {
			out = append(out, ' ')
		}
	}
	out = append(out, '\n')
	return string(out)
}

// CastlingRights holds the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingFlag returns the flag for a colour and wing.
func CastlingFlag(colour Colour, side CastleSide) CastlingRights {
	switch {
	case colour == White && side == Kingside:
		return WhiteKingside
	case colour == White && side == Queenside:
		return WhiteQueenside
	case colour == Black && side == Kingside:
		return BlackKingside
	case colour == Black && side == Queenside:
		return BlackQueenside
	}
	return NoCastling
}

// Has reports whether the colour may still castle on the given wing.
func (c CastlingRights) Has(colour Colour, side CastleSide) bool {
	flag := CastlingFlag(colour, side)
	return flag != NoCastling && c&flag != 0
}

// Clear removes one flag.
func (c CastlingRights) Clear(colour Colour, side CastleSide) CastlingRights {
	return c &^ CastlingFlag(colour, side)
}

// ClearColour removes both flags of a colour.
func (c CastlingRights) ClearColour(colour Colour) CastlingRights {
	return c.Clear(colour, Kingside).Clear(colour, Queenside)
}

// String returns the FEN castling field, "-" when no rights remain.
func (c CastlingRights) String() string {
	var out []byte
	for _, f := range []struct {
		flag   CastlingRights
		letter byte
	}{
		{WhiteKingside, 'K'},
		{WhiteQueenside, 'Q'},
		{BlackKingside, 'k'},
		{BlackQueenside, 'q'},
	} {
		if c&f.flag != 0 {
			out = append(out, f.letter)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// CastlingSquares names the squares involved in one castling move.
type CastlingSquares struct {
	KingFrom, KingTo Square
	RookFrom, RookTo Square
}

// CastlingGeometry returns the king and rook squares for castling.
func CastlingGeometry(colour Colour, side CastleSide) CastlingSquares {
	rank := colour.HomeRank()
	if side == Kingside {
		return CastlingSquares{
			KingFrom: NewSquare(rank, 4), KingTo: NewSquare(rank, 6),
			RookFrom: NewSquare(rank, 7), RookTo: NewSquare(rank, 5),
		}
	}
	return CastlingSquares{
		KingFrom: NewSquare(rank, 4), KingTo: NewSquare(rank, 2),
		RookFrom: NewSquare(rank, 0), RookTo: NewSquare(rank, 3),
	}
}
