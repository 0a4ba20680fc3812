package chess

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is a from/to square pair with an optional promotion kind.
type Move struct {
	From, To  Square
	Promotion Kind // NoKind unless the move promotes
}

// promotionLetters maps promotion kinds to their notation letters.
var promotionLetters = map[Kind]byte{
	Queen:  'q',
	Rook:   'r',
	Bishop: 'b',
	Knight: 'n',
}

// String returns long algebraic notation: 4 characters, or 5 when promoting.
func (m Move) String() string {
	out := make([]byte, 0, 5)
	out = append(out, Files[m.From.File()], Ranks[m.From.Rank()])
	out = append(out, Files[m.To.File()], Ranks[m.To.Rank()])
	if c, ok := promotionLetters[m.Promotion]; ok {
		out = append(out, c)
	}
	return string(out)
}

// ParseMove converts long algebraic notation ("e2e4", "a7a8q") to a Move.
// Rejections are *errors.MoveError values.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, &errors.MoveError{Move: text, Reason: errors.BadLength}
	}
	fromFile, fromRank := FileIndex(text[0]), RankIndex(text[1])
	toFile, toRank := FileIndex(text[2]), RankIndex(text[3])
	if fromFile < 0 || fromRank < 0 || toFile < 0 || toRank < 0 {
		return Move{}, &errors.MoveError{Move: text, Reason: errors.BadNotation}
	}

	m := Move{
		From:      NewSquare(fromRank, fromFile),
		To:        NewSquare(toRank, toFile),
		Promotion: NoKind,
	}
	if len(text) == 5 {
		switch text[4] {
		case 'q', 'r', 'b', 'n':
			m.Promotion = KindFromLetter(text[4])
		default:
			return Move{}, &errors.MoveError{Move: text, Reason: errors.BadNotation}
		}
	}
	return m, nil
}
