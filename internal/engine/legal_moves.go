package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Position is the board plus the metadata that legality depends on.
type Position struct {
	Board     chess.Board
	Turn      chess.Colour
	Castling  chess.CastlingRights
	EnPassant chess.Square
}

// Attack is the raw attack pattern of one piece of the side not to move.
type Attack struct {
	From    chess.Square
	Piece   chess.Piece
	Squares chess.SquareSet

	// KingInVision is set on a slider aligned with the enemy king along one
	// of its own rays with at most one piece in between. With nothing in
	// between the slider gives check; with one defender between, it pins.
	KingInVision bool
}

// Pin records a piece that may only move along the line to its pinner.
type Pin struct {
	Square chess.Square
	Pinner chess.Square
	Line   chess.SquareSet // squares between king and pinner, pinner included
}

// Derived is everything computed from a Position for the side to move.
// It is never modified after Derive returns.
type Derived struct {
	King     chess.Square
	Attacks  []Attack
	Attacked chess.SquareSet // union of all attack sets
	Checkers []chess.Square
	Pins     []Pin
	Moves    []chess.Move // legal moves, grouped by source square
}

// Derive runs the legality pipeline for pos: attacked squares of the side
// not to move, checking pieces, pins, then the legal moves of the side to move.
// It fails with ErrIllegalPosition when a side does not have exactly one king
// or more than two pieces give check.
func Derive(pos *Position) (*Derived, error) {
	board := &pos.Board
	us, them := pos.Turn, pos.Turn.Opposite()

	var own, enemy chess.SquareSet
	king, enemyKing := chess.NoSquare, chess.NoSquare
	d := &Derived{Attacks: make([]Attack, 0, 16)}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		p := board[sq]
		if p.IsEmpty() {
			continue
		}
		if p.Colour == us {
			own = own.Add(sq)
			if p.Kind == chess.King {
				if king != chess.NoSquare {
					return nil, errors.Wrapf(errors.ErrIllegalPosition, "two %s kings", us)
				}
				king = sq
			}
			continue
		}
		enemy = enemy.Add(sq)
		if p.Kind == chess.King {
			if enemyKing != chess.NoSquare {
				return nil, errors.Wrapf(errors.ErrIllegalPosition, "two %s kings", them)
			}
			enemyKing = sq
		}
	}
	if king == chess.NoSquare {
		return nil, errors.Wrapf(errors.ErrIllegalPosition, "no %s king", us)
	}
	if enemyKing == chess.NoSquare {
		return nil, errors.Wrapf(errors.ErrIllegalPosition, "no %s king", them)
	}
	d.King = king

	computeAttackedSquares(d, board, enemy, them)
	if err := computeCheckingPieces(d, board); err != nil {
		return nil, err
	}
	computePins(d, board, own|enemy, us)

	ctx := &moveContext{
		board:     board,
		colour:    us,
		own:       own,
		enemy:     enemy,
		enPassant: pos.EnPassant,
		castling:  pos.Castling,
		danger:    d.Attacked | behindKing(d, board),
		inCheck:   len(d.Checkers) > 0,
	}
	computeLegalMoves(d, ctx, own)
	return d, nil
}

// computeAttackedSquares fills the attack sets of every piece of colour them.
func computeAttackedSquares(d *Derived, board *chess.Board, enemy chess.SquareSet, them chess.Colour) {
	for rest := enemy; rest != 0; {
		from := rest.Pop()
		p := board[from]
		set := generators[p.Kind].attacks(board, from, them)
		d.Attacks = append(d.Attacks, Attack{From: from, Piece: p, Squares: set})
		d.Attacked |= set
	}
}

// computeCheckingPieces records every attacker whose set holds the king.
func computeCheckingPieces(d *Derived, board *chess.Board) error {
	for _, a := range d.Attacks {
		if a.Squares.Has(d.King) {
			d.Checkers = append(d.Checkers, a.From)
		}
	}
	if len(d.Checkers) > 2 {
		return errors.Wrapf(errors.ErrIllegalPosition, "%d pieces give check to %s", len(d.Checkers), board[d.King].Colour)
	}
	return nil
}

// computePins sets KingInVision on aligned sliders and records the pieces
// of colour us that stand alone between such a slider and the king.
func computePins(d *Derived, board *chess.Board, occupied chess.SquareSet, us chess.Colour) {
	for i := range d.Attacks {
		a := &d.Attacks[i]
		if !a.Piece.Kind.IsSlider() {
			continue
		}
		dr, df, ok := chess.Direction(a.From, d.King)
		if !ok || !movesAlong(a.Piece.Kind, dr, df) {
			continue
		}
		line := chess.Between(a.From, d.King)
		blockers := line & occupied
		switch blockers.Len() {
		case 0:
			a.KingInVision = true
		case 1:
			a.KingInVision = true
			blocker := blockers.Pop()
			if board[blocker].Colour == us {
				d.Pins = append(d.Pins, Pin{Square: blocker, Pinner: a.From, Line: line.Add(a.From)})
			}
		}
	}
}

// behindKing returns, for each checking slider, the square one step past
// the king along the check ray, so the king does not retreat along it.
func behindKing(d *Derived, board *chess.Board) chess.SquareSet {
	var set chess.SquareSet
	for _, c := range d.Checkers {
		if !board[c].Kind.IsSlider() {
			continue
		}
		dr, df, _ := chess.Direction(c, d.King)
		if sq := d.King.Offset(dr, df); sq != chess.NoSquare {
			set = set.Add(sq)
		}
	}
	return set
}

// checkMask returns the squares a non-king move must land on to answer a
// single check: the checker itself, plus the interposition squares when the
// checker is a slider.
func checkMask(d *Derived, board *chess.Board) chess.SquareSet {
	checker := d.Checkers[0]
	mask := chess.SquareSet(0).Add(checker)
	if board[checker].Kind.IsSlider() {
		mask |= chess.Between(checker, d.King)
	}
	return mask
}

// computeLegalMoves generates and filters the moves of every piece of the side to move.
func computeLegalMoves(d *Derived, ctx *moveContext, own chess.SquareSet) {
	board := ctx.board
	double := len(d.Checkers) == 2
	var mask chess.SquareSet
	if len(d.Checkers) == 1 {
		mask = checkMask(d, board)
	}

	d.Moves = make([]chess.Move, 0, 48)
	buf := make([]chess.Move, 0, 32)
	for rest := own; rest != 0; {
		from := rest.Pop()
		kind := board[from].Kind
		if kind == chess.King {
			d.Moves = generators[kind].moves(ctx, from, d.Moves)
			continue
		}
		if double {
			continue
		}

		pinLine, pinned := pinLineFor(d, from)
		buf = generators[kind].moves(ctx, from, buf[:0])
		for _, m := range buf {
			if isEnPassant(board, m, ctx.enPassant) {
				if !enPassantExposesKing(board, m, d.King, ctx.colour) {
					d.Moves = append(d.Moves, m)
				}
				continue
			}
			if pinned && !pinLine.Has(m.To) {
				continue
			}
			if ctx.inCheck && !mask.Has(m.To) {
				continue
			}
			d.Moves = append(d.Moves, m)
		}
	}
}

// pinLineFor returns the line a pinned piece on sq is confined to.
func pinLineFor(d *Derived, sq chess.Square) (chess.SquareSet, bool) {
	for _, pin := range d.Pins {
		if pin.Square == sq {
			return pin.Line, true
		}
	}
	return 0, false
}

// IsPinned reports whether the piece on sq is pinned to its king.
func (d *Derived) IsPinned(sq chess.Square) bool {
	_, ok := pinLineFor(d, sq)
	return ok
}

// PossibleMoves returns the legal moves of the piece on from.
func (d *Derived) PossibleMoves(from chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range d.Moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

// AttackedBy returns the raw attack set of the enemy piece on from.
func (d *Derived) AttackedBy(from chess.Square) chess.SquareSet {
	for _, a := range d.Attacks {
		if a.From == from {
			return a.Squares
		}
	}
	return 0
}

// contains reports whether m is one of the legal moves.
func (d *Derived) contains(m chess.Move) bool {
	for _, legal := range d.Moves {
		if legal == m {
			return true
		}
	}
	return false
}

// String summarises the derived state for debugging.
func (d *Derived) String() string {
	return fmt.Sprintf("king=%v checkers=%v pins=%d moves=%d", d.King, d.Checkers, len(d.Pins), len(d.Moves))
}
