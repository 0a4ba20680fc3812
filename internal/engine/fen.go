// Package engine provides legal move generation and move application.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields holds the six whitespace-separated fields of a FEN string.
type fenFields struct {
	placement, turn, castling, enPassant, halfMove, fullMove string
}

// splitFEN checks the field count and names the fields.
func splitFEN(fen string) (fenFields, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return fenFields{}, &errors.FENError{Value: fen, Reason: fmt.Sprintf("want 6 fields, got %d", len(parts))}
	}
	return fenFields{parts[0], parts[1], parts[2], parts[3], parts[4], parts[5]}, nil
}

// parseFEN converts a FEN string to a position and move counters.
func parseFEN(fen string) (Position, int, int, error) {
	var pos Position
	fields, err := splitFEN(fen)
	if err != nil {
		return pos, 0, 0, err
	}

	if err := parsePiecePositions(&pos.Board, fields.placement); err != nil {
		return pos, 0, 0, err
	}
	if pos.Turn, err = parseSideToMove(fields.turn); err != nil {
		return pos, 0, 0, err
	}
	if pos.Castling, err = parseCastlingRights(fields.castling); err != nil {
		return pos, 0, 0, err
	}
	if pos.EnPassant, err = parseEnPassant(fields.enPassant, pos.Turn); err != nil {
		return pos, 0, 0, err
	}
	halfMove, fullMove, err := parseClocks(fields.halfMove, fields.fullMove)
	if err != nil {
		return pos, 0, 0, err
	}
	return pos, halfMove, fullMove, nil
}

// parsePiecePositions parses the piece placement field: 8 ranks separated
// by '/', each summing to 8 files of digits and piece letters.
func parsePiecePositions(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.FENError{Field: "placement", Value: placement,
			Reason: fmt.Sprintf("want %d ranks, got %d", chess.BoardSize, len(ranks))}
	}

	for rank, row := range ranks {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return &errors.FENError{Field: "placement", Value: row,
					Reason: fmt.Sprintf("invalid piece character %q", c)}
			}
			if file >= chess.BoardSize {
				return &errors.FENError{Field: "placement", Value: row,
					Reason: fmt.Sprintf("rank %c runs past file h", chess.Ranks[rank])}
			}
			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			sq := chess.NewSquare(rank, file)
			p := chess.NewPiece(colour, kind, sq)
			p.Moved = kind == chess.Pawn && rank != colour.PawnRank()
			board.Set(sq, p)
			file++
		}
		if file != chess.BoardSize {
			return &errors.FENError{Field: "placement", Value: row,
				Reason: fmt.Sprintf("rank %c covers %d files, want %d", chess.Ranks[rank], file, chess.BoardSize)}
		}
	}
	return nil
}

// parseSideToMove parses the active colour field.
func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, &errors.FENError{Field: "active colour", Value: field, Reason: "want w or b"}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	if field == "-" {
		return chess.NoCastling, nil
	}
	rights := chess.NoCastling
	for _, c := range field {
		var flag chess.CastlingRights
		switch c {
		case 'K':
			flag = chess.WhiteKingside
		case 'Q':
			flag = chess.WhiteQueenside
		case 'k':
			flag = chess.BlackKingside
		case 'q':
			flag = chess.BlackQueenside
		default:
			return chess.NoCastling, &errors.FENError{Field: "castling", Value: field,
				Reason: fmt.Sprintf("invalid character %q", c)}
		}
		if rights&flag != 0 {
			return chess.NoCastling, &errors.FENError{Field: "castling", Value: field,
				Reason: fmt.Sprintf("repeated %q", c)}
		}
		rights |= flag
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field. The square must
// lie on the rank a pawn of the side not to move skips over.
func parseEnPassant(field string, turn chess.Colour) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return chess.NoSquare, &errors.FENError{Field: "en passant", Value: field, Reason: err.Error()}
	}
	mover := turn.Opposite()
	if sq.Rank() != mover.PawnRank()+mover.Forward() {
		return chess.NoSquare, &errors.FENError{Field: "en passant", Value: field,
			Reason: fmt.Sprintf("not a square a %s pawn can skip", mover)}
	}
	return sq, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(halfField, fullField string) (int, int, error) {
	halfMove, err := strconv.Atoi(halfField)
	if err != nil || halfMove < 0 {
		return 0, 0, &errors.FENError{Field: "halfmove clock", Value: halfField, Reason: "want a non-negative integer"}
	}
	fullMove, err := strconv.Atoi(fullField)
	if err != nil || fullMove < 1 {
		return 0, 0, &errors.FENError{Field: "fullmove number", Value: fullField, Reason: "want a positive integer"}
	}
	return halfMove, fullMove, nil
}

// FEN returns the position as a FEN string.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, g.pos.Turn)
	sb.WriteByte(' ')
	sb.WriteString(g.pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(g.pos.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", g.halfMove, g.fullMove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := board[chess.NewSquare(rank, file)]
			if p.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, turn chess.Colour) {
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
