package engine_test

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestNewGame_EmptyFENIsStart(t *testing.T) {
	g, err := engine.NewGame("")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, len(g.LegalMoves()), 20)
	testutil.AssertEqual(t, g.Turn(), chess.White)
	testutil.AssertEqual(t, g.Castling(), chess.AllCastling)
	testutil.AssertEqual(t, g.EnPassant(), chess.NoSquare)
	testutil.AssertEqual(t, g.HalfMoveClock(), 0)
	testutil.AssertEqual(t, g.FullMoveNumber(), 1)
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		testutil.StartFEN,
		testutil.KiwipeteFEN,
		testutil.Position3FEN,
		testutil.Position4FEN,
		testutil.Position5FEN,
		testutil.Position6FEN,
		testutil.ScenarioFEN,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 12",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g := testutil.MustNewGame(t, fen)
			testutil.AssertEqual(t, g.FEN(), fen)
		})
	}
}

func TestFEN_Placement(t *testing.T) {
	g := testutil.MustNewGame(t, testutil.StartFEN)
	tests := []struct {
		square string
		want   chess.Piece
	}{
		{"a8", chess.Piece{Colour: chess.Black, Kind: chess.Rook, Side: chess.Queenside}},
		{"h8", chess.Piece{Colour: chess.Black, Kind: chess.Rook, Side: chess.Kingside}},
		{"e1", chess.Piece{Colour: chess.White, Kind: chess.King}},
		{"d1", chess.Piece{Colour: chess.White, Kind: chess.Queen}},
		{"g2", chess.Piece{Colour: chess.White, Kind: chess.Pawn}},
		{"e4", chess.Piece{}},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			testutil.AssertEqual(t, g.PieceAt(chess.MustSquare(tt.square)), tt.want)
		})
	}
}

func TestNewGame_Rejects(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", errors.ErrMalformedFEN},
		{"too many fields", engine.InitialFEN + " extra", errors.ErrMalformedFEN},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", errors.ErrMalformedFEN},
		{"nine files", "rnbqkbnrp/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", errors.ErrMalformedFEN},
		{"digits overflow", "rnbqkbnr/pppppppp/8/8/44p/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", errors.ErrMalformedFEN},
		{"seven files", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", errors.ErrMalformedFEN},
		{"nine empty", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", errors.ErrMalformedFEN},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/3x4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", errors.ErrMalformedFEN},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR white KQkq - 0 1", errors.ErrMalformedFEN},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1", errors.ErrMalformedFEN},
		{"repeated castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKq - 0 1", errors.ErrMalformedFEN},
		{"en passant off board", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", errors.ErrMalformedFEN},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1", errors.ErrMalformedFEN},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", errors.ErrMalformedFEN},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", errors.ErrMalformedFEN},
		{"text fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 one", errors.ErrMalformedFEN},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1", errors.ErrIllegalPosition},
		{"two white kings", "4k3/8/8/8/8/8/8/KK6 w - - 0 1", errors.ErrIllegalPosition},
		{"no black king", "8/8/8/8/8/8/8/4K3 b - - 0 1", errors.ErrIllegalPosition},
		{"opponent in check", "k7/8/8/8/8/8/8/R6K w - - 0 1", errors.ErrIllegalPosition},
		{"three checkers", "R3k3/8/3N4/1B6/8/8/8/4K3 b - - 0 1", errors.ErrIllegalPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := engine.NewGame(tt.fen)
			if err == nil {
				t.Fatalf("NewGame(%q) = %s, want error", tt.fen, g.FEN())
			}
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestNewGame_FENErrorNamesField(t *testing.T) {
	tests := []struct {
		fen   string
		field string
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1", "placement"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", "active colour"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqk - 0 1", "castling"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e5 0 1", "en passant"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", "halfmove clock"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			_, err := engine.NewGame(tt.fen)
			var fenErr *errors.FENError
			if !errors.As(err, &fenErr) {
				t.Fatalf("NewGame() error = %v, want *FENError", err)
			}
			testutil.AssertEqual(t, fenErr.Field, tt.field)
		})
	}
}

func TestFEN_AfterMoves(t *testing.T) {
	g := testutil.MustNewGame(t, "")
	testutil.MustPlay(t, g, "e2e4")
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.MustPlay(t, g, "c7c5", "g1f3")
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
}
