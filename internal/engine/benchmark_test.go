package engine_test

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

var benchFENs = map[string]string{
	"Initial":  testutil.StartFEN,
	"Kiwipete": testutil.KiwipeteFEN,
	"Endgame":  testutil.Position3FEN,
	"Midgame":  testutil.Position6FEN,
}

func BenchmarkNewGame(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				engine.NewGame(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			g := testutil.MustNewGame(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.FEN()
			}
		})
	}
}

func BenchmarkDerive(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos := testutil.MustNewGame(b, fen).Position()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				engine.Derive(&pos)
			}
		})
	}
}

func BenchmarkMakeUndo(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			g := testutil.MustNewGame(b, fen)
			moves := g.Moves()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.Push(moves[i%len(moves)])
				g.UndoMove()
			}
		})
	}
}
