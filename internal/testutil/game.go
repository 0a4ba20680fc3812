package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Well-known perft positions shared by the engine, perft and reference tests.
const (
	StartFEN     = engine.InitialFEN
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	Position6FEN = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	ScenarioFEN  = "8/8/7p/3KNN1k/2p4p/8/3P2p1/8 w - - 0 1"
)

// MustNewGame builds a game from fen, failing the test immediately on error.
func MustNewGame(t testing.TB, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGame(fen)
	if err != nil {
		t.Fatalf("NewGame(%q): %v", fen, err)
	}
	return g
}

// MustPlay applies each move in order, failing the test on the first rejection.
func MustPlay(t testing.TB, g *engine.Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := g.Play(m); err != nil {
			t.Fatalf("Play(%q) from %q: %v", m, g.FEN(), err)
		}
	}
}
