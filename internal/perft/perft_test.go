package perft

import (
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

var perftTests = []struct {
	name  string
	fen   string
	nodes []uint64 // indexed by depth-1
}{
	{"start", testutil.StartFEN, []uint64{20, 400, 8902, 197281, 4865609}},
	{"kiwipete", testutil.KiwipeteFEN, []uint64{48, 2039, 97862}},
	{"position 3", testutil.Position3FEN, []uint64{14, 191, 2812, 43238}},
	{"position 4", testutil.Position4FEN, []uint64{6, 264, 9467}},
	{"position 5", testutil.Position5FEN, []uint64{44, 1486, 62379}},
	{"position 6", testutil.Position6FEN, []uint64{46, 2079, 89890}},
}

func TestCount(t *testing.T) {
	for _, tt := range perftTests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustNewGame(t, tt.fen)
			for i, want := range tt.nodes {
				depth := i + 1
				if testing.Short() && want > 1000000 {
					t.Logf("skipping depth %d in short mode", depth)
					continue
				}
				if got := Count(g, depth); got != want {
					t.Errorf("Count(depth %d) = %d, want %d", depth, got, want)
				}
			}
			testutil.AssertEqual(t, g.FEN(), tt.fen, "game not restored")
		})
	}
}

func TestCount_DepthZero(t *testing.T) {
	g := testutil.MustNewGame(t, "")
	testutil.AssertEqual(t, Count(g, 0), uint64(1))
}

func TestCount_Checkmate(t *testing.T) {
	g := testutil.MustNewGame(t, "")
	testutil.MustPlay(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertEqual(t, Count(g, 1), uint64(0))
	testutil.AssertEqual(t, Count(g, 3), uint64(0))
}

func TestCountCached_MatchesCount(t *testing.T) {
	table := hashing.NewThreadSafePerftTable(0)
	for _, tt := range perftTests[:3] {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustNewGame(t, tt.fen)
			testutil.AssertEqual(t, CountCached(g, 3, table), tt.nodes[2])
			// Second run is answered from the table.
			testutil.AssertEqual(t, CountCached(g, 3, table), tt.nodes[2])
		})
	}
	if table.Hits() == 0 {
		t.Error("expected table hits on repeated counts")
	}
}

func TestCountCached_FullTable(t *testing.T) {
	table := hashing.NewThreadSafePerftTable(1)
	g := testutil.MustNewGame(t, testutil.KiwipeteFEN)
	testutil.AssertEqual(t, CountCached(g, 3, table), uint64(97862))
	testutil.AssertTrue(t, table.IsFull())
}

func TestDivide(t *testing.T) {
	g := testutil.MustNewGame(t, "")
	r := Divide(g, 2)

	testutil.AssertEqual(t, r.Depth, 2)
	testutil.AssertEqual(t, r.Nodes, uint64(400))
	testutil.AssertEqual(t, len(r.Moves), 20)
	for m, n := range r.Moves {
		testutil.AssertEqual(t, n, uint64(20), "move %s", m)
	}
}

func TestDivide_Kiwipete(t *testing.T) {
	g := testutil.MustNewGame(t, testutil.KiwipeteFEN)
	r := Divide(g, 2)

	testutil.AssertEqual(t, r.Nodes, uint64(2039))
	testutil.AssertEqual(t, len(r.Moves), 48)
	testutil.AssertEqual(t, r.Moves["e1g1"], uint64(43))
	testutil.AssertEqual(t, r.Moves["e1c1"], uint64(43))
	testutil.AssertEqual(t, r.Moves["d5e6"], uint64(46))
}

func TestReport_String(t *testing.T) {
	g := testutil.MustNewGame(t, "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	r := Divide(g, 1)

	out := r.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	testutil.AssertEqual(t, lines[0], "a1a2: 1")
	testutil.AssertEqual(t, lines[len(lines)-1], "Total: 16")
	testutil.AssertContains(t, out, "e1c1: 1")
	testutil.AssertEqual(t, len(lines), 17)
}

func TestReport_SortedMoves(t *testing.T) {
	r := &Report{Moves: map[string]uint64{"g1f3": 1, "a2a3": 1, "e2e4": 1}}
	testutil.AssertEqual(t, r.SortedMoves(), []string{"a2a3", "e2e4", "g1f3"})
}

func TestParallelDivide_MatchesDivide(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		depth   int
		workers int
		cached  bool
	}{
		{"start single worker", testutil.StartFEN, 3, 1, false},
		{"start four workers", testutil.StartFEN, 3, 4, false},
		{"kiwipete cached", testutil.KiwipeteFEN, 3, 4, true},
		{"position 5 cached", testutil.Position5FEN, 2, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustNewGame(t, tt.fen)
			want := Divide(g, tt.depth)

			opts := Options{Workers: tt.workers}
			if tt.cached {
				opts.Table = hashing.NewThreadSafePerftTable(0)
			}
			got, err := ParallelDivide(context.Background(), g, tt.depth, opts)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, want)
			testutil.AssertEqual(t, g.FEN(), tt.fen, "root game mutated")
		})
	}
}

func TestParallelDivide_DepthZero(t *testing.T) {
	g := testutil.MustNewGame(t, "")
	r, err := ParallelDivide(context.Background(), g, 0, Options{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, r.Nodes, uint64(1))
}

func TestParallelDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := testutil.MustNewGame(t, "")
	r, err := ParallelDivide(ctx, g, 3, Options{Workers: 2})
	testutil.AssertErrorIs(t, err, context.Canceled)
	if r != nil {
		t.Errorf("cancelled run returned a report: %v", r)
	}
	testutil.AssertEqual(t, g.FEN(), testutil.StartFEN)
}

func BenchmarkCount(b *testing.B) {
	g := testutil.MustNewGame(b, testutil.KiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Count(g, 3)
	}
}

func BenchmarkParallelDivide(b *testing.B) {
	g := testutil.MustNewGame(b, testutil.KiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParallelDivide(context.Background(), g, 3, Options{Workers: 4}); err != nil {
			b.Fatal(err)
		}
	}
}
