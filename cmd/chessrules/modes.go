package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/reference"
)

// run executes one mode against the configured position. in is only read
// by play mode.
func run(ctx context.Context, mode string, cfg *config.Config, in io.Reader) error {
	g, err := engine.NewGame(cfg.FEN)
	if err != nil {
		return err
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	switch mode {
	case "perft":
		err = runPerft(ctx, g, cfg, w)
	case "divide":
		cfg.Perft.Divide = true
		err = runPerft(ctx, g, cfg, w)
	case "compare":
		err = runCompare(g, cfg, w)
	case "show":
		err = w.WriteGame(g)
	case "play":
		err = runPlay(g, cfg, w, in)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}

// runPerft counts the tree below g, in parallel when more than one worker
// is configured.
func runPerft(ctx context.Context, g *engine.Game, cfg *config.Config, w output.ResultWriter) error {
	pc := cfg.Perft
	var table *hashing.ThreadSafePerftTable
	if pc.HashEntries > 0 {
		table = hashing.NewThreadSafePerftTable(pc.HashEntries)
	}
	logf(cfg, 2, "perft depth %d, %d workers, hash %d entries: %s", pc.Depth, pc.Workers, pc.HashEntries, g.FEN())

	start := time.Now()
	var report *perft.Report
	switch {
	case pc.Workers > 1:
		var err error
		report, err = perft.ParallelDivide(ctx, g, pc.Depth, perft.Options{Workers: pc.Workers, Table: table})
		if err != nil {
			return err
		}
	case pc.Divide:
		report = perft.Divide(g, pc.Depth)
	default:
		report = &perft.Report{Depth: pc.Depth, Nodes: perft.CountCached(g, pc.Depth, table)}
	}
	elapsed := time.Since(start)

	if !pc.Divide {
		report.Moves = nil
	}
	logf(cfg, 1, "%d nodes in %v (%.0f nodes/s)", report.Nodes, elapsed.Round(time.Millisecond), nodesPerSecond(report.Nodes, elapsed))
	if table != nil {
		logf(cfg, 2, "hash: %d entries, %d hits", table.Len(), table.Hits())
	}
	return w.WriteReport(report)
}

func nodesPerSecond(nodes uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(nodes) / elapsed.Seconds()
}

// runCompare checks the root move list against the configured oracle and,
// for depths above one, searches the tree for the first disagreeing
// position.
func runCompare(g *engine.Game, cfg *config.Config, w output.ResultWriter) error {
	diffs, err := reference.Compare(g, cfg.Reference)
	if writeErr := w.WriteDiffs(diffs); writeErr != nil {
		return writeErr
	}
	if err != nil {
		return err
	}
	logf(cfg, 1, "root moves agree with %s", cfg.Reference)

	if cfg.Perft.Depth > 1 {
		if d := reference.PerftMismatch(g, cfg.Perft.Depth); d != nil {
			if writeErr := w.WriteDiffs([]*reference.Diff{d}); writeErr != nil {
				return writeErr
			}
			return d.Err()
		}
		logf(cfg, 1, "perft to depth %d agrees with %s", cfg.Perft.Depth, reference.Dragontooth)
	}
	return nil
}

const playHelp = `Commands:
  <move>   play a move in coordinate form, e.g. e2e4 or e7e8q
  moves    list legal moves
  undo     take back the last move
  fen      print the position as FEN
  show     print the board and status
  help     this text
  quit     leave`

// runPlay reads commands from in until quit or end of input.
func runPlay(g *engine.Game, cfg *config.Config, w output.ResultWriter, in io.Reader) error {
	out := cfg.OutputFile
	show := func() error {
		if err := w.WriteGame(g); err != nil {
			return err
		}
		return w.Flush()
	}
	if err := show(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		switch cmd {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, playHelp)
		case "moves":
			fmt.Fprintln(out, strings.Join(g.LegalMoves(), " "))
		case "fen":
			fmt.Fprintln(out, g.FEN())
		case "show":
			if err := show(); err != nil {
				return err
			}
		case "undo":
			if g.Ply() == 0 {
				fmt.Fprintln(out, "nothing to undo")
				continue
			}
			g.UndoMove()
			logf(cfg, 2, "undo -> %s", g.FEN())
			if err := show(); err != nil {
				return err
			}
		default:
			if err := g.Play(cmd); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			logf(cfg, 2, "%s -> %s", cmd, g.FEN())
			if err := show(); err != nil {
				return err
			}
			if g.IsGameOver() {
				fmt.Fprintf(out, "Game over: %s\n", g.Outcome())
			}
		}
	}
	return scanner.Err()
}
