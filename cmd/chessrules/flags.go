// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position
	fenFlag = flag.String("fen", "", "Starting position in FEN (default: standard start)")

	// Perft options
	depth   = flag.Int("depth", 1, "Perft depth in plies")
	divide  = flag.Bool("divide", false, "Report node counts per root move")
	workers = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	hashMax = flag.Int("hash", 0, "Transposition table entries for perft (0 = disabled)")

	// Reference comparison
	refOracle = flag.String("ref", config.ReferenceBoth, "Reference generator: dragontooth, notnil, both")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	lineLength = flag.Int("w", 80, "Maximum line length")
	noBoard    = flag.Bool("noboard", false, "Don't draw the board")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	verbose = flag.Bool("verbose", false, "Running commentary on the log")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values onto cfg.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyPositionFlags configures the starting position and oracle.
func applyPositionFlags(cfg *config.Config) {
	if *fenFlag != "" {
		cfg.FEN = *fenFlag
	}
	cfg.Reference = *refOracle
}

// applyPerftFlags configures node counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.HashEntries = *hashMax
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.ShowBoard = !*noBoard
}

func usage() {
	fmt.Fprintf(os.Stderr, `chessrules - legal move generation, perft and reference checks

Usage: chessrules [options] <mode>

Modes:
  perft     count leaf nodes to -depth (with -divide for per-move counts)
  divide    shorthand for perft -divide
  compare   check legal moves against the reference generators
  show      print the position
  play      interactive loop reading moves from stdin

Options:
`)
	flag.PrintDefaults()
}
