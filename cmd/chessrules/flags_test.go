package main

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// saveRestoreBool sets a flag pointer and returns a func restoring it.
// Usage: defer saveRestoreBool(divide, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyPositionFlags(t *testing.T) {
	t.Run("empty fen keeps default", func(t *testing.T) {
		defer saveRestoreString(fenFlag, "")()
		cfg := config.NewConfig()
		applyPositionFlags(cfg)
		if cfg.FEN != config.NewConfig().FEN {
			t.Errorf("FEN = %q; want the default", cfg.FEN)
		}
		if cfg.Reference != config.ReferenceBoth {
			t.Errorf("Reference = %q; want %q", cfg.Reference, config.ReferenceBoth)
		}
	})

	t.Run("fen and oracle", func(t *testing.T) {
		defer saveRestoreString(fenFlag, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
		defer saveRestoreString(refOracle, config.ReferenceNotnil)()
		cfg := config.NewConfig()
		applyPositionFlags(cfg)
		if cfg.FEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
			t.Errorf("FEN = %q", cfg.FEN)
		}
		if cfg.Reference != config.ReferenceNotnil {
			t.Errorf("Reference = %q", cfg.Reference)
		}
	})
}

func TestApplyPerftFlags(t *testing.T) {
	t.Run("auto workers", func(t *testing.T) {
		defer saveRestoreInt(workers, 0)()
		cfg := config.NewConfig()
		want := cfg.Perft.Workers
		applyPerftFlags(cfg)
		if cfg.Perft.Workers != want {
			t.Errorf("Workers = %d; want %d", cfg.Perft.Workers, want)
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		defer saveRestoreInt(depth, 5)()
		defer saveRestoreBool(divide, true)()
		defer saveRestoreInt(workers, 3)()
		defer saveRestoreInt(hashMax, 4096)()
		cfg := config.NewConfig()
		applyPerftFlags(cfg)
		want := config.PerftConfig{Depth: 5, Divide: true, Workers: 3, HashEntries: 4096}
		if cfg.Perft != want {
			t.Errorf("Perft = %+v; want %+v", cfg.Perft, want)
		}
	})
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreInt(lineLength, 100)()
	defer saveRestoreBool(noBoard, true)()
	cfg := config.NewConfig()
	applyOutputFlags(cfg)
	if cfg.Output.Format != config.JSON {
		t.Errorf("Format = %v; want json", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 100 {
		t.Errorf("MaxLineLength = %d; want 100", cfg.Output.MaxLineLength)
	}
	if cfg.Output.ShowBoard {
		t.Error("ShowBoard should be off with -noboard")
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name           string
		quiet, verbose bool
		want           int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"quiet wins", true, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}
