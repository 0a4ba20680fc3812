// Package config provides configuration for the chessrules tools.
package config

import (
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Reference oracle selections.
const (
	ReferenceDragontooth = "dragontooth"
	ReferenceNotnil      = "notnil"
	ReferenceBoth        = "both"
)

// Config holds all program configuration.
type Config struct {
	// FEN is the starting position. Empty means the standard start.
	FEN string

	// Reference names the oracle used by compare mode.
	Reference string

	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Perft  PerftConfig
	Output OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		FEN:        engine.InitialFEN,
		Reference:  ReferenceBoth,
		Verbosity:  1,
		Perft:      *NewPerftConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	switch c.Reference {
	case ReferenceDragontooth, ReferenceNotnil, ReferenceBoth:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown reference %q", c.Reference)
	}
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d is negative", c.Verbosity)
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

func defaultWorkers() int {
	return runtime.NumCPU()
}
