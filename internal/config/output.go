package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat selects how results are rendered.
type OutputFormat int

const (
	Text OutputFormat = iota // Human readable
	JSON                     // One JSON document per run
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat maps a flag value onto an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", s)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	Format OutputFormat

	// MaxLineLength wraps move lists in text output.
	MaxLineLength uint

	// ShowBoard prints the board diagram with each game state.
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Text,
		MaxLineLength: 80,
		ShowBoard:     true,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %d", int(o.Format))
	}
	if o.MaxLineLength < 20 {
		return errors.Wrapf(errors.ErrInvalidConfig, "line length %d is too short", o.MaxLineLength)
	}
	return nil
}
