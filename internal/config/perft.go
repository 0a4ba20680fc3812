package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxDepth bounds perft runs; deeper trees take hours even in parallel.
const MaxDepth = 10

// PerftConfig holds settings for node counting.
type PerftConfig struct {
	Depth int

	// Divide reports the count below each root move.
	Divide bool

	// Workers is the number of goroutines used by parallel divide.
	// 1 runs sequentially.
	Workers int

	// HashEntries bounds the shared transposition table. 0 disables it.
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   1,
		Workers: defaultWorkers(),
	}
}

// Validate checks that the perft configuration is usable.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside [1, %d]: %w", p.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers %d must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("hash entries %d is negative: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	return nil
}
