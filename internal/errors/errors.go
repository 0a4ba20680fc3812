// Package errors provides sentinel errors and error types for the chessrules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedFEN indicates a FEN string that violates the six-field layout.
	ErrMalformedFEN = errors.New("malformed FEN")

	// ErrIllegalMove indicates a move request that was rejected.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalPosition indicates a position no legal game can reach,
	// such as a missing king or more than two checkers.
	ErrIllegalPosition = errors.New("illegal position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrReferenceMismatch indicates a disagreement with a reference move generator.
	ErrReferenceMismatch = errors.New("reference mismatch")
)

// FENError describes which FEN field failed to parse.
// It unwraps to ErrMalformedFEN.
type FENError struct {
	Field  string // Field name, e.g. "placement" or "castling"
	Value  string // The offending text
	Reason string // What was wrong with it
}

// Error returns a formatted error message including the field and value.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if len(parts) == 0 {
		return ErrMalformedFEN.Error()
	}
	return fmt.Sprintf("%v: %s", ErrMalformedFEN, strings.Join(parts, ": "))
}

// Unwrap returns ErrMalformedFEN so errors.Is matches the sentinel.
func (e *FENError) Unwrap() error {
	return ErrMalformedFEN
}

// MoveReason classifies why a move request was rejected.
type MoveReason int

const (
	BadLength MoveReason = iota
	BadNotation
	NoPieceAtSource
	WrongTurn
	NotPossible
)

// String returns a short description of the reason.
func (r MoveReason) String() string {
	switch r {
	case BadLength:
		return "move must be 4 or 5 characters"
	case BadNotation:
		return "character outside the move alphabet"
	case NoPieceAtSource:
		return "no piece on the source square"
	case WrongTurn:
		return "piece belongs to the side not to move"
	case NotPossible:
		return "destination not reachable"
	}
	return "rejected"
}

// MoveError records a rejected move request. It unwraps to ErrIllegalMove.
type MoveError struct {
	Move   string
	Reason MoveReason
}

// Error returns the move text and the rejection reason.
func (e *MoveError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrIllegalMove, e.Move, e.Reason)
}

// Unwrap returns ErrIllegalMove.
func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
