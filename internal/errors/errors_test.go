package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrMalformedFEN", ErrMalformedFEN},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrIllegalPosition", ErrIllegalPosition},
		{"ErrInvalidConfig", ErrInvalidConfig},
		{"ErrReferenceMismatch", ErrReferenceMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("loading position: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
		})
	}
}

func TestFENError(t *testing.T) {
	tests := []struct {
		name     string
		err      *FENError
		contains []string
	}{
		{
			name:     "full context",
			err:      &FENError{Field: "placement", Value: "8/8/8", Reason: "want 8 ranks, got 3"},
			contains: []string{"malformed FEN", "placement", `"8/8/8"`, "want 8 ranks"},
		},
		{
			name:     "no context",
			err:      &FENError{},
			contains: []string{"malformed FEN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("FENError.Error() = %q, should contain %q", msg, s)
				}
			}
			if !errors.Is(tt.err, ErrMalformedFEN) {
				t.Errorf("errors.Is(FENError, ErrMalformedFEN) = false, want true")
			}
		})
	}
}

func TestFENError_As(t *testing.T) {
	err := Wrap(&FENError{Field: "turn", Value: "x"}, "new game")

	var fenErr *FENError
	if !errors.As(err, &fenErr) {
		t.Fatal("errors.As(err, *FENError) = false, want true")
	}
	if fenErr.Field != "turn" {
		t.Errorf("FENError.Field = %q, want %q", fenErr.Field, "turn")
	}
}

func TestMoveError(t *testing.T) {
	reasons := []MoveReason{BadLength, BadNotation, NoPieceAtSource, WrongTurn, NotPossible}
	for _, reason := range reasons {
		t.Run(reason.String(), func(t *testing.T) {
			err := &MoveError{Move: "e2e5", Reason: reason}
			if !errors.Is(err, ErrIllegalMove) {
				t.Errorf("errors.Is(MoveError, ErrIllegalMove) = false, want true")
			}
			if !strings.Contains(err.Error(), "e2e5") {
				t.Errorf("MoveError.Error() = %q, should contain the move", err.Error())
			}
			if !strings.Contains(err.Error(), reason.String()) {
				t.Errorf("MoveError.Error() = %q, should contain %q", err.Error(), reason.String())
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrIllegalPosition, "position %d", 3)
	if !Is(err, ErrIllegalPosition) {
		t.Errorf("Is(Wrapf(ErrIllegalPosition)) = false, want true")
	}
	if !strings.HasPrefix(err.Error(), "position 3: ") {
		t.Errorf("Wrapf() = %q, want prefix %q", err.Error(), "position 3: ")
	}
}
