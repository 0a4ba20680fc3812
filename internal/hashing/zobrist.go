// Package hashing provides Zobrist position keys and a node-count table
// keyed by them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

var (
	pieceKeys     [2][chess.NumKinds][chess.NumSquares]uint64
	castlingKeys  [chess.AllCastling + 1]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	// Fixed seed so keys are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for colour := range pieceKeys {
		for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
			for sq := range pieceKeys[colour][kind] {
				pieceKeys[colour][kind][sq] = rnd.Uint64()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rnd.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rnd.Uint64()
	}
	blackToMove = rnd.Uint64()
}

// Key computes the Zobrist key of a position from scratch. Move counters and
// the per-piece moved flag do not contribute; neither affects which moves
// are legal.
func Key(pos *engine.Position) uint64 {
	var key uint64
	for sq, p := range pos.Board {
		if !p.IsEmpty() {
			key ^= pieceKeys[p.Colour][p.Kind][sq]
		}
	}
	if pos.Turn == chess.Black {
		key ^= blackToMove
	}
	key ^= castlingKeys[pos.Castling]
	if pos.EnPassant != chess.NoSquare {
		key ^= enPassantKeys[pos.EnPassant.File()]
	}
	return key
}

// GameKey is Key for the current position of g.
func GameKey(g *engine.Game) uint64 {
	pos := g.Position()
	return Key(&pos)
}
