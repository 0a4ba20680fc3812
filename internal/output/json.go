package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/reference"
)

// JSONGame represents a game state in JSON format.
type JSONGame struct {
	FEN            string     `json:"fen"`
	Turn           string     `json:"turn"`
	Castling       string     `json:"castling"`
	EnPassant      string     `json:"enPassant,omitempty"`
	HalfMoveClock  int        `json:"halfMoveClock"`
	FullMoveNumber int        `json:"fullMoveNumber"`
	Checkers       []string   `json:"checkers,omitempty"`
	Pins           []JSONPin  `json:"pins,omitempty"`
	LegalMoves     []string   `json:"legalMoves"`
	Outcome        string     `json:"outcome"`
	History        []JSONMove `json:"history,omitempty"`
}

// JSONPin is a pinned piece and the slider pinning it.
type JSONPin struct {
	Square string `json:"square"`
	Pinner string `json:"pinner"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Colour    string `json:"colour"`
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONReport represents a perft run.
type JSONReport struct {
	Depth int               `json:"depth"`
	Nodes uint64            `json:"nodes"`
	Moves map[string]uint64 `json:"moves,omitempty"`
}

// JSONDiff represents one oracle comparison.
type JSONDiff struct {
	Oracle  string   `json:"oracle"`
	FEN     string   `json:"fen"`
	Agree   bool     `json:"agree"`
	Missing []string `json:"missing,omitempty"`
	Extra   []string `json:"extra,omitempty"`
}

// JSONOutput holds everything a run produced.
type JSONOutput struct {
	Games   []*JSONGame   `json:"games,omitempty"`
	Reports []*JSONReport `json:"reports,omitempty"`
	Diffs   []*JSONDiff   `json:"diffs,omitempty"`
}

// GameToJSON converts a game state to JSON format.
func GameToJSON(g *engine.Game) *JSONGame {
	jg := &JSONGame{
		FEN:            g.FEN(),
		Turn:           g.Turn().String(),
		Castling:       g.Castling().String(),
		HalfMoveClock:  g.HalfMoveClock(),
		FullMoveNumber: g.FullMoveNumber(),
		LegalMoves:     sortedMoves(g),
		Outcome:        g.Outcome().String(),
	}
	if ep := g.EnPassant(); ep != chess.NoSquare {
		jg.EnPassant = ep.String()
	}
	for _, sq := range g.CheckingPieces() {
		jg.Checkers = append(jg.Checkers, sq.String())
	}
	for _, p := range g.Derived().Pins {
		jg.Pins = append(jg.Pins, JSONPin{Square: p.Square.String(), Pinner: p.Pinner.String()})
	}
	jg.History = historyToJSON(g)
	return jg
}

func historyToJSON(g *engine.Game) []JSONMove {
	history := g.History()
	if len(history) == 0 {
		return nil
	}
	isWhite, _ := historyStart(g)
	out := make([]JSONMove, len(history))
	for i, m := range history {
		colour := chess.Black
		if isWhite {
			colour = chess.White
		}
		jm := JSONMove{
			Ply:    i + 1,
			Colour: colour.String(),
			UCI:    m.String(),
			From:   m.From.String(),
			To:     m.To.String(),
		}
		if m.Promotion != chess.NoKind {
			jm.Promotion = m.Promotion.String()
		}
		out[i] = jm
		isWhite = !isWhite
	}
	return out
}

// ReportToJSON converts a perft report to JSON format.
func ReportToJSON(r *perft.Report) *JSONReport {
	jr := &JSONReport{Depth: r.Depth, Nodes: r.Nodes}
	if len(r.Moves) > 0 {
		jr.Moves = r.Moves
	}
	return jr
}

// DiffToJSON converts a reference diff to JSON format.
func DiffToJSON(d *reference.Diff) *JSONDiff {
	return &JSONDiff{
		Oracle:  d.Oracle,
		FEN:     d.FEN,
		Agree:   d.Empty(),
		Missing: d.Missing,
		Extra:   d.Extra,
	}
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
