package output

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/reference"
)

// ResultWriter is the interface for writing run results.
// Different implementations handle different output formats.
type ResultWriter interface {
	// WriteGame writes the current state of a game.
	WriteGame(g *engine.Game) error

	// WriteReport writes a perft or divide report.
	WriteReport(r *perft.Report) error

	// WriteDiffs writes the result of a reference comparison.
	WriteDiffs(diffs []*reference.Diff) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes results as they arrive.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game state.
func (tw *TextWriter) WriteGame(g *engine.Game) error {
	OutputGame(g, tw.cfg, tw.w)
	return nil
}

// WriteReport writes a report.
func (tw *TextWriter) WriteReport(r *perft.Report) error {
	OutputReport(r, tw.w)
	return nil
}

// WriteDiffs writes comparison results.
func (tw *TextWriter) WriteDiffs(diffs []*reference.Diff) error {
	OutputDiffs(diffs, tw.w)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers results and writes them as one JSON document on
// Flush or Close.
type JSONWriter struct {
	w   io.Writer
	out JSONOutput
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a game state. The state is captured immediately, so
// later moves on g do not change what is written.
func (jw *JSONWriter) WriteGame(g *engine.Game) error {
	jw.out.Games = append(jw.out.Games, GameToJSON(g))
	return nil
}

// WriteReport buffers a report.
func (jw *JSONWriter) WriteReport(r *perft.Report) error {
	jw.out.Reports = append(jw.out.Reports, ReportToJSON(r))
	return nil
}

// WriteDiffs buffers comparison results.
func (jw *JSONWriter) WriteDiffs(diffs []*reference.Diff) error {
	for _, d := range diffs {
		jw.out.Diffs = append(jw.out.Diffs, DiffToJSON(d))
	}
	return nil
}

// Flush writes everything buffered so far as one document.
func (jw *JSONWriter) Flush() error {
	if len(jw.out.Games) == 0 && len(jw.out.Reports) == 0 && len(jw.out.Diffs) == 0 {
		return nil
	}
	err := encodeJSON(jw.w, &jw.out)

	// Clear buffer after writing
	jw.out = JSONOutput{}

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
