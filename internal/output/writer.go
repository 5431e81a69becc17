package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// StateWriter is the interface for writing game positions to output.
// Different implementations handle different formats (text board, JSON).
type StateWriter interface {
	// WriteState writes the position of game id with turn to move.
	WriteState(id string, board *chess.Board, turn chess.Colour) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewStateWriter returns a JSON lines writer when asJSON is set and a
// text board writer otherwise.
func NewStateWriter(w io.Writer, cfg *config.Config, asJSON bool) StateWriter {
	if asJSON {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes positions as a text board.
type TextWriter struct {
	w    io.Writer
	view *BoardView
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:    w,
		view: NewBoardView(cfg.Board),
	}
}

// WriteState draws the board. The game id is not shown.
func (tw *TextWriter) WriteState(_ string, board *chess.Board, _ chess.Colour) error {
	return tw.view.Write(tw.w, board)
}

// Flush is a no-op; the text writer writes immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes positions in JSON format.
// It buffers states and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	states []*JSONGame
	single bool // If true, write each state immediately as one line
}

// JSONOutput holds multiple states for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches states and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		states: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each state
// immediately, one compact object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteState buffers a state for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteState(id string, board *chess.Board, turn chess.Colour) error {
	state := GameToJSON(id, board, turn)
	if jw.single {
		if err := json.NewEncoder(jw.w).Encode(state); err != nil {
			return fmt.Errorf("encoding game %s: %w", id, err)
		}
		return nil
	}

	// Positions change after this call, so convert now rather than on Flush.
	jw.states = append(jw.states, state)
	return nil
}

// Flush writes all buffered states as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.states) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.states})

	// Clear buffer after writing
	jw.states = jw.states[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
