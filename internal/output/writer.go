// Package output encodes game records as CSV or JSON lines.
package output

import (
	"fmt"
	"io"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// Output format names.
const (
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{FormatCSV, FormatJSONL}
}

// RecordWriter is the interface for writing records to output.
// Different implementations handle different encodings.
type RecordWriter interface {
	// WriteGame writes a single record to the output.
	WriteGame(r chess.TagGetter) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes and releases any resources the writer owns.
	Close() error
}

// Options tunes the writers built by NewWriter.
type Options struct {
	// Delimiter separates CSV fields. Zero means ','.
	Delimiter rune
}

// Factory creates a RecordWriter over w.
type Factory func(w io.Writer) RecordWriter

// NewFactory returns the writer constructor for format.
func NewFactory(format string, opts Options) (Factory, error) {
	switch format {
	case FormatCSV:
		delim := opts.Delimiter
		if delim == 0 {
			delim = ','
		}
		if delim == '"' || delim == '\r' || delim == '\n' {
			return nil, &errors.ConfigError{Key: "delimiter", Value: string(delim), Reason: "reserved character"}
		}
		return func(w io.Writer) RecordWriter { return NewCSVWriter(w, delim) }, nil
	case FormatJSONL:
		return func(w io.Writer) RecordWriter { return NewJSONLWriter(w) }, nil
	}
	return nil, fmt.Errorf("%w: %w", errors.ErrUnknownFormat,
		&errors.ConfigError{Key: "format", Value: format, Reason: "want csv or jsonl"})
}

// NewWriter creates a writer for format over w.
func NewWriter(format string, w io.Writer, opts Options) (RecordWriter, error) {
	factory, err := NewFactory(format, opts)
	if err != nil {
		return nil, err
	}
	return factory(w), nil
}
