package output

import (
	"encoding/csv"
	"io"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// CSVColumns are the fields written by CSVWriter, in order. They double as
// the header row.
var CSVColumns = []string{"white", "black", "game_result", "moves"}

// CSVWriter writes one row per record. The header row is written first,
// before any record.
type CSVWriter struct {
	w   *csv.Writer
	row []string
}

// NewCSVWriter creates a CSV writer using delim as the field separator.
func NewCSVWriter(w io.Writer, delim rune) *CSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	cw.Write(CSVColumns) //nolint:errcheck // surfaced by Flush via csv.Writer.Error
	return &CSVWriter{
		w:   cw,
		row: make([]string, len(CSVColumns)),
	}
}

// WriteGame writes the record as one row.
func (c *CSVWriter) WriteGame(r chess.TagGetter) error {
	for i, col := range CSVColumns {
		c.row[i] = r.Get(col)
	}
	if err := c.w.Write(c.row); err != nil {
		return errors.IO(err)
	}
	return nil
}

// Flush writes buffered rows to the underlying writer.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return errors.IO(c.w.Error())
}

// Close flushes the writer. The underlying writer is left open.
func (c *CSVWriter) Close() error {
	return c.Flush()
}
