package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// recordTerminator ends every JSON line.
const recordTerminator = "\r\n"

// JSONLWriter writes one JSON object per record, each carrying every
// reserved field plus the movetext.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a new JSON lines writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: bufio.NewWriter(w)}
}

// WriteGame encodes the record's Summary.
func (jw *JSONLWriter) WriteGame(r chess.TagGetter) error {
	b, err := json.Marshal(chess.Summarize(r))
	if err != nil {
		return err
	}
	if _, err := jw.w.Write(b); err != nil {
		return errors.IO(err)
	}
	if _, err := jw.w.WriteString(recordTerminator); err != nil {
		return errors.IO(err)
	}
	return nil
}

// Flush writes buffered lines to the underlying writer.
func (jw *JSONLWriter) Flush() error {
	return errors.IO(jw.w.Flush())
}

// Close flushes the writer. The underlying writer is left open.
func (jw *JSONLWriter) Close() error {
	return jw.Flush()
}
