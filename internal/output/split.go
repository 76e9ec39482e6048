package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// SplitWriter writes records to numbered files, starting a new file every
// perFile records. Each file gets its own inner writer, so every CSV part
// carries a header. Not safe for concurrent use.
type SplitWriter struct {
	pattern    string // filename pattern with %d for the file number
	perFile    int
	factory    Factory
	file       *os.File
	cur        RecordWriter
	fileNumber int
	count      int
	files      []string
}

// SplitPattern derives the numbered file pattern from path:
// "games.csv" becomes "games_%d.csv".
func SplitPattern(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return strings.ReplaceAll(base, "%", "%%") + "_%d" + strings.ReplaceAll(ext, "%", "%%")
}

// NewSplitWriter creates a split writer naming its files after path.
// No file is created before the first record.
func NewSplitWriter(path string, perFile int, factory Factory) *SplitWriter {
	if perFile < 1 {
		perFile = 1
	}
	return &SplitWriter{
		pattern: SplitPattern(path),
		perFile: perFile,
		factory: factory,
	}
}

// WriteGame writes r, rotating to the next file when the current one is full.
func (sw *SplitWriter) WriteGame(r chess.TagGetter) error {
	if sw.cur == nil || sw.count >= sw.perFile {
		if err := sw.rotate(); err != nil {
			return err
		}
	}
	if err := sw.cur.WriteGame(r); err != nil {
		return err
	}
	sw.count++
	return nil
}

func (sw *SplitWriter) rotate() error {
	if err := sw.closeCurrent(); err != nil {
		return err
	}
	sw.fileNumber++
	name := fmt.Sprintf(sw.pattern, sw.fileNumber)
	f, err := os.Create(name) //nolint:gosec // G304: name is derived from the user-specified output path
	if err != nil {
		return errors.Wrapf(errors.IO(err), "create %s", name)
	}
	sw.file = f
	sw.cur = sw.factory(f)
	sw.count = 0
	sw.files = append(sw.files, name)
	return nil
}

func (sw *SplitWriter) closeCurrent() error {
	if sw.cur == nil {
		return nil
	}
	err := sw.cur.Close()
	if cerr := sw.file.Close(); err == nil && cerr != nil {
		err = errors.IO(cerr)
	}
	sw.cur, sw.file = nil, nil
	return err
}

// Flush flushes the current file.
func (sw *SplitWriter) Flush() error {
	if sw.cur == nil {
		return nil
	}
	return sw.cur.Flush()
}

// Close flushes and closes the current file.
func (sw *SplitWriter) Close() error {
	return sw.closeCurrent()
}

// Files returns the names of the files created so far.
func (sw *SplitWriter) Files() []string {
	return sw.files
}
