package output

import (
	"os"

	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// fileWriter is a RecordWriter that owns its file.
type fileWriter struct {
	RecordWriter
	f *os.File
}

func (fw *fileWriter) Close() error {
	err := fw.RecordWriter.Close()
	if cerr := fw.f.Close(); err == nil && cerr != nil {
		err = errors.IO(cerr)
	}
	return err
}

// Create opens the output at path. With perFile > 0 records are spread
// over numbered files next to path instead. Closing the writer closes
// the files.
func Create(path string, perFile int, factory Factory) (RecordWriter, error) {
	if perFile > 0 {
		return NewSplitWriter(path, perFile, factory), nil
	}
	f, err := os.Create(path) //nolint:gosec // G304: user-specified output path
	if err != nil {
		return nil, errors.Wrapf(errors.IO(err), "create %s", path)
	}
	return &fileWriter{RecordWriter: factory(f), f: f}, nil
}
