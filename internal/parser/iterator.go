// Package parser extracts game records from PGN archives one record at a
// time, resuming from byte offsets so that a file can be scanned in
// independent windows.
package parser

import (
	"fmt"
	"io"
	"iter"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// Window is the byte range [Min, Max) one iterator is responsible for.
// Max <= 0 means the window runs to the end of the input.
type Window struct {
	Index int
	Min   int64
	Max   int64
}

// WholeFile returns an unbounded window starting at offset 0.
func WholeFile() Window {
	return Window{}
}

// Bounded returns true if the window has an upper limit.
func (w Window) Bounded() bool {
	return w.Max > 0
}

// Size returns the number of bytes in a bounded window, or -1.
func (w Window) Size() int64 {
	if !w.Bounded() {
		return -1
	}
	return w.Max - w.Min
}

// Contains returns true if offset falls inside the window.
func (w Window) Contains(offset int64) bool {
	if offset < w.Min {
		return false
	}
	return !w.Bounded() || offset < w.Max
}

// Validate checks the bounds of the window.
func (w Window) Validate() error {
	if w.Min < 0 || (w.Bounded() && w.Max < w.Min) {
		return errors.Wrapf(errors.ErrInvalidWindow, "window %d [%d, %d)", w.Index, w.Min, w.Max)
	}
	return nil
}

// String formats the window as "#i [min, max)".
func (w Window) String() string {
	if !w.Bounded() {
		return fmt.Sprintf("#%d [%d, EOF)", w.Index, w.Min)
	}
	return fmt.Sprintf("#%d [%d, %d)", w.Index, w.Min, w.Max)
}

// Iterator yields the records of one window in file order.
// It owns its source and must not be shared between goroutines.
type Iterator struct {
	scanner *Scanner
	closer  io.Closer
	window  Window
	offset  int64
	done    bool
	err     error
}

// NewIterator creates an iterator over the records of src that start
// inside w. If src is an io.Closer, Close closes it.
func NewIterator(src io.ReadSeeker, w Window, opts ...Option) (*Iterator, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	s := NewScanner(src, opts...)
	s.window = w.Index
	it := &Iterator{
		scanner: s,
		window:  w,
		offset:  w.Min,
	}
	if c, ok := src.(io.Closer); ok {
		it.closer = c
	}
	return it, nil
}

// Next returns the next record. It returns nil, nil once the window is
// exhausted. After an error every call returns that error.
func (it *Iterator) Next() (*chess.Game, error) {
	if it.err != nil {
		return nil, it.err
	}
	if it.done {
		return nil, nil
	}

	next, game, err := it.scanner.ParseAt(it.offset, it.window.Max)
	if err != nil {
		it.err = err
		return nil, err
	}
	it.offset = next
	if game == nil {
		it.done = true
	}
	return game, nil
}

// All returns a single-use sequence over the remaining records. The
// sequence stops after yielding an error.
func (it *Iterator) All() iter.Seq2[*chess.Game, error] {
	return func(yield func(*chess.Game, error) bool) {
		for {
			game, err := it.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if game == nil {
				return
			}
			if !yield(game, nil) {
				return
			}
		}
	}
}

// ReadAll collects the remaining records.
func (it *Iterator) ReadAll() ([]*chess.Game, error) {
	games := make([]*chess.Game, 0, 16)
	for game, err := range it.All() {
		if err != nil {
			return games, err
		}
		games = append(games, game)
	}
	return games, nil
}

// Offset returns the offset the next call to Next resumes from.
func (it *Iterator) Offset() int64 {
	return it.offset
}

// Window returns the window the iterator was built for.
func (it *Iterator) Window() Window {
	return it.window
}

// Stats returns the scanner counters of this iterator.
func (it *Iterator) Stats() Stats {
	return it.scanner.Stats()
}

// Done returns true once the window is exhausted or an error occurred.
func (it *Iterator) Done() bool {
	return it.done || it.err != nil
}

// Close releases the source.
func (it *Iterator) Close() error {
	if it.closer == nil {
		return nil
	}
	c := it.closer
	it.closer = nil
	return c.Close()
}
