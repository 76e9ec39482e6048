package chunk

import (
	"bufio"
	"io"
	"strings"

	"github.com/MitchellWeg/PGN-Parser/internal/errors"
	"github.com/MitchellWeg/PGN-Parser/internal/parser"
)

// Snap moves every interior window boundary forward to the next record
// start, so that no record straddles two windows. Windows left empty are
// dropped and the rest renumbered. The first Min and last Max are kept.
func Snap(r io.ReaderAt, size int64, windows []parser.Window) ([]parser.Window, error) {
	if len(windows) < 2 {
		return windows, nil
	}

	cuts := make([]int64, len(windows)+1)
	cuts[0] = windows[0].Min
	cuts[len(windows)] = windows[len(windows)-1].Max
	for i := 1; i < len(windows); i++ {
		at, err := NextRecordStart(r, size, windows[i].Min)
		if err != nil {
			return nil, err
		}
		cuts[i] = max(at, cuts[i-1])
	}

	snapped := make([]parser.Window, 0, len(windows))
	for i := range windows {
		lo, hi := cuts[i], cuts[i+1]
		if lo >= hi {
			continue
		}
		snapped = append(snapped, parser.Window{Index: len(snapped), Min: lo, Max: hi})
	}
	return snapped, nil
}

// NextRecordStart returns the offset of the first line at or after at that
// opens a tag block: it starts with '[' and follows a blank line or the
// start of the input. It returns size when there is none.
func NextRecordStart(r io.ReaderAt, size, at int64) (int64, error) {
	if at <= 0 {
		return 0, nil
	}
	if at >= size {
		return size, nil
	}

	// The last bytes before at tell whether at starts a line and whether the
	// line before it is empty.
	tail := make([]byte, min(at, 3))
	if _, err := r.ReadAt(tail, at-int64(len(tail))); err != nil && err != io.EOF {
		return 0, errors.IO(err)
	}
	lineStart := tail[len(tail)-1] == '\n'
	prevBlank := lineStart && emptyLineBefore(tail, at)

	br := bufio.NewReader(io.NewSectionReader(r, at, size-at))
	pos := at
	if !lineStart {
		rest, err := br.ReadString('\n')
		pos += int64(len(rest))
		if err == io.EOF {
			return size, nil
		}
		if err != nil {
			return 0, errors.IO(err)
		}
		// at split the CR and LF of a blank CRLF line.
		prevBlank = strings.TrimSpace(rest) == "" && crBlankBefore(tail, at)
	}

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if prevBlank && strings.HasPrefix(line, "[") {
				return pos, nil
			}
			prevBlank = strings.TrimSpace(line) == ""
			pos += int64(len(line))
		}
		if err == io.EOF {
			return size, nil
		}
		if err != nil {
			return 0, errors.IO(err)
		}
	}
}

// crBlankBefore reports whether the byte before at is a '\r' that opens
// its line.
func crBlankBefore(tail []byte, at int64) bool {
	n := len(tail)
	if tail[n-1] != '\r' {
		return false
	}
	return at == 1 || tail[n-2] == '\n'
}

// emptyLineBefore reports whether the line ending with the last byte of
// tail, a '\n' at offset at-1, is empty.
func emptyLineBefore(tail []byte, at int64) bool {
	n := len(tail)
	if at == 1 {
		return true
	}
	if tail[n-2] == '\n' {
		return true
	}
	if tail[n-2] == '\r' {
		return at == 2 || tail[n-3] == '\n'
	}
	return false
}
