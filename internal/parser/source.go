package parser

import (
	"bufio"
	"io"
)

const defaultBufferSize = 64 * 1024

// lineSource reads whole lines from a seekable stream and knows the byte
// offset of the next unread byte.
type lineSource struct {
	rs  io.ReadSeeker
	br  *bufio.Reader
	pos int64 // offset of the next byte br returns; -1 until the first seek
}

func newLineSource(rs io.ReadSeeker, size int) *lineSource {
	if size <= 0 {
		size = defaultBufferSize
	}
	return &lineSource{
		rs:  rs,
		br:  bufio.NewReaderSize(rs, size),
		pos: -1,
	}
}

// seek positions the source at offset. Buffered data is kept when the
// source is already there.
func (s *lineSource) seek(offset int64) error {
	if s.pos == offset {
		return nil
	}
	if _, err := s.rs.Seek(offset, io.SeekStart); err != nil {
		s.pos = -1
		return err
	}
	s.br.Reset(s.rs)
	s.pos = offset
	return nil
}

// readLine returns the next line including its terminator. The final line
// of the input may lack one. At end of input it returns "", io.EOF.
func (s *lineSource) readLine() (string, error) {
	line, err := s.br.ReadString('\n')
	switch {
	case err == nil:
		s.pos += int64(len(line))
	case err == io.EOF:
		s.pos += int64(len(line))
		if len(line) > 0 {
			return line, nil
		}
	default:
		s.pos = -1
	}
	return line, err
}
