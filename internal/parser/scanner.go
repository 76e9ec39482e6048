package parser

import (
	"io"
	"log/slog"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// scanState is the position of the scanner within one record.
type scanState int

const (
	scanningTags   scanState = iota // Inside the tag block, or before it
	sawBlankLine                    // Tag block ended; movetext expected next
	movesCaptured                   // Movetext seen; a blank line completes the record
	recordComplete                  // Terminating blank line consumed
)

func (s scanState) String() string {
	switch s {
	case scanningTags:
		return "scanning-tags"
	case sawBlankLine:
		return "saw-blank-line"
	case movesCaptured:
		return "moves-captured"
	case recordComplete:
		return "record-complete"
	}
	return "unknown"
}

// Stats counts what a scanner has consumed.
type Stats struct {
	Lines       int64 // Lines consumed, blank lines included
	Bytes       int64 // Bytes consumed, line terminators included
	Records     int64 // Records handed out
	Partial     int64 // Records flushed without a terminating blank line
	Malformed   int64 // Tag lines skipped for lack of a key/value separator
	UnknownTags int64 // Tag lines whose key is not reserved
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Lines += other.Lines
	s.Bytes += other.Bytes
	s.Records += other.Records
	s.Partial += other.Partial
	s.Malformed += other.Malformed
	s.UnknownTags += other.UnknownTags
}

// Scanner reconstructs one record at a time from a seekable PGN stream.
// It keeps no position of its own between calls: every call names the
// offset to resume from.
type Scanner struct {
	src    *lineSource
	mapper FieldMapper
	logger *slog.Logger
	name   string
	window int
	stats  Stats
}

// NewScanner creates a scanner over src.
func NewScanner(src io.ReadSeeker, opts ...Option) *Scanner {
	o := newOptions(opts)
	return &Scanner{
		src:    newLineSource(src, o.bufferSize),
		mapper: FieldMapper{Policy: o.unknownTags},
		logger: o.logger,
		name:   o.name,
		window: -1,
	}
}

// Stats returns the counters accumulated so far.
func (s *Scanner) Stats() Stats {
	return s.stats
}

// ParseAt scans one record starting at offset and returns the offset to
// resume from. When maxOffset > 0, no line starting at or beyond maxOffset
// is read, even if that leaves the record incomplete.
//
// A nil game with a nil error means nothing but blank lines was found
// before the end of input or of the window. A record cut short by either
// is still returned, with Partial set.
func (s *Scanner) ParseAt(offset, maxOffset int64) (int64, *chess.Game, error) {
	if err := s.src.seek(offset); err != nil {
		return offset, nil, s.ioError(offset, err)
	}

	pos := offset
	game := chess.NewGame()
	game.StartOffset = -1
	state := scanningTags
	sawTags := false

	for state != recordComplete {
		if maxOffset > 0 && pos >= maxOffset {
			break
		}

		raw, err := s.src.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return pos, nil, s.ioError(pos, err)
		}

		lineStart := pos
		pos += int64(len(raw))
		s.stats.Lines++
		s.stats.Bytes += int64(len(raw))

		line := trimEOL(raw)
		blank := isBlank(line)
		if !blank && game.StartOffset < 0 {
			game.StartOffset = lineStart
		}

		switch state {
		case scanningTags:
			if blank {
				if sawTags {
					state = sawBlankLine
				}
				continue
			}
			if IsMovetext(line) {
				game.AppendMoves(line)
				state = movesCaptured
				continue
			}
			sawTags = true
			s.mapTag(game, line, lineStart)

		case sawBlankLine:
			if blank {
				continue
			}
			game.AppendMoves(line)
			state = movesCaptured

		case movesCaptured:
			if blank {
				state = recordComplete
				continue
			}
			// Wrapped movetext.
			game.AppendMoves(line)
		}
	}

	if game.IsEmpty() {
		return pos, nil, nil
	}

	if game.StartOffset < 0 {
		game.StartOffset = offset
	}
	game.EndOffset = pos
	if state != recordComplete {
		game.Partial = true
		s.stats.Partial++
		s.logger.Debug("flushing incomplete record",
			"window", s.window,
			"start", game.StartOffset,
			"end", pos,
			"state", state.String(),
		)
	}
	s.stats.Records++
	return pos, game, nil
}

// mapTag merges one tag line into game and keeps the counters.
func (s *Scanner) mapTag(game *chess.Game, line string, at int64) {
	switch s.mapper.Apply(game, NormalizeLine(line)) {
	case Malformed:
		s.stats.Malformed++
		s.logger.Debug("skipping line",
			"window", s.window,
			"offset", at,
			"line", line,
			"error", errors.ErrMalformedLine,
		)
	case Unknown:
		s.stats.UnknownTags++
	}
}

func (s *Scanner) ioError(offset int64, err error) error {
	return &errors.ScanError{
		Err:    errors.IO(err),
		File:   s.name,
		Window: s.window,
		Offset: offset,
	}
}
