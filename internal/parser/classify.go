package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// UnknownTagPolicy decides what happens to tag lines whose key is not a
// reserved tag.
type UnknownTagPolicy int

const (
	DropUnknown UnknownTagPolicy = iota // Ignore the line
	FoldUnknown                         // Append the normalized line to the movetext
)

// String returns the configuration spelling of the policy.
func (p UnknownTagPolicy) String() string {
	switch p {
	case DropUnknown:
		return "drop"
	case FoldUnknown:
		return "fold"
	default:
		return fmt.Sprintf("UnknownTagPolicy(%d)", int(p))
	}
}

// ParseUnknownTagPolicy parses "drop" or "fold".
func ParseUnknownTagPolicy(s string) (UnknownTagPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return DropUnknown, nil
	case "fold":
		return FoldUnknown, nil
	}
	return DropUnknown, &errors.ConfigError{Key: "unknown_tags", Value: s, Reason: "want drop or fold"}
}

// MapResult reports how a tag line was handled.
type MapResult int

const (
	Mapped    MapResult = iota // Stored in a reserved field
	Unknown                    // Key is not reserved; handled by the policy
	Malformed                  // No separable key and value; skipped
)

// FieldMapper maps normalized tag lines onto game fields.
type FieldMapper struct {
	Policy UnknownTagPolicy
}

// Apply classifies one normalized tag line and merges it into game.
func (m FieldMapper) Apply(game *chess.Game, normalized string) MapResult {
	key, value, ok := SplitTagLine(normalized)
	if !ok {
		return Malformed
	}

	tag, ok := chess.CanonicalTag(key)
	if !ok {
		if m.Policy == FoldUnknown {
			game.AppendMoves(strings.TrimSpace(normalized))
		}
		return Unknown
	}

	game.SetTag(tag, value)
	return Mapped
}

// SplitTagLine splits a normalized tag line on its first space. The key is
// the first token with any whitespace removed; the value is the trimmed
// remainder and may be empty. Lines without a separator or with an empty
// key are malformed.
func SplitTagLine(normalized string) (key, value string, ok bool) {
	line := strings.TrimLeftFunc(normalized, unicode.IsSpace)
	head, rest, found := strings.Cut(line, " ")
	if !found {
		return "", "", false
	}
	key = stripSpace(head)
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(rest), true
}

// IsMovetext returns true if line starts with a move number such as "1."
// or "23...".
func IsMovetext(line string) bool {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	return digits > 0 && digits < len(line) && line[digits] == '.'
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
