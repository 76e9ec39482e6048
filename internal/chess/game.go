package chess

import "strings"

// TagGetter is implemented by every record representation so that
// serializers do not depend on how a record stores its fields.
type TagGetter interface {
	// Get returns the value for a tag name (e.g. "White", "UTCDate") or a
	// field name (e.g. "white", "game_result", "moves").
	Get(name string) string
}

// Game is one parsed PGN record: the recognized tags of its tag block plus
// the movetext.
type Game struct {
	// Tags holds recognized tags keyed by canonical tag name.
	Tags map[string]string

	// Moves is the movetext line, stored verbatim.
	Moves string

	// Byte range [StartOffset, EndOffset) the record was scanned from.
	StartOffset int64
	EndOffset   int64

	// Partial is set when the scan stopped at end of input or at the end of
	// a window before the record's terminating blank line.
	Partial bool
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{
		Tags: make(map[string]string),
	}
}

// Get implements TagGetter.
func (g *Game) Get(name string) string {
	if isMovesField(name) {
		return g.Moves
	}
	if tag, ok := CanonicalTag(name); ok {
		return g.Tags[tag]
	}
	if tag, ok := tagForField(name); ok {
		return g.Tags[tag]
	}
	return g.Tags[name]
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	g.ensureTags()
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// AppendMoves adds text to the movetext, separated from any existing
// movetext by a single space.
func (g *Game) AppendMoves(text string) {
	if g.Moves == "" {
		g.Moves = text
		return
	}
	g.Moves += " " + text
}

// IsEmpty reports whether neither a tag nor movetext has been recorded.
// An empty game is never handed to callers.
func (g *Game) IsEmpty() bool {
	return len(g.Tags) == 0 && g.Moves == ""
}

// Equal reports whether two games carry the same tags and movetext.
// Offsets are provenance and are not compared.
func (g *Game) Equal(other *Game) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Moves != other.Moves || len(g.Tags) != len(other.Tags) {
		return false
	}
	for k, v := range g.Tags {
		if ov, ok := other.Tags[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// ensureTags initializes the Tags map if it is nil.
func (g *Game) ensureTags() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
}

// White returns the White player name.
func (g *Game) White() string {
	return g.GetTag("White")
}

// Black returns the Black player name.
func (g *Game) Black() string {
	return g.GetTag("Black")
}

func isMovesField(name string) bool {
	return strings.EqualFold(name, MovesField)
}
