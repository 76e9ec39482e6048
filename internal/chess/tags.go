package chess

// TagName represents the index of a reserved PGN tag.
type TagName int

const (
	EventTag TagName = iota
	SiteTag
	DateTag
	RoundTag
	WhiteTag
	BlackTag
	ResultTag
	WhiteEloTag
	BlackEloTag
	TimeControlTag
	TerminationTag
	NumberOfTags // Sentinel, must be last
)

// MovesField is the field name of the movetext.
const MovesField = "moves"

// TagNameStrings maps tag indices to their canonical PGN names.
var TagNameStrings = map[TagName]string{
	EventTag:       "Event",
	SiteTag:        "Site",
	DateTag:        "Date",
	RoundTag:       "Round",
	WhiteTag:       "White",
	BlackTag:       "Black",
	ResultTag:      "Result",
	WhiteEloTag:    "WhiteElo",
	BlackEloTag:    "BlackElo",
	TimeControlTag: "TimeControl",
	TerminationTag: "Termination",
}

// FieldNames maps tag indices to the field names used by serializers.
var FieldNames = map[TagName]string{
	EventTag:       "event",
	SiteTag:        "site",
	DateTag:        "date",
	RoundTag:       "round",
	WhiteTag:       "white",
	BlackTag:       "black",
	ResultTag:      "game_result",
	WhiteEloTag:    "white_elo",
	BlackEloTag:    "black_elo",
	TimeControlTag: "time_control",
	TerminationTag: "termination",
}

// tagAliases maps alternative tag keys onto a reserved tag.
// Matching is case-sensitive.
var tagAliases = map[string]TagName{
	"UTCDate": DateTag,
}

// StringToTagName maps tag strings, aliases included, to their indices.
var StringToTagName map[string]TagName

var fieldToTagName map[string]TagName

func init() {
	StringToTagName = make(map[string]TagName, len(TagNameStrings)+len(tagAliases))
	for tag, name := range TagNameStrings {
		StringToTagName[name] = tag
	}
	for alias, tag := range tagAliases {
		StringToTagName[alias] = tag
	}

	fieldToTagName = make(map[string]TagName, len(FieldNames))
	for tag, field := range FieldNames {
		fieldToTagName[field] = tag
	}
}

// String returns the canonical PGN name of the tag.
func (t TagName) String() string {
	return TagNameStrings[t]
}

// Field returns the serializer field name of the tag.
func (t TagName) Field() string {
	return FieldNames[t]
}

// LookupTag returns the reserved tag for key. Aliases resolve to the tag
// they stand for.
func LookupTag(key string) (TagName, bool) {
	tag, ok := StringToTagName[key]
	return tag, ok
}

// CanonicalTag returns the canonical name of a reserved tag key, so that
// "UTCDate" and "Date" both yield "Date".
func CanonicalTag(key string) (string, bool) {
	tag, ok := LookupTag(key)
	if !ok {
		return "", false
	}
	return tag.String(), true
}

// IsReservedTag returns true if key is one of the recognized tag keys.
func IsReservedTag(key string) bool {
	_, ok := StringToTagName[key]
	return ok
}

// ReservedTags returns the reserved tags in output order.
func ReservedTags() []TagName {
	tags := make([]TagName, 0, NumberOfTags)
	for t := EventTag; t < NumberOfTags; t++ {
		tags = append(tags, t)
	}
	return tags
}

func tagForField(field string) (string, bool) {
	tag, ok := fieldToTagName[field]
	if !ok {
		return "", false
	}
	return tag.String(), true
}
