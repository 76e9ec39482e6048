package chess

// Summary is the fixed-field representation of a record. It carries every
// reserved tag plus the movetext and is what structured output encodes.
type Summary struct {
	Event       string `json:"event"`
	Site        string `json:"site"`
	Date        string `json:"date"`
	Round       string `json:"round"`
	White       string `json:"white"`
	Black       string `json:"black"`
	GameResult  string `json:"game_result"`
	WhiteElo    string `json:"white_elo"`
	BlackElo    string `json:"black_elo"`
	TimeControl string `json:"time_control"`
	Termination string `json:"termination"`
	Moves       string `json:"moves"`
}

// Summarize projects any record onto the fixed field set.
func Summarize(r TagGetter) Summary {
	return Summary{
		Event:       r.Get("Event"),
		Site:        r.Get("Site"),
		Date:        r.Get("Date"),
		Round:       r.Get("Round"),
		White:       r.Get("White"),
		Black:       r.Get("Black"),
		GameResult:  r.Get("Result"),
		WhiteElo:    r.Get("WhiteElo"),
		BlackElo:    r.Get("BlackElo"),
		TimeControl: r.Get("TimeControl"),
		Termination: r.Get("Termination"),
		Moves:       r.Get(MovesField),
	}
}

// Get implements TagGetter.
func (s Summary) Get(name string) string {
	if isMovesField(name) {
		return s.Moves
	}
	tag, ok := LookupTag(name)
	if !ok {
		tag, ok = fieldToTagName[name]
	}
	if !ok {
		return ""
	}
	switch tag {
	case EventTag:
		return s.Event
	case SiteTag:
		return s.Site
	case DateTag:
		return s.Date
	case RoundTag:
		return s.Round
	case WhiteTag:
		return s.White
	case BlackTag:
		return s.Black
	case ResultTag:
		return s.GameResult
	case WhiteEloTag:
		return s.WhiteElo
	case BlackEloTag:
		return s.BlackElo
	case TimeControlTag:
		return s.TimeControl
	case TerminationTag:
		return s.Termination
	}
	return ""
}

// IsZero reports whether the summary equals its default value.
func (s Summary) IsZero() bool {
	return s == Summary{}
}
