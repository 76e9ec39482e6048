package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
	"github.com/MitchellWeg/PGN-Parser/internal/parser"
)

// Movetext of the fixture games, one line each.
const (
	FischerBenkoMoves = "1. e4 g6 2. d4 Bg7 3. Nc3 d6 4. f4 Nf6 5. Nf3 O-O 6. Bd3 Bg4 7. h3 Bxf3 " +
		"8. Qxf3 Nc6 9. Be3 e5 10. dxe5 dxe5 11. f5 gxf5 12. Qxf5 Nd4 13. Qf2 Ne8 14. O-O Nd6 " +
		"15. Qg3 Kh8 16. Qg4 c6 17. Qh5 Qe8 18. Bxd4 exd4 19. Rf6 Kg8 20. e5 h6 21. Ne2 1-0"

	FischerSpasskyMoves = "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6 5. O-O Be7 6. Re1 b5 7. Bb3 d6 " +
		"8. c3 O-O 9. h3 Nb8 10. d4 Nbd7 11. c4 c6 12. cxb5 axb5 13. Nc3 Bb7 1/2-1/2"
)

// FischerBenko is a single game with the seven tag roster and extra tags.
const FischerBenko = `[Event "United States Championship 1963/64"]
[Site "New York, NY USA"]
[Date "1963.12.18"]
[Round "1"]
[White "Robert James Fischer"]
[Black "Pal Benko"]
[Result "1-0"]
[ECO "B09"]

` + FischerBenkoMoves + "\n"

// FischerSpassky is a single game whose player names contain commas.
const FischerSpassky = `[Event "F/S Return Match"]
[Site "Belgrade, Serbia JUG"]
[UTCDate "1992.11.04"]
[Round "29"]
[White "Fischer, Robert J."]
[Black "Spassky, Boris V."]
[Result "1/2-1/2"]
[WhiteElo "2785"]
[BlackElo "2560"]
[TimeControl "40/7200"]
[Termination "normal"]

` + FischerSpasskyMoves + "\n"

// TwoGameArchive holds both fixture games separated by a blank line and
// terminated by one.
const TwoGameArchive = FischerBenko + "\n" + FischerSpassky + "\n"

// ParseTestGames parses a PGN string with an unbounded window and returns
// all games found. Returns nil if parsing fails or no games are found.
func ParseTestGames(pgn string, opts ...parser.Option) []*chess.Game {
	it, err := parser.NewIterator(strings.NewReader(pgn), parser.WholeFile(), opts...)
	if err != nil {
		return nil
	}
	games, err := it.ReadAll()
	if err != nil || len(games) == 0 {
		return nil
	}
	return games
}

// MustParseGames parses a PGN string and returns all games found.
// It calls t.Fatal if parsing fails or no games are found.
func MustParseGames(t *testing.T, pgn string, opts ...parser.Option) []*chess.Game {
	t.Helper()
	games := ParseTestGames(pgn, opts...)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from PGN:\n%s", pgn)
	}
	return games
}

// MustParseGame parses a PGN string and returns the first game.
func MustParseGame(t *testing.T, pgn string, opts ...parser.Option) *chess.Game {
	t.Helper()
	return MustParseGames(t, pgn, opts...)[0]
}

// NewGame builds a game from alternating tag name/value pairs.
func NewGame(moves string, tags ...string) *chess.Game {
	g := chess.NewGame()
	for i := 0; i+1 < len(tags); i += 2 {
		g.SetTag(tags[i], tags[i+1])
	}
	g.Moves = moves
	return g
}

// WriteTempPGN writes content to a file in a per-test directory and
// returns its path.
func WriteTempPGN(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.pgn")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
