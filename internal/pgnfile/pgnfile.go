// Package pgnfile reads games from PGN streams and resolves player names.
package pgnfile

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/notnil/chess"
)

// ErrNoPlayer is returned when no game in the file involves the
// requested player.
var ErrNoPlayer = errors.New("pgnfile: player not found")

// AmbiguousPlayerError is returned when a player pattern matches more
// than one distinct name in the file.
type AmbiguousPlayerError struct {
	Pattern string
	Names   []string
}

func (e *AmbiguousPlayerError) Error() string {
	return fmt.Sprintf("pgnfile: pattern %q matches %d players: %s",
		e.Pattern, len(e.Names), strings.Join(e.Names, ", "))
}

// ReadAll parses every game from r. A file with no games returns an
// empty slice and no error.
func ReadAll(r io.Reader) ([]*chess.Game, error) {
	scanner := chess.NewScanner(r)

	var games []*chess.Game
	for scanner.Scan() {
		games = append(games, scanner.Next())
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("pgnfile: scanning games: %w", err)
	}
	return games, nil
}

// Tag returns the value of the named tag pair, or "" when absent.
func Tag(game *chess.Game, name string) string {
	tp := game.GetTagPair(name)
	if tp == nil {
		return ""
	}
	return tp.Value
}

// FindPlayer resolves a case-insensitive pattern against the White and
// Black tags of games and returns the unique matching name together
// with the games that name appears in. A pattern matching several
// distinct names yields an AmbiguousPlayerError listing them.
func FindPlayer(games []*chess.Game, pattern string) (string, []*chess.Game, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return "", nil, fmt.Errorf("pgnfile: bad player pattern %q: %w", pattern, err)
	}

	matched := make(map[string]bool)
	for _, game := range games {
		for _, tag := range []string{"White", "Black"} {
			if name := Tag(game, tag); name != "" && re.MatchString(name) {
				matched[name] = true
			}
		}
	}

	switch len(matched) {
	case 0:
		return "", nil, fmt.Errorf("%w: %q", ErrNoPlayer, pattern)
	case 1:
	default:
		names := make([]string, 0, len(matched))
		for name := range matched {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", nil, &AmbiguousPlayerError{Pattern: pattern, Names: names}
	}

	var name string
	for n := range matched {
		name = n
	}

	var selected []*chess.Game
	for _, game := range games {
		if Tag(game, "White") == name || Tag(game, "Black") == name {
			selected = append(selected, game)
		}
	}
	return name, selected, nil
}

// Players returns the sorted distinct player names across all games.
func Players(games []*chess.Game) []string {
	seen := make(map[string]bool)
	for _, game := range games {
		for _, tag := range []string{"White", "Black"} {
			if name := Tag(game, tag); name != "" {
				seen[name] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
