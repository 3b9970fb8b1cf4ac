package cubes

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is the error returned for any malformed game record. It carries
// no detail about where the record went wrong.
var ErrParse = ParseError{}

// ParseError reports a malformed game record.
type ParseError struct{}

func (ParseError) Error() string { return "malformed game record" }

// atoi parses a non-negative count or id. Any failure collapses into
// ErrParse.
func atoi(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, ErrParse
	}
	return int(n), nil
}

// ParseGame parses a record of the form
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// Entries whose color is not red, green or blue are skipped. A color listed
// more than once in a draw has its counts summed. On error the zero Game is
// returned.
func ParseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, ErrParse
	}
	idStr, ok := strings.CutPrefix(header, "Game ")
	if !ok {
		return Game{}, ErrParse
	}
	id, err := atoi(idStr)
	if err != nil {
		return Game{}, err
	}
	segs := strings.Split(body, "; ")
	draws := make([]Draw, 0, len(segs))
	for _, seg := range segs {
		d, err := parseDraw(seg)
		if err != nil {
			return Game{}, err
		}
		draws = append(draws, d)
	}
	return Game{ID: id, Draws: draws}, nil
}

func parseDraw(s string) (Draw, error) {
	var d Draw
	for _, entry := range strings.Split(s, ", ") {
		for _, c := range Colors {
			count, ok := strings.CutSuffix(entry, c.String())
			if !ok {
				continue
			}
			count, ok = strings.CutSuffix(count, " ")
			if !ok {
				return Draw{}, ErrParse
			}
			n, err := atoi(count)
			if err != nil {
				return Draw{}, err
			}
			if !d.add(c, n) {
				return Draw{}, ErrParse
			}
		}
	}
	return d, nil
}

// ParseGames parses one game per line. It stops at the first malformed line;
// the returned error names the 1-based line number and satisfies
// errors.Is(err, ErrParse).
func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}
