// Package cubes parses and evaluates records of the cube game played on Snow
// Island: an Elf reveals handfuls of red, green and blue cubes from a bag and
// we reason about what the bag must have held.
package cubes

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrOverflow is returned when a count, power or total does not fit in an
// int.
var ErrOverflow = errors.New("cube count overflows int")

// addCounts returns a+b for non-negative a and b, or false if it overflows.
func addCounts(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// mulCounts returns a*b for non-negative a and b, or false if it overflows.
func mulCounts(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

// Color is a cube color.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// Colors lists every cube color in canonical order.
var Colors = [...]Color{Red, Green, Blue}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Draw is a single handful of cubes. Colors that were not shown are zero.
type Draw struct {
	Red, Green, Blue int
}

// Count returns the number of cubes of color c in d.
func (d Draw) Count(c Color) int {
	switch c {
	case Red:
		return d.Red
	case Green:
		return d.Green
	case Blue:
		return d.Blue
	}
	return 0
}

// add adds n cubes of color c to d. It reports false, leaving d unchanged,
// if the count would overflow.
func (d *Draw) add(c Color, n int) bool {
	var p *int
	switch c {
	case Red:
		p = &d.Red
	case Green:
		p = &d.Green
	case Blue:
		p = &d.Blue
	default:
		return true
	}
	sum, ok := addCounts(*p, n)
	if !ok {
		return false
	}
	*p = sum
	return true
}

// String formats d the way draws appear in game records, omitting colors
// that were not shown.
func (d Draw) String() string {
	var parts []string
	for _, c := range Colors {
		if n := d.Count(c); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %v", n, c))
		}
	}
	return strings.Join(parts, ", ")
}

// Game is one recorded game: its id and every draw in the order shown.
type Game struct {
	ID    int
	Draws []Draw
}

func (g Game) String() string {
	draws := make([]string, len(g.Draws))
	for i, d := range g.Draws {
		draws[i] = d.String()
	}
	return fmt.Sprintf("Game %d: %s", g.ID, strings.Join(draws, "; "))
}

// Bag holds how many cubes of each color are available.
type Bag struct {
	Red, Green, Blue int
}

// DefaultBag is the bag the Elf asks about: 12 red, 13 green and 14 blue
// cubes.
var DefaultBag = Bag{Red: 12, Green: 13, Blue: 14}

// Holds reports whether every count in d fits in b.
func (b Bag) Holds(d Draw) bool {
	return d.Red <= b.Red && d.Green <= b.Green && d.Blue <= b.Blue
}

// Power is the product of the bag's per-color counts. It returns
// ErrOverflow if the product does not fit in an int.
func (b Bag) Power() (int, error) {
	p, ok := mulCounts(b.Red, b.Green)
	if ok {
		p, ok = mulCounts(p, b.Blue)
	}
	if !ok {
		return 0, fmt.Errorf("power of %+v: %w", b, ErrOverflow)
	}
	return p, nil
}

// Feasible reports whether every draw of g could have come from b. A game
// with no draws is always feasible.
func (g Game) Feasible(b Bag) bool {
	for _, d := range g.Draws {
		if !b.Holds(d) {
			return false
		}
	}
	return true
}

// IsFeasible is Feasible with the capacities given per color.
func IsFeasible(g Game, red, green, blue int) bool {
	return g.Feasible(Bag{Red: red, Green: green, Blue: blue})
}

// MinimumBag returns the smallest bag from which every draw of g is possible.
func (g Game) MinimumBag() Bag {
	var b Bag
	for _, d := range g.Draws {
		b.Red = max(b.Red, d.Red)
		b.Green = max(b.Green, d.Green)
		b.Blue = max(b.Blue, d.Blue)
	}
	return b
}

// MinimumPower returns the power of g's minimum bag.
func MinimumPower(g Game) (int, error) {
	return g.MinimumBag().Power()
}

// SumFeasibleIDs sums the ids of the games that are feasible with b.
func SumFeasibleIDs(games []Game, b Bag) (int, error) {
	var sum int
	for _, g := range games {
		if !g.Feasible(b) {
			continue
		}
		var ok bool
		if sum, ok = addCounts(sum, g.ID); !ok {
			return 0, fmt.Errorf("summing ids at game %d: %w", g.ID, ErrOverflow)
		}
	}
	return sum, nil
}

// TotalPower sums the minimum power of every game.
func TotalPower(games []Game) (int, error) {
	var sum int
	for _, g := range games {
		p, err := MinimumPower(g)
		if err != nil {
			return 0, fmt.Errorf("game %d: %w", g.ID, err)
		}
		var ok bool
		if sum, ok = addCounts(sum, p); !ok {
			return 0, fmt.Errorf("total power at game %d: %w", g.ID, ErrOverflow)
		}
	}
	return sum, nil
}
