// Package schematic reads engine schematics: grids of digits, symbols and
// '.' filler in which numbers next to a symbol are part numbers.
package schematic

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/snowisland/aoc"
)

// Number is a run of digits on a single row.
type Number struct {
	Value int
	Start aoc.Pt // leftmost digit
	Len   int
}

// Schematic is a parsed engine schematic.
type Schematic struct {
	grid    aoc.Grid[byte]
	numbers []Number
}

// Parse reads a schematic from its rows. All rows must be the same width.
func Parse(lines []string) (*Schematic, error) {
	g, err := aoc.ParseGrid(lines)
	if err != nil {
		return nil, err
	}
	s := &Schematic{grid: g}
	for y, row := range g {
		for x := 0; x < len(row); {
			if !aoc.IsDigit(row[x]) {
				x++
				continue
			}
			end := x
			for end < len(row) && aoc.IsDigit(row[end]) {
				end++
			}
			v, err := strconv.Atoi(string(row[x:end]))
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", y, x, err)
			}
			s.numbers = append(s.numbers, Number{
				Value: v,
				Start: aoc.Pt{X: x, Y: y},
				Len:   end - x,
			})
			x = end
		}
	}
	return s, nil
}

func isSymbol(b byte) bool {
	return b != '.' && !aoc.IsDigit(b)
}

// Numbers returns every number in the schematic in reading order.
func (s *Schematic) Numbers() []Number {
	return s.numbers
}

// forAdjacent calls f once for each distinct cell touching n, diagonals
// included, that holds a symbol.
func (s *Schematic) forAdjacent(n Number, f func(p aoc.Pt, sym byte)) {
	seen := make(map[aoc.Pt]bool)
	for i := 0; i < n.Len; i++ {
		p := aoc.Pt{X: n.Start.X + i, Y: n.Start.Y}
		p.ForNeighbors(func(q aoc.Pt) bool {
			if seen[q] {
				return true
			}
			seen[q] = true
			if b, ok := s.grid.AtOk(q); ok && isSymbol(b) {
				f(q, b)
			}
			return true
		})
	}
}

// PartNumbers returns the numbers adjacent to at least one symbol.
func (s *Schematic) PartNumbers() []int {
	var out []int
	for _, n := range s.numbers {
		adjacent := false
		s.forAdjacent(n, func(aoc.Pt, byte) { adjacent = true })
		if adjacent {
			out = append(out, n.Value)
		}
	}
	return out
}

// GearRatios returns, for every '*' touching exactly two part numbers, the
// product of those numbers. Gears are ordered by position.
func (s *Schematic) GearRatios() []int {
	byStar := make(map[aoc.Pt][]int)
	var stars []aoc.Pt
	for _, n := range s.numbers {
		s.forAdjacent(n, func(p aoc.Pt, sym byte) {
			if sym != '*' {
				return
			}
			if _, ok := byStar[p]; !ok {
				stars = append(stars, p)
			}
			byStar[p] = append(byStar[p], n.Value)
		})
	}
	slices.SortFunc(stars, func(a, b aoc.Pt) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	var out []int
	for _, p := range stars {
		if nums := byStar[p]; len(nums) == 2 {
			out = append(out, aoc.Product(nums...))
		}
	}
	return out
}
