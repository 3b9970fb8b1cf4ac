package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if len(g) == 0 || p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ParseGrid builds a byte grid from lines. Every line must be as wide as the
// first.
func ParseGrid(lines []string) (Grid[byte], error) {
	g := make(Grid[byte], len(lines))
	for y, l := range lines {
		if len(l) != len(lines[0]) {
			return nil, fmt.Errorf("row %d is %d wide; want %d", y, len(l), len(lines[0]))
		}
		g[y] = []byte(l)
	}
	return g, nil
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ForNeighbors calls f for each of the 8 points around p, diagonals
// included, until f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
