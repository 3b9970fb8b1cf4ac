package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Digit returns the digit value of the rune, or false if r is not an ASCII
// decimal digit.
func Digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 if there are none.
func Product[T Number](nums ...T) T {
	out := T(1)
	for _, v := range nums {
		out *= v
	}
	return out
}

// SumFunc maps each element of in through f and sums the results, stopping at
// the first error.
func SumFunc[I any, T Number](in []I, f func(I) (T, error)) (T, error) {
	var sum T
	for _, v := range in {
		n, err := f(v)
		if err != nil {
			return 0, err
		}
		sum += n
	}
	return sum, nil
}

// Int returns the int value of the string. It panics if s is not a number.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
