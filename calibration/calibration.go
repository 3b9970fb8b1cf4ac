// Package calibration recovers calibration values from the lines of an
// amended calibration document.
package calibration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/snowisland/aoc"
)

// ErrNoDigit is returned when a line holds nothing that reads as a digit.
var ErrNoDigit = errors.New("no digit found")

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Value returns 10*first+last where first and last are the first and last
// ASCII digits of line. A lone digit is used for both ends.
func Value(line string) (int, error) {
	return value(line, false)
}

// ValueWithSpelling is like Value but also counts the words "one" through
// "nine" as digits. Words may overlap, so "eightwo" reads as 8 then 2.
func ValueWithSpelling(line string) (int, error) {
	return value(line, true)
}

func value(line string, withSpelling bool) (int, error) {
	first, last := -1, -1
	forDigits(line, withSpelling, func(d int) {
		if first == -1 {
			first = d
		}
		last = d
	})
	if first == -1 {
		return 0, fmt.Errorf("%w in %q", ErrNoDigit, line)
	}
	return 10*first + last, nil
}

// Digits returns every digit found in line, in order of their starting
// position.
func Digits(line string, withSpelling bool) []int {
	var out []int
	forDigits(line, withSpelling, func(d int) {
		out = append(out, d)
	})
	return out
}

func forDigits(line string, withSpelling bool, f func(int)) {
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line[i:], withSpelling); ok {
			f(d)
		}
	}
}

// digitAt reports the digit that s starts with, if any.
func digitAt(s string, withSpelling bool) (int, bool) {
	if d, ok := aoc.Digit(rune(s[0])); ok {
		return d, true
	}
	if !withSpelling {
		return 0, false
	}
	for i, w := range spelled {
		if strings.HasPrefix(s, w) {
			return i + 1, true
		}
	}
	return 0, false
}
