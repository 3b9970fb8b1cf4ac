// Package aoc runs Advent of Code solvers and holds the small helpers they
// share. (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples finds the want=/input pairs in the doc comments of the
// solver methods in src. A sample without input reuses the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers and gives them access to the input of the
// part being run.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte
}

// Input returns the raw input of the part being run: the sample in sample
// mode, otherwise the day's input file.
func (p *Puzzle) Input() []byte {
	return p.input
}

// Lines returns the input split into lines. Surrounding whitespace of the
// whole input is trimmed first, so a trailing newline does not produce an
// empty last line.
func (p *Puzzle) Lines() []string {
	return SplitLines(string(p.input))
}

// SplitLines trims s and splits it on newlines, dropping any carriage
// returns.
func SplitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string) error) error {
	for y, line := range p.Lines() {
		if err := onLine(y, line); err != nil {
			return fmt.Errorf("line %d: %w", y+1, err)
		}
	}
	return nil
}

// ForLines calls onLine for each line of input, stopping at the first error.
func (p *Puzzle) ForLines(onLine func(line string) error) error {
	return p.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

func (p *Puzzle) Debugf(format string, args ...any) {
	log.Debug().
		Int("year", p.year).
		Int("day", p.day.day).
		Str("part", p.solver.Part).
		Bool("sample", p.SampleMode).
		Msgf(format, args...)
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. They must have
// the signature func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v = v.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("method %s: got %v; want func() (any, error)", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputDir   string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputDir, "input-dir", "data", "directory holding day<NN>/input files")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runner holds everything a run needs besides the solver itself.
type runner struct {
	out        io.Writer
	inputDir   string
	day        int // -1 for all days
	part       string
	onlySample bool
	skipSample bool
}

// errSampleMismatch is returned when a part disagrees with its sample answer.
var errSampleMismatch = errors.New("sample answer mismatch")

// InputPath returns where the input for day is read from.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d", day), "input")
}

func (r *runner) runDay(p *Puzzle, d day) error {
	p.day = d
	fmt.Fprintln(r.out, "Running day", d.day)
	var input []byte
	for _, ps := range d.parts {
		p.solver = ps
		if r.part != "" && ps.Part != r.part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && r.onlySample {
				continue
			} else if sm && r.skipSample {
				continue
			}
			p.SampleMode = sm
			var want string
			if sm {
				s, ok := p.samples[ps.Name]
				if !ok {
					log.Debug().Str("solver", ps.Name).Msg("no sample; skipping")
					continue
				}
				p.input, want = []byte(s.input), s.want
			} else {
				if input == nil {
					b, err := os.ReadFile(InputPath(r.inputDir, d.day))
					if err != nil {
						return fmt.Errorf("day %d: reading input: %w", d.day, err)
					}
					input = b
				}
				p.input = input
			}
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				if sm {
					return fmt.Errorf("day %d part %s sample: %w", d.day, ps.Part, err)
				}
				return fmt.Errorf("day %d part %s: %w", d.day, ps.Part, err)
			}
			took := time.Since(t0).Round(time.Microsecond)
			if sm {
				if fmt.Sprint(got) != want {
					fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, want)
					return fmt.Errorf("day %d part %s: %w", d.day, ps.Part, errSampleMismatch)
				}
				fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
			} else {
				fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, got, took)
			}
		}
	}
	return nil
}

func (r *runner) run(year int, src []byte, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	sv := reflect.ValueOf(slvr)
	if sv.Kind() != reflect.Pointer || sv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("solver: got %T; want pointer to struct", slvr)
	}
	p := &Puzzle{year: year, samples: samples}
	f := sv.Elem().FieldByName("Puzzle")
	if !f.IsValid() || f.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("solver %T must embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if r.day != -1 {
		d, ok := days[r.day]
		if !ok {
			return fmt.Errorf("no day %d", r.day)
		}
		return r.runDay(p, d)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, dn := range dayNums {
		if err := r.runDay(p, days[dn]); err != nil {
			return err
		}
		fmt.Fprintln(r.out)
	}
	return nil
}

// Run parses the command line flags and runs the solver for year. src is the
// solver's own source, from which sample inputs and answers are read.
// Any failure is fatal.
func Run(year int, src []byte, slvr any) {
	initFlags()
	setupLogging(flagDebug)

	r := &runner{
		out:        os.Stdout,
		inputDir:   flagInputDir,
		day:        flagCurDay,
		part:       flagPart,
		onlySample: flagOnlySample,
		skipSample: flagSkipSample,
	}
	if err := r.run(year, src, slvr); err != nil {
		log.Fatal().Err(err).Int("year", year).Msg("run failed")
	}
}

func setupLogging(debug bool) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
