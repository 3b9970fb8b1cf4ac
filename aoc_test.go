package aoc

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
		ok      bool
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
			ok: true,
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
			ok: true,
		},
		{
			comment: `// want=2286`,
			want:    sample{want: "2286"},
			ok:      true,
		},
		{
			comment: `// D1p1 solves part one.`,
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseSample(%q) = %v, %v; want %v, %v", tt.comment, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n\n", nil},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"  a\nb  ", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := SplitLines(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

var errBoom = errors.New("boom")

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() (any, error) {
	return len(s.Lines()), nil
}

func (s testSolver) D1p2() (any, error) {
	var sum int
	err := s.ForLines(func(line string) error {
		sum += Int(line)
		return nil
	})
	return sum, err
}

func (s testSolver) D2p1() (any, error) {
	return nil, errBoom
}

// NotASolver does not match the D{day}p{part} pattern and is ignored.
func (s testSolver) NotASolver() {}

const testSolverSrc = `package aoc

/*
want=3

1
2
3
*/
func (s testSolver) D1p1() (any, error) { return nil, nil }

// want=6
func (s testSolver) D1p2() (any, error) { return nil, nil }
`

func writeInput(t *testing.T, day int, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := InputPath(dir, day)
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestInputPath(t *testing.T) {
	if got, want := InputPath("data", 3), filepath.Join("data", "day03", "input"); got != want {
		t.Errorf("InputPath = %q, want %q", got, want)
	}
}

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	var parts []string
	for _, p := range days[1].parts {
		parts = append(parts, p.Name)
	}
	if want := []string{"D1p1", "D1p2"}; !slices.Equal(parts, want) {
		t.Errorf("day 1 parts = %v, want %v", parts, want)
	}

	if _, err := extractMethods(testSolver{}); err == nil {
		t.Error("extractMethods accepted a non-pointer solver")
	}
}

func TestRun(t *testing.T) {
	dir := writeInput(t, 1, "10\n20\n")
	var out bytes.Buffer
	r := &runner{out: &out, inputDir: dir, day: 1}
	s := &testSolver{}
	if err := r.run(2023, []byte(testSolverSrc), s); err != nil {
		t.Fatal(err)
	}
	if s.Puzzle == nil {
		t.Fatal("Puzzle not set on solver")
	}
	got := out.String()
	for _, want := range []string{
		"Running day 1\n",
		"part 1 sample: 3 ✅",
		"part 1: 2 (took",
		"part 2 sample: 6 ✅",
		"part 2: 30 (took",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunOnlySample(t *testing.T) {
	var out bytes.Buffer
	r := &runner{out: &out, inputDir: t.TempDir(), day: 1, part: "2", onlySample: true}
	if err := r.run(2023, []byte(testSolverSrc), &testSolver{}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); strings.Contains(got, "part 1") || !strings.Contains(got, "part 2 sample: 6") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		r := &runner{out: new(bytes.Buffer), inputDir: t.TempDir(), day: 1, skipSample: true}
		err := r.run(2023, []byte(testSolverSrc), &testSolver{})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("err = %v, want not exist", err)
		}
	})
	t.Run("solver error", func(t *testing.T) {
		dir := writeInput(t, 2, "x\n")
		r := &runner{out: new(bytes.Buffer), inputDir: dir, day: 2}
		err := r.run(2023, []byte(testSolverSrc), &testSolver{})
		if !errors.Is(err, errBoom) {
			t.Errorf("err = %v, want %v", err, errBoom)
		}
	})
	t.Run("sample mismatch", func(t *testing.T) {
		src := strings.Replace(testSolverSrc, "want=3", "want=4", 1)
		r := &runner{out: new(bytes.Buffer), inputDir: t.TempDir(), day: 1}
		err := r.run(2023, []byte(src), &testSolver{})
		if !errors.Is(err, errSampleMismatch) {
			t.Errorf("err = %v, want %v", err, errSampleMismatch)
		}
	})
	t.Run("unknown day", func(t *testing.T) {
		r := &runner{out: new(bytes.Buffer), inputDir: t.TempDir(), day: 25}
		if err := r.run(2023, []byte(testSolverSrc), &testSolver{}); err == nil {
			t.Error("run succeeded for a day with no solver")
		}
	})
	t.Run("bad source", func(t *testing.T) {
		r := &runner{out: new(bytes.Buffer), inputDir: t.TempDir(), day: 1}
		if err := r.run(2023, []byte("not go"), &testSolver{}); err == nil {
			t.Error("run succeeded with unparsable source")
		}
	})
}

func TestForLinesError(t *testing.T) {
	p := &Puzzle{input: []byte("a\nb\nc\n")}
	var seen []string
	err := p.ForLines(func(line string) error {
		seen = append(seen, line)
		if line == "b" {
			return errBoom
		}
		return nil
	})
	if !errors.Is(err, errBoom) || !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("err = %v, want line 2: boom", err)
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Errorf("visited %v, want [a b]", seen)
	}
}

func TestMath(t *testing.T) {
	if got := Sum(1, 2, 3); got != 6 {
		t.Errorf("Sum = %v, want 6", got)
	}
	if got := Product(2, 3, 4); got != 24 {
		t.Errorf("Product = %v, want 24", got)
	}
	if got := Product[int](); got != 1 {
		t.Errorf("Product() = %v, want 1", got)
	}
	got, err := SumFunc([]string{"1", "22"}, func(s string) (int, error) { return len(s), nil })
	if err != nil || got != 3 {
		t.Errorf("SumFunc = %v, %v; want 3", got, err)
	}
	if _, err := SumFunc([]int{1}, func(int) (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Errorf("SumFunc err = %v, want %v", err, errBoom)
	}
	if d, ok := Digit('7'); !ok || d != 7 {
		t.Errorf("Digit('7') = %v, %v", d, ok)
	}
	if _, ok := Digit('x'); ok {
		t.Error("Digit('x') succeeded")
	}
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf("Or = %q, want b", got)
	}
}

func TestGrid(t *testing.T) {
	g, err := ParseGrid([]string{"ab", "cd"})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Size(); got != (Pt{2, 2}) {
		t.Errorf("Size = %v", got)
	}
	if got := g.At(Pt{1, 0}); got != 'b' {
		t.Errorf("At(1,0) = %q, want b", got)
	}
	if _, ok := g.AtOk(Pt{2, 0}); ok {
		t.Error("AtOk out of bounds succeeded")
	}
	var n int
	Pt{0, 0}.ForNeighbors(func(Pt) bool { n++; return true })
	if n != 8 {
		t.Errorf("ForNeighbors visited %d points, want 8", n)
	}
	if _, err := ParseGrid([]string{"ab", "c"}); err == nil {
		t.Error("ParseGrid accepted ragged rows")
	}
}
