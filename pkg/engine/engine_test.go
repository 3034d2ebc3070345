package engine

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sanity-io/litter"
	"github.com/spf13/afero"
	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/expr"
	"github.com/wildfunctions/symbolics/pkg/numeric"
	"github.com/wildfunctions/symbolics/pkg/parse"
	"github.com/wildfunctions/symbolics/pkg/property"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Trees = 200
	cfg.Seed = 42
	cfg.Workers = 4
	return cfg
}

func newTestEngine(t *testing.T, cfg Config, fs afero.Fs) *Engine {
	t.Helper()
	e, err := New(cfg, WithRegistry(prometheus.NewRegistry()), WithFs(fs))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Numeric = "complex"
	cfg.Pool = "nope"
	cfg.Checks = []string{"clone", "associative"}
	cfg.Trees = 0
	cfg.Workers = -1
	cfg.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
	if n := errwrap.Count(err); n != 6 {
		t.Errorf("expected 6 problems, got %d: %v", n, err)
	}
	if _, err := New(cfg, WithRegistry(prometheus.NewRegistry())); err == nil {
		t.Error("New accepted an invalid config")
	}
}

func TestLoadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := "pool: polynomial\ntrees: 10\nchecks: [clone, roundtrip]\nnumeric: float\n"
	if err := afero.WriteFile(fs, "/etc/symbolics.yaml", []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(fs, "/etc/symbolics.yaml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := DefaultConfig()
	want.Pool = "polynomial"
	want.Trees = 10
	want.Checks = []string{"clone", "roundtrip"}
	want.Numeric = "float"
	if diff := cmp.Diff(want, cfg, cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Logf"
	}, cmp.Ignore())); diff != "" {
		t.Errorf("LoadConfig (-want +got):\n%s", diff)
	}

	if err := afero.WriteFile(fs, "/bad.yaml", []byte("color: red\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(fs, "/bad.yaml"); err == nil {
		t.Error("expected an error for an unknown key")
	}
	if _, err := LoadConfig(fs, "/missing.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig()
	var logged []string
	cfg.Logf = func(format string, v ...interface{}) {
		logged = append(logged, format)
	}
	e := newTestEngine(t, cfg, afero.NewMemMapFs())

	report, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if report.Trees != cfg.Trees {
		t.Errorf("checked %d trees, want %d", report.Trees, cfg.Trees)
	}
	if len(report.Stats) != len(cfg.Checks) {
		t.Fatalf("got stats for %d checks, want %d", len(report.Stats), len(cfg.Checks))
	}
	for _, s := range report.Stats {
		if total := s.Passed + s.Failed + s.Skipped; total != cfg.Trees {
			t.Errorf("%s: counted %d results, want %d", s.Check, total, cfg.Trees)
		}
		for _, result := range []struct {
			label string
			want  int
		}{{"pass", s.Passed}, {"fail", s.Failed}, {"skip", s.Skipped}} {
			got := testutil.ToFloat64(e.metrics.checksTotal.WithLabelValues(s.Check, result.label))
			if int(got) != result.want {
				t.Errorf("counter %s/%s = %v, want %d", s.Check, result.label, got, result.want)
			}
		}
		// these hold for every tree the conservative pool can build
		if s.Check != "idempotent" && s.Failed != 0 {
			t.Errorf("%s failed %d times", s.Check, s.Failed)
		}
	}
	if len(logged) == 0 {
		t.Error("nothing was logged")
	}
	if t.Failed() {
		t.Logf("report:\n%s", litter.Sdump(report))
	}
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Pool = "kitchensink"
	cfg.Numeric = "float"

	a, err := newTestEngine(t, cfg, afero.NewMemMapFs()).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	cfg.Workers = 1
	b, err := newTestEngine(t, cfg, afero.NewMemMapFs()).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("runs with the same seed differ (-a +b):\n%s", diff)
		t.Logf("first run:\n%s", litter.Sdump(a))
	}
}

func TestRunCancelled(t *testing.T) {
	e := newTestEngine(t, testConfig(), afero.NewMemMapFs())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := e.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if report.Trees != 0 {
		t.Errorf("checked %d trees after cancel", report.Trees)
	}
}

func TestRandomSeedIsRecorded(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	e := newTestEngine(t, cfg, afero.NewMemMapFs())
	if e.Seed() == 0 {
		t.Error("expected a generated seed")
	}
}

const batchInput = `# simplify these
add(1, 2)

multiply([x], 1)
divide([x], 0)
power([x], 2)
bogus(
`

func TestBatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/in.txt", []byte(batchInput), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.Workers = 3
	e := newTestEngine(t, cfg, fs)

	var buf bytes.Buffer
	err := e.Batch(context.Background(), "/in.txt", "simplify", &buf)
	if n := errwrap.Count(err); n != 2 {
		t.Errorf("expected 2 errors, got %d: %v", n, err)
	}
	if !errors.Is(err, expr.ErrDivideByZero) {
		t.Errorf("expected ErrDivideByZero in %v", err)
	}
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("expected ErrParse in %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 output lines, got %d:\n%s", len(lines), buf.String())
	}
	exact := map[int]string{
		0: "2: add(1, 2) => 3",
		1: "4: multiply([x], 1) => x",
		3: "6: power([x], 2) => x^2",
	}
	for i, want := range exact {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
	if !strings.HasPrefix(lines[2], "5: divide([x], 0) => error: ") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.HasPrefix(lines[4], "7: bogus( => error: ") {
		t.Errorf("line 4 = %q", lines[4])
	}

	if got := testutil.ToFloat64(e.metrics.batchLinesTotal.WithLabelValues("simplify", "ok")); got != 3 {
		t.Errorf("ok counter = %v, want 3", got)
	}
	if got := testutil.ToFloat64(e.metrics.batchLinesTotal.WithLabelValues("simplify", "error")); got != 2 {
		t.Errorf("error counter = %v, want 2", got)
	}
}

func TestBatchIntegrateAndClassify(t *testing.T) {
	fs := afero.NewMemMapFs()
	input := "add(add(multiply(3, power([x], 2)), multiply(2, [x])), 1)\n[x]\n"
	if err := afero.WriteFile(fs, "/in.txt", []byte(input), 0644); err != nil {
		t.Fatal(err)
	}
	e := newTestEngine(t, testConfig(), fs)

	var buf bytes.Buffer
	if err := e.Batch(context.Background(), "/in.txt", "integrate:x", &buf); err != nil {
		t.Fatalf("integrate: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "1: add(add(multiply(3, power([x], 2)), multiply(2, [x])), 1) => x^3 + x^2 + x\n") {
		t.Errorf("integrate output:\n%s", buf.String())
	}

	buf.Reset()
	if err := e.Batch(context.Background(), "/in.txt", "classify", &buf); err != nil {
		t.Fatalf("classify: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("classify output:\n%s", buf.String())
	}
	if !strings.Contains(lines[0], "quadratic") || !strings.Contains(lines[0], "degree=2") {
		t.Errorf("quadratic line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "linear") || strings.Contains(lines[1], "quadratic") {
		t.Errorf("linear line = %q", lines[1])
	}
}

func TestBatchJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/in.txt", []byte("add(1, 2)\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.Format = "json"
	e := newTestEngine(t, cfg, fs)

	var buf bytes.Buffer
	if err := e.Batch(context.Background(), "/in.txt", "simplify", &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"output": "3"`) {
		t.Errorf("json output:\n%s", buf.String())
	}
}

func TestBatchErrors(t *testing.T) {
	e := newTestEngine(t, testConfig(), afero.NewMemMapFs())
	var buf bytes.Buffer
	for _, op := range []string{"derive", "integrate:", ""} {
		if err := e.Batch(context.Background(), "/in.txt", op, &buf); !errors.Is(err, ErrUnknownOp) {
			t.Errorf("op %q: expected ErrUnknownOp, got %v", op, err)
		}
	}
	if err := e.Batch(context.Background(), "/missing.txt", "simplify", &buf); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestShrinkKeepsError(t *testing.T) {
	var logged []string
	cfg := testConfig()
	cfg.Logf = func(format string, v ...interface{}) {
		logged = append(logged, format)
	}
	e := newTestEngine(t, cfg, afero.NewMemMapFs())
	s := expr.New[*big.Rat](numeric.Rational{})

	// fails on any product and says how big the tree was
	check := func(s *expr.Symbolics[*big.Rat], tree expr.Node[*big.Rat]) error {
		if !expr.Contains[*big.Rat, *expr.Binary[*big.Rat]](tree, func(b *expr.Binary[*big.Rat]) bool { return b.Op == expr.OpMultiply }) {
			return nil
		}
		return errwrap.Wrapf(property.ErrViolated, "size %d", tree.NodeCount())
	}
	tree, err := parse.Parse[*big.Rat](numeric.Rational{}, "add(sin([y]), multiply([x], 2))")
	if err != nil {
		t.Fatal(err)
	}

	shrunk, shrunkErr := shrink(e, s, "products", tree, check)
	if shrunk != "x * 2" {
		t.Errorf("shrunk to %q", shrunk)
	}
	if want := "size 3: property violated"; shrunkErr != want {
		t.Errorf("shrunk error %q, want %q", shrunkErr, want)
	}
	if len(logged) != 0 {
		t.Errorf("unexpected log lines: %v", logged)
	}

	var buf bytes.Buffer
	WriteText(&buf, Report{Trees: 1, Failures: []Failure{{
		Check:       "products",
		Tree:        tree.String(),
		Shrunk:      shrunk,
		ShrunkError: shrunkErr,
		Error:       errwrap.String(check(s, tree)),
	}}})
	if !strings.Contains(buf.String(), "shrunk error: size 3") {
		t.Errorf("output is missing the shrunk error:\n%s", buf.String())
	}
}

func TestWriteText(t *testing.T) {
	r := Report{
		Numeric: "rational",
		Pool:    "conservative",
		Seed:    7,
		Trees:   2,
		Stats:   []CheckStats{{Check: "idempotent", Passed: 1, Failed: 1}},
		Failures: []Failure{{
			Check:  "idempotent",
			Tree:   "x * (1 + x)",
			Prefix: "multiply([x], add(1, [x]))",
			Shrunk: "x * (1 + x)",
			Error:  "property violated",
		}},
	}
	var buf bytes.Buffer
	WriteText(&buf, r)
	for _, want := range []string{"Checked 2 trees", "idempotent", "shrunk: x * (1 + x)", "prefix: multiply"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output is missing %q:\n%s", want, buf.String())
		}
	}
}
