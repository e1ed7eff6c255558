package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zephyrtronium/graphcalc"
)

func TestParseConfig(t *testing.T) {
	src := []byte(`
backend: script
strict: true
format: "%.2f"
table:
  min: 0
  max: 2
  step: 0.5
solver:
  step: 0.0001
  tolerance: 0.000001
  max_iter: 50
scale: "0.25"
`)
	cfg, err := parseConfig(src)
	if err != nil {
		t.Fatal(err)
	}
	want := config{
		Backend:  "script",
		Strict:   true,
		Variable: "x",
		Format:   "%.2f",
		Table:    tableConfig{Min: 0, Max: 2, Step: 0.5},
		Solver:   solverConfig{Step: 0.0001, Tolerance: 0.000001, MaxIter: 50},
		Scale:    "0.25",
	}
	if cfg != want {
		t.Errorf("wrong config:\n\twant %+v\n\tgot  %+v", want, cfg)
	}
	s := cfg.solver()
	if s.Step != 0.0001 || s.Tolerance != 0.000001 || s.MaxIter != 50 {
		t.Errorf("wrong solver %+v", s)
	}
	if opts := cfg.options(); len(opts) != 2 {
		t.Errorf("want variable and strict options, got %d", len(opts))
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]byte("variable: t\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := defaultConfig()
	want.Variable = "t"
	if cfg != want {
		t.Errorf("wrong config:\n\twant %+v\n\tgot  %+v", want, cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"yaml", "backend: [rpn"},
		{"backend", "backend: js"},
		{"variable", "variable: X"},
		{"variable-long", "variable: xy"},
		{"step", "table:\n  min: 0\n  max: 1\n  step: 0"},
		{"max-iter", "solver:\n  max_iter: -1"},
		{"scale", "scale: abc"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := parseConfig([]byte(c.src)); err == nil {
				t.Errorf("%q gave no error", c.src)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != defaultConfig() {
		t.Errorf("empty name gave %+v", cfg)
	}
	name := filepath.Join(t.TempDir(), "graphcalc.yaml")
	if err := os.WriteFile(name, []byte("format: \"%.3f\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "%.3f" {
		t.Errorf("wrong format %q", cfg.Format)
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file gave no error")
	}
}

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		cfg  func(*config)
		args []string
		out  string
	}{
		{"eval", nil, []string{"eval", "2x+1", "3", "-1"}, "7\n-1\n"},
		{"eval-script", func(c *config) { c.Backend = "script" }, []string{"eval", "x^2", "3"}, "9\n"},
		{"eval-var", func(c *config) { c.Variable = "t" }, []string{"eval", "2t", "3"}, "6\n"},
		{"eval-legacy", nil, []string{"eval", "2 3", "0"}, "3\n"},
		{"table", nil, []string{"table", "x^2", "0", "2", "1"}, "0\t0\n1\t1\n2\t4\n"},
		{"table-config", func(c *config) { c.Table = tableConfig{Min: -1, Max: 1, Step: 1} }, []string{"table", "2x"}, "-1\t-2\n0\t0\n1\t2\n"},
		{"zero", nil, []string{"zero", "x", "0"}, "(0, 0)\n"},
		{"extremum", func(c *config) { c.Format = "%.3f" }, []string{"extremum", "(x-1)^2+2", "0"}, "(1.000, 2.000)\n"},
		{"postfix", nil, []string{"postfix", "2x+1"}, "2*x+1\n2 x * 1 +\n"},
		{"ticks", nil, []string{"ticks", "0", "4", "1/2"}, "π/2\t1.5707963267948966\nπ\t3.141592653589793\n"},
		{"axis", nil, []string{"axis", "-1", "1", "0.5"}, "-1.0\n-0.5\n0.5\n1.0\n"},
		{"reduce", nil, []string{"reduce", "4", "8"}, "1/2\n"},
		{"reduce-neg", nil, []string{"reduce", "3", "-6"}, "-1/2\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaultConfig()
			if c.cfg != nil {
				c.cfg(&cfg)
			}
			var buf bytes.Buffer
			if err := run(&cfg, c.args, &buf); err != nil {
				t.Fatalf("%q failed: %v", c.args, err)
			}
			if got := buf.String(); got != c.out {
				t.Errorf("%q gave wrong output:\n\twant %q\n\tgot  %q", c.args, c.out, got)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  func(*config)
		args []string
		is   error
	}{
		{"unknown", nil, []string{"plot", "x"}, nil},
		{"eval-args", nil, []string{"eval", "x"}, nil},
		{"eval-x", nil, []string{"eval", "x", "a"}, nil},
		{"compile", nil, []string{"eval", "2+*3", "0"}, nil},
		{"strict", func(c *config) { c.Strict = true }, []string{"eval", "2 3", "0"}, nil},
		{"table-range", nil, []string{"table", "x", "0", "1", "0"}, nil},
		{"zero", nil, []string{"zero", "5", "0"}, graphcalc.ErrNotFound},
		{"ticks-scale", nil, []string{"ticks", "0", "1", "-1"}, nil},
		{"reduce-zero", nil, []string{"reduce", "1", "0"}, graphcalc.ErrZeroDenominator},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaultConfig()
			if c.cfg != nil {
				c.cfg(&cfg)
			}
			var buf bytes.Buffer
			err := run(&cfg, c.args, &buf)
			if err == nil {
				t.Fatalf("%q gave no error; output %q", c.args, buf.String())
			}
			if c.is != nil && !errors.Is(err, c.is) {
				t.Errorf("%q: want %v, got %v", c.args, c.is, err)
			}
		})
	}
}

func TestUsageListsCommands(t *testing.T) {
	for _, cmd := range []string{"eval", "table", "zero", "extremum", "postfix", "ticks", "axis", "reduce"} {
		if !strings.Contains(usage, "\t"+cmd+" ") {
			t.Errorf("usage does not mention %s", cmd)
		}
	}
}
