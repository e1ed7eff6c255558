package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/graphcalc"
)

// config is the file configuration. Command line flags override it.
type config struct {
	// Backend is "rpn" or "script".
	Backend string `yaml:"backend"`
	// Strict enables strict RPN evaluation.
	Strict bool `yaml:"strict"`
	// Variable is the free variable letter.
	Variable string `yaml:"variable"`
	// Format is the fmt verb for printing numbers.
	Format string `yaml:"format"`
	// Table is the default range for the table command.
	Table tableConfig `yaml:"table"`
	// Solver holds Newton's method parameters.
	Solver solverConfig `yaml:"solver"`
	// Scale is the default x-axis increment for the ticks command.
	Scale string `yaml:"scale"`
}

type tableConfig struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

type solverConfig struct {
	Step      float64 `yaml:"step"`
	Tolerance float64 `yaml:"tolerance"`
	MaxIter   int     `yaml:"max_iter"`
}

func defaultConfig() config {
	return config{
		Backend:  graphcalc.RPN.String(),
		Variable: graphcalc.DefaultVariable,
		Format:   "%g",
		Table: tableConfig{
			Min:  graphcalc.DefaultTableMin,
			Max:  graphcalc.DefaultTableMax,
			Step: graphcalc.DefaultTableStep,
		},
		Solver: solverConfig{
			Step:      graphcalc.DefaultStep,
			Tolerance: graphcalc.DefaultTolerance,
			MaxIter:   graphcalc.DefaultMaxIter,
		},
		Scale: "1/2",
	}
}

// loadConfig reads a YAML config file over the defaults. An empty name gives
// the defaults.
func loadConfig(name string) (config, error) {
	cfg := defaultConfig()
	if name == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	return parseConfig(b)
}

func parseConfig(b []byte) (config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg *config) validate() error {
	if _, err := graphcalc.ParseBackend(cfg.Backend); err != nil {
		return err
	}
	if len(cfg.Variable) != 1 || cfg.Variable[0] < 'a' || cfg.Variable[0] > 'z' {
		return fmt.Errorf("variable must be one lowercase letter, not %q", cfg.Variable)
	}
	if !(cfg.Table.Step > 0) {
		return fmt.Errorf("table step must be positive, not %g", cfg.Table.Step)
	}
	if cfg.Solver.MaxIter < 0 {
		return fmt.Errorf("solver max_iter must not be negative, not %d", cfg.Solver.MaxIter)
	}
	if _, err := graphcalc.ParseScale(cfg.Scale); err != nil {
		return err
	}
	return nil
}

// options returns the compile options the config selects.
func (cfg *config) options() []graphcalc.Option {
	opts := []graphcalc.Option{graphcalc.Variable(rune(cfg.Variable[0]))}
	if cfg.Strict {
		opts = append(opts, graphcalc.Strict())
	}
	return opts
}

func (cfg *config) solver() graphcalc.Solver {
	return graphcalc.Solver{
		Step:      cfg.Solver.Step,
		Tolerance: cfg.Solver.Tolerance,
		MaxIter:   cfg.Solver.MaxIter,
	}
}
