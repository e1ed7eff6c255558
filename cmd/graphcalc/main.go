package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/zephyrtronium/graphcalc"
)

const usage = `usage: graphcalc [flags] command args...

commands:
	eval formula x...              evaluate formula at each x
	table formula [min max step]   print a table of values
	zero formula guess             find a zero near guess
	extremum formula guess         find a local extremum near guess
	postfix formula                print the compiled postfix form
	ticks minX maxX [scale]        print radian x-axis ticks
	axis min max [scale]           print decimal axis tick labels
	reduce num den                 reduce a fraction

flags:
`

func main() {
	log.SetFlags(0)
	var (
		confname, backend, verb string
		strict                  bool
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.StringVar(&confname, "config", "", "YAML config file")
	flag.StringVar(&backend, "backend", "", "evaluation backend, rpn or script (default from config, else rpn)")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default from config, else %g)")
	flag.BoolVar(&strict, "strict", false, "reject malformed postfix instead of ignoring it")
	flag.Parse()

	cfg, err := loadConfig(confname)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = backend
		case "fmt":
			cfg.Format = verb
		case "strict":
			cfg.Strict = strict
		}
	})
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(&cfg, flag.Args(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run executes one command.
func run(cfg *config, args []string, w io.Writer) error {
	cmd, args := args[0], args[1:]
	switch cmd {
	case "eval":
		if len(args) < 2 {
			return fmt.Errorf("eval needs a formula and at least one x")
		}
		f, err := compile(cfg, args[0])
		if err != nil {
			return err
		}
		xs, err := floats(args[1:])
		if err != nil {
			return err
		}
		for _, x := range xs {
			y, err := f.EvalAt(x)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, cfg.Format+"\n", y)
		}
	case "table":
		if len(args) != 1 && len(args) != 4 {
			return fmt.Errorf("table needs a formula and optionally min, max, and step")
		}
		f, err := compile(cfg, args[0])
		if err != nil {
			return err
		}
		r := [3]float64{cfg.Table.Min, cfg.Table.Max, cfg.Table.Step}
		if len(args) == 4 {
			v, err := floats(args[1:])
			if err != nil {
				return err
			}
			copy(r[:], v)
		}
		pts, err := graphcalc.Sample(f, r[0], r[1], r[2])
		if err != nil {
			return err
		}
		for _, p := range pts {
			fmt.Fprintf(w, cfg.Format+"\t"+cfg.Format+"\n", p.X, p.Y)
		}
	case "zero", "extremum":
		if len(args) != 2 {
			return fmt.Errorf("%s needs a formula and a guess", cmd)
		}
		f, err := compile(cfg, args[0])
		if err != nil {
			return err
		}
		guess, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		s := cfg.solver()
		var p graphcalc.Point
		if cmd == "zero" {
			p, err = s.Zero(f, guess)
		} else {
			p, err = s.Extremum(f, guess)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "("+cfg.Format+", "+cfg.Format+")\n", p.X, p.Y)
	case "postfix":
		if len(args) != 1 {
			return fmt.Errorf("postfix needs a formula")
		}
		e, err := graphcalc.Compile(args[0], cfg.options()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n%s\n", e.Normalized(), e)
	case "ticks":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("ticks needs minX, maxX, and optionally a scale")
		}
		b, err := floats(args[:2])
		if err != nil {
			return err
		}
		text := cfg.Scale
		if len(args) == 3 {
			text = args[2]
		}
		sc, err := graphcalc.ParseScale(text)
		if err != nil {
			return err
		}
		ticks, err := graphcalc.RadianTicks(b[0], b[1], sc.Frac)
		if err != nil {
			return err
		}
		for _, t := range ticks {
			fmt.Fprintf(w, "%s\t"+cfg.Format+"\n", t.Label(), t.X)
		}
	case "axis":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("axis needs min, max, and optionally a scale")
		}
		b, err := floats(args[:2])
		if err != nil {
			return err
		}
		text := cfg.Scale
		if len(args) == 3 {
			text = args[2]
		}
		sc, err := graphcalc.ParseScale(text)
		if err != nil {
			return err
		}
		xs, err := graphcalc.LinearTicks(b[0], b[1], sc)
		if err != nil {
			return err
		}
		for _, x := range xs {
			fmt.Fprintln(w, sc.Label(x))
		}
	case "reduce":
		if len(args) != 2 {
			return fmt.Errorf("reduce needs a numerator and a denominator")
		}
		num, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		den, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		f, err := graphcalc.Reduce(num, den)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, f)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func compile(cfg *config, formula string) (graphcalc.Evaluator, error) {
	b, err := graphcalc.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	return graphcalc.New(b, formula, cfg.options()...)
}

func floats(args []string) ([]float64, error) {
	r := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		r[i] = v
	}
	return r, nil
}
