package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/katalvlaran/synthgeo/config"
	"github.com/katalvlaran/synthgeo/problembuilder"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "path to a TOML config file overriding the tolerance/limit defaults",
	}
	manualFlag = &cli.StringFlag{
		Name:  "manual",
		Usage: "problem given inline, in the 'point'/'axiom'/'goal' line grammar (see manual.go)",
	}
	maxItersFlag = &cli.IntFlag{
		Name:  "max-iters",
		Usage: "override config's max_iters",
		Value: -1,
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable ANSI highlighting of goal lines in the rendered proof",
	}
)

func main() {
	app := &cli.App{
		Name:  "synthgeo",
		Usage: "saturate and render a synthetic-geometry proof",
		Flags: []cli.Flag{configFlag, manualFlag, maxItersFlag, noColorFlag},
		Action: func(c *cli.Context) error {
			return run(c)
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String(configFlag.Name); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if n := c.Int(maxItersFlag.Name); n >= 0 {
		cfg.MaxIters = n
	}
	cfg.Apply()

	manualSrc := c.String(manualFlag.Name)
	if manualSrc == "" {
		return fmt.Errorf("usage: synthgeo -manual \"<problem string>\" [--config path] [--max-iters n] [--no-color]")
	}
	mp, err := parseManual(manualSrc)
	if err != nil {
		return fmt.Errorf("parsing -manual: %w", err)
	}

	problem, err := problembuilder.Build(mp.points, mp.axioms, mp.goals,
		problembuilder.WithColor(!c.Bool(noColorFlag.Name)),
		problembuilder.WithSearchARCap(cfg.SearchARPointCap))
	if err != nil {
		return fmt.Errorf("constructing problem: %w", err)
	}

	if problem.IsSolved() {
		fmt.Println("Already solved!")
	} else {
		problem.Saturate(cfg.MaxIters)
	}

	text, err := problem.Render()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(text)

	if !problem.IsSolved() {
		os.Exit(1)
	}
	return nil
}
