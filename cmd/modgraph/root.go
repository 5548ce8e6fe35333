package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modgraph/modular"
)

// app carries the resolved configuration and logger shared by subcommands.
type app struct {
	configPath string
	verbose    bool
	cfg        Config
	logger     *slog.Logger
}

// newRootCmd wires the command tree. Each call returns an independent tree so
// tests can execute commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	root := &cobra.Command{
		Use:   "modgraph",
		Short: "Build directed graphs over primes from multiplicative orders",
		Long: `modgraph builds the modular graph over a set of primes P and an exponent A:
an edge p→q exists when the multiplicative order of p modulo q divides A.
The extended variant weights every pair with exp(iπ·A/ord).

Subcommands:
  graph    - print (or render as DOT) one graph
  algebra  - union, intersection and complement exponents
  demo     - the sample runs over P = {3,5,7,11}`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (flags override its values)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.Int("workers", 1, "Goroutines used to compute order-matrix rows")
	pf.Bool("check-primes", false, "Reject inputs that are not prime")

	root.AddCommand(newGraphCmd(a), newAlgebraCmd(a), newDemoCmd(a))

	return root
}

// init loads the config file, applies changed flags over it and sets up the
// logger. Runs before every subcommand.
func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.configPath != "" {
		a.logger.Debug("configuration loaded", "path", a.configPath)
	}

	fs := cmd.Flags()
	if fs.Changed("workers") {
		cfg.Workers, _ = fs.GetInt("workers")
	}
	if fs.Changed("check-primes") {
		cfg.CheckPrimes, _ = fs.GetBool("check-primes")
	}
	if fs.Changed("primes") {
		cfg.Primes, _ = fs.GetInt64Slice("primes")
	}
	if fs.Changed("exp") {
		cfg.Exponent, _ = fs.GetInt64("exp")
	}
	if fs.Changed("other") {
		cfg.Other, _ = fs.GetInt64("other")
	}
	if fs.Changed("extended") {
		cfg.Extended, _ = fs.GetBool("extended")
	}
	if fs.Changed("format") {
		cfg.Format, _ = fs.GetString("format")
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	return nil
}

// graphOptions turns the configuration into construction options.
func (a *app) graphOptions() []modular.Option {
	return []modular.Option{
		modular.WithWorkers(a.cfg.Workers),
		modular.WithLogger(a.logger),
	}
}

// build constructs the configured graph with exponent exp.
func (a *app) build(exp int64, extended bool) *modular.Graph {
	if extended {
		return modular.NewExtendedGraph(a.cfg.Primes, exp, a.graphOptions()...)
	}

	return modular.NewGraph(a.cfg.Primes, exp, a.graphOptions()...)
}
