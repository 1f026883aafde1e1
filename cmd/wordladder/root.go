package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/smulvey2/Graph/internal/config"
	"github.com/smulvey2/Graph/ladder"
	"github.com/smulvey2/Graph/words"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	root *cobra.Command

	configPath string
	flags      config.Config

	cfg  config.Config
	log  *slog.Logger
	reg  *prometheus.Registry
	proc *ladder.Processor
}

func newApp() *app {
	a := &app{flags: config.Default()}

	root := &cobra.Command{
		Use:   "wordladder",
		Short: "Find shortest word ladders in a dictionary",
		Long: `wordladder loads a dictionary, links words that differ by one
substitution, insertion or deletion, and answers ladder queries.

Examples:
  wordladder --words words.txt path cold warm
  wordladder --config wordladder.yaml neighbors cold --depth 2`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&a.flags.WordsPath, "words", "w", a.flags.WordsPath, "dictionary file, one word per line")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "debug, info, warn or error")
	pf.BoolVar(&a.flags.Batch, "batch", a.flags.Batch, "precompute once after loading instead of per word")
	pf.StringVar(&a.flags.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		a.pathCmd(),
		a.distanceCmd(),
		a.neighborsCmd(),
		a.islandsCmd(),
		a.statsCmd(),
	)
	a.root = root

	return a
}

// execute runs the command line, then writes the metrics file whether or
// not the command succeeded.
func (a *app) execute() error {
	err := a.root.Execute()
	if merr := a.writeMetrics(); merr != nil {
		return errors.Join(err, merr)
	}

	return err
}

// resolveConfig layers the config file, then explicitly set flags.
func (a *app) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return cfg, err
		}
	}
	pf := cmd.Flags()
	if pf.Changed("words") {
		cfg.WordsPath = a.flags.WordsPath
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if pf.Changed("batch") {
		cfg.Batch = a.flags.Batch
	}
	if pf.Changed("metrics-file") {
		cfg.MetricsFile = a.flags.MetricsFile
	}

	return cfg, cfg.Validate()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Level()
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.reg = prometheus.NewRegistry()

	opts := []ladder.Option{
		ladder.WithLogger(a.log),
		ladder.WithMetrics(ladder.NewMetrics(a.reg)),
	}
	if cfg.Batch {
		opts = append(opts, ladder.WithDeferredPrecompute())
	}
	a.proc = ladder.New(opts...)

	if _, err := a.proc.PopulateFrom(words.File(cfg.WordsPath)); err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}

	return nil
}

// writeMetrics dumps the registry to the configured metrics file. Nothing
// is written if setup stopped before the registry existed.
func (a *app) writeMetrics() error {
	if a.reg == nil || a.cfg.MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, a.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Debug("metrics written", slog.String("path", a.cfg.MetricsFile))

	return nil
}
