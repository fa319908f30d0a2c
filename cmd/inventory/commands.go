package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/inventory/config"
	"github.com/CodeStranger-Fred/inventory/mdp"
	"github.com/CodeStranger-Fred/inventory/plot"
	"github.com/CodeStranger-Fred/inventory/report"
	"github.com/CodeStranger-Fred/inventory/store"
)

func newRootCmd() *cobra.Command {
	var (
		cfg    *config.Config
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "inventory"})
	)

	rootCmd := &cobra.Command{
		Use:           "inventory",
		Short:         "Smartphone store inventory agent simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logger.SetLevel(log.DebugLevel)
			}
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
			return nil
		},
	}
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// subcommands read cfg lazily, after PersistentPreRunE has filled it
	getConfig := func() *config.Config { return cfg }

	rootCmd.AddCommand(newRunCmd(getConfig, logger))
	rootCmd.AddCommand(newBatchCmd(getConfig, logger))
	rootCmd.AddCommand(newConfigCmd(getConfig))

	return rootCmd
}

func newRunCmd(getConfig func() *config.Config, logger *log.Logger) *cobra.Command {
	var (
		steps    int
		seed     uint64
		chartDir string
		noChart  bool
		trace    bool
		serve    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and chart its history",
		Example: `  inventory run --steps 50 --seed 7
  inventory run --trace --no-chart`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if cmd.Flags().Changed("steps") {
				cfg.Steps = steps
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("chart-dir") {
				cfg.ChartDir = chartDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSimulation(cmd.OutOrStdout(), cfg, logger, runOptions{
				chart: !noChart,
				trace: trace,
				serve: serve,
			})
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 50, "Number of decision steps")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&chartDir, "chart-dir", "charts", "Directory for the HTML chart")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip writing the chart")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print every decision")
	cmd.Flags().StringVar(&serve, "serve", "", "Serve the chart directory on this address after the run, e.g. localhost:8089")

	return cmd
}

type runOptions struct {
	chart bool
	trace bool
	serve string
}

func runSimulation(out io.Writer, cfg *config.Config, logger *log.Logger, ro runOptions) error {
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	env, err := store.NewSmartphoneEnvironment(cfg.EnvironmentParams(), rng)
	if err != nil {
		return err
	}
	agent := store.NewSmartphoneAgent(cfg.AgentParams())

	opts := []mdp.Option[store.Percept, store.Action]{
		mdp.WithLogger[store.Percept, store.Action](logger),
	}
	if ro.trace {
		opts = append(opts, mdp.WithObserver[store.Percept, store.Action](report.Trace(out)))
	}

	sim := store.NewSimulation(agent, env, opts...)
	if err := sim.Run(cfg.Steps); err != nil {
		return err
	}
	fmt.Fprintln(out, report.RenderSummary(report.Summarize(env, agent)))

	if !ro.chart {
		return nil
	}
	history := plot.HistoryOf(env, agent)
	path, err := plot.WriteFile(cfg.ChartDir, "inventory.html", func(w io.Writer) error {
		return plot.RenderHistory(w, history)
	})
	if err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	logger.Info("chart written", "path", path)

	if ro.serve != "" {
		return plot.Serve(ro.serve, cfg.ChartDir, logger)
	}
	return nil
}

func newBatchCmd(getConfig func() *config.Config, logger *log.Logger) *cobra.Command {
	var (
		runs    int
		steps   int
		seed    uint64
		noChart bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Average many seeded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if cmd.Flags().Changed("steps") {
				cfg.Steps = steps
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger.Info("batch started", "runs", runs, "steps", cfg.Steps, "seed", cfg.Seed)
			res, err := store.RunRepeatedly(cfg.EnvironmentParams(), cfg.AgentParams(), cfg.Seed, runs, cfg.Steps)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.RenderBatch(res))

			if noChart {
				return nil
			}
			path, err := plot.WriteFile(cfg.ChartDir, "batch.html", func(w io.Writer) error {
				return plot.RenderBatch(w, res)
			})
			if err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
			logger.Info("chart written", "path", path)
			return nil
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 100, "Number of independent runs")
	cmd.Flags().IntVar(&steps, "steps", 50, "Number of decision steps per run")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Base random seed")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip writing the chart")

	return cmd
}

func newConfigCmd(getConfig func() *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cmd.OutOrStdout(), getConfig())
		},
	})

	return configCmd
}

func showConfig(w io.Writer, cfg *config.Config) {
	var delta []string
	for _, d := range cfg.Store.PriceDelta {
		delta = append(delta, fmt.Sprintf("%g", d))
	}
	fmt.Fprintf(w, "steps:                 %d\n", cfg.Steps)
	fmt.Fprintf(w, "seed:                  %d\n", cfg.Seed)
	fmt.Fprintf(w, "chart dir:             %s\n", cfg.ChartDir)
	fmt.Fprintf(w, "initial stock:         %g\n", cfg.Store.InitialStock)
	fmt.Fprintf(w, "initial price:         %g\n", cfg.Store.InitialPrice)
	fmt.Fprintf(w, "price delta:           [%s]\n", strings.Join(delta, ", "))
	fmt.Fprintf(w, "noise stddev:          %g\n", cfg.Store.NoiseStdDev)
	fmt.Fprintf(w, "daily sales:           %s\n", cfg.Store.DailySales.DiscretePdf)
	fmt.Fprintf(w, "initial average price: %g\n", cfg.Agent.InitialAveragePrice)
	fmt.Fprintf(w, "smoothing:             %g\n", cfg.Agent.Smoothing)
	fmt.Fprintf(w, "discount ratio:        %g\n", cfg.Agent.DiscountRatio)
	fmt.Fprintf(w, "discount stock floor:  %g\n", cfg.Agent.DiscountStockFloor)
	fmt.Fprintf(w, "reorder point:         %g\n", cfg.Agent.ReorderPoint)
	fmt.Fprintf(w, "bulk / restock order:  %d / %d\n", cfg.Agent.BulkOrder, cfg.Agent.RestockOrder)
}
