package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	runOpts       runOptions       // flags of the run command
	replicateOpts replicateOptions // flags of the replicate command
	configPath    string           // --config of the config command
	logLevel      string           // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "linesim",
	Short: "Discrete-event simulator for multi-stage production lines",
}

// setupLogging applies the log level: an explicit --log wins over
// LINESIM_LOG_LEVEL, which wins over the flag default.
func setupLogging(cmd *cobra.Command, e envOverrides) {
	level := logLevel
	if !cmd.Flags().Changed("log") && e.LogLevel != "" {
		level = e.LogLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", level)
	}
	logrus.SetLevel(parsed)
}

// loadEnv reads environment overrides or exits.
func loadEnv() envOverrides {
	e, err := parseEnv()
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	return e
}

// runCmd executes one simulation run using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the production line simulation",
	Run: func(cmd *cobra.Command, args []string) {
		e := loadEnv()
		setupLogging(cmd, e)
		runOpts.seedSet = cmd.Flags().Changed("seed")
		runOpts.targetSet = cmd.Flags().Changed("target")

		if err := executeRun(runOpts, e, os.Stdin, os.Stdout, os.Stderr); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// replicateCmd runs independent replications in parallel
var replicateCmd = &cobra.Command{
	Use:   "replicate",
	Short: "Run independent replications with consecutive seeds",
	Run: func(cmd *cobra.Command, args []string) {
		e := loadEnv()
		setupLogging(cmd, e)
		replicateOpts.seedSet = cmd.Flags().Changed("seed")
		replicateOpts.targetSet = cmd.Flags().Changed("target")

		if err := executeReplicate(context.Background(), replicateOpts, e, os.Stdout); err != nil {
			logrus.Fatalf("Replications failed: %v", err)
		}
	},
}

// configCmd prints the resolved line configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the line configuration as YAML",
	Run: func(cmd *cobra.Command, args []string) {
		e := loadEnv()
		cfg, err := resolveLineConfig(runOptions{configPath: configPath}, e)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := writeLineConfig(os.Stdout, cfg); err != nil {
			logrus.Fatalf("Failed to write config: %v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerLineFlags adds the flags shared by run and replicate.
func registerLineFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Line config YAML (default: built-in bottling line)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "Seed for arrivals and service times")
	cmd.Flags().Int64Var(&opts.target, "target", 0, "Total units to produce (prompted for when unset)")
	cmd.Flags().StringVar(&opts.unitLabel, "unit-label", "bottles", "Name of an output unit in reports")
	cmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// init sets up CLI flags and subcommands
func init() {
	registerLineFlags(runCmd, &runOpts)
	runCmd.Flags().StringVar(&runOpts.traceLevel, "trace", "none", "Station trace level (none, events)")
	runCmd.Flags().BoolVar(&runOpts.histogram, "histogram", true, "Print a wait time histogram")
	runCmd.Flags().StringVar(&runOpts.histStage, "histogram-stage", "", "Stage whose waits are plotted (default: last stage)")
	runCmd.Flags().IntVar(&runOpts.histBins, "histogram-bins", 20, "Number of histogram bins")
	runCmd.Flags().BoolVar(&runOpts.progress, "progress", false, "Show a progress bar on stderr")
	runCmd.Flags().StringVar(&runOpts.resultsPath, "results-path", "", "Write run results as JSON to this file")
	runCmd.Flags().BoolVar(&runOpts.noInteractive, "no-input", false, "Fail instead of prompting when no target is set")

	registerLineFlags(replicateCmd, &replicateOpts.runOptions)
	replicateCmd.Flags().IntVar(&replicateOpts.runs, "runs", 10, "Number of replications")
	replicateCmd.Flags().IntVar(&replicateOpts.workers, "workers", 0, "Parallel workers (default: GOMAXPROCS)")

	configCmd.Flags().StringVar(&configPath, "config", "", "Line config YAML (default: built-in bottling line)")

	rootCmd.AddCommand(runCmd, replicateCmd, configCmd)
}
