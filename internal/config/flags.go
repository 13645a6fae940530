package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RegisterFlags registers all CLI flags to a cobra command.
func RegisterFlags(cmd *cobra.Command) {
	configureFlags(cmd.Flags())
}

// newFlagCommand creates a cobra command with all flags configured.
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "meliload",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(os.Stdout)
	configureFlags(cmd.Flags())
	return cmd
}

// configureFlags sets up all CLI flags on the provided flag set.
func configureFlags(flags *pflag.FlagSet) {
	// Target and item id source flags
	flags.String("target", DefaultTargetURL, "Base URL of the items endpoint to load test")
	flags.StringSlice("ids", nil, "Inline item ids to request (comma separated or repeatable)")
	flags.String("ids-file", "", "Path to a file with item ids, one per line or as JSON")
	flags.Int("num-ids", 0, "Generate this many synthetic MLA item ids (0 disables)")

	// Load control flags
	flags.Int("batch-size", DefaultBatchSize, "Item ids packed into each request")
	flags.IntP("concurrency", "c", DefaultConcurrency, "Number of concurrent workers")
	flags.Int("runs", DefaultIterations, "Sweeps over the batch list per worker")
	flags.Duration("timeout", DefaultTimeout, "Per-request timeout")

	// Output flags
	flags.String("csv", "", "Write raw per-request latencies to this CSV file")
	flags.Bool("json-output", false, "Emit JSON formatted output")
	flags.String("config", "", "Path to configuration file (JSON or YAML)")
}

// displayHelp prints the help message for a command.
func displayHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Usage: %s\n\nFlags:\n", cmd.UseLine())
	fs := cmd.Flags()
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// applyFlagOverrides applies command-line flag values to the config, overriding
// values from the config file.
func applyFlagOverrides(cfg *Config, fs *pflag.FlagSet) error {
	if fs.Changed("target") {
		val, err := fs.GetString("target")
		if err != nil {
			return err
		}
		cfg.TargetURL = strings.TrimSpace(val)
	}
	if fs.Changed("ids") {
		val, err := fs.GetStringSlice("ids")
		if err != nil {
			return err
		}
		cfg.IDs = val
	}
	if fs.Changed("ids-file") {
		val, err := fs.GetString("ids-file")
		if err != nil {
			return err
		}
		cfg.IDFile = strings.TrimSpace(val)
	}
	if fs.Changed("num-ids") {
		val, err := fs.GetInt("num-ids")
		if err != nil {
			return err
		}
		cfg.SyntheticIDs = val
	}
	if fs.Changed("batch-size") {
		val, err := fs.GetInt("batch-size")
		if err != nil {
			return err
		}
		cfg.BatchSize = val
	}
	if fs.Changed("concurrency") {
		val, err := fs.GetInt("concurrency")
		if err != nil {
			return err
		}
		cfg.Concurrency = val
	}
	if fs.Changed("runs") {
		val, err := fs.GetInt("runs")
		if err != nil {
			return err
		}
		cfg.Iterations = val
	}
	if fs.Changed("timeout") {
		val, err := fs.GetDuration("timeout")
		if err != nil {
			return err
		}
		cfg.Timeout = val
	}
	if fs.Changed("csv") {
		val, err := fs.GetString("csv")
		if err != nil {
			return err
		}
		cfg.CSVPath = strings.TrimSpace(val)
	}
	if fs.Changed("json-output") {
		val, err := fs.GetBool("json-output")
		if err != nil {
			return err
		}
		cfg.JSONOutput = val
	}

	return nil
}
