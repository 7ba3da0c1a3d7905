package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/dbof/internal/dbflog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logDbg  bool
)

var rootCmd = &cobra.Command{
	Use:   "dbofctl",
	Short: "Inspect and build DBOF-encoded object streams",
	Long: `dbofctl reads and writes DBOF ("Dynamic Binary Object Format") files:
self-describing binary streams of scalars and containers produced by the
DBOF-1 codec.`,
	Version: "0.1.0",
	// PersistentPreRunE runs after Cobra parses flags, unlike a check in
	// execute() before Execute() is even called — logDbg isn't populated yet
	// at that point.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logDbg {
			dbflog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logDbg, "debug-log", false, "Emit codec/object-model debug logs to stderr")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
