package main

import (
	"fmt"

	"github.com/joshuapare/dbof/pkg/dbof"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dbofctl %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  wire format: DBOF-1 (default version %d)\n", dbof.DefaultVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
