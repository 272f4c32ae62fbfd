package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var latestExport bool

var rootCmd = &cobra.Command{
	Use:   "coinfolio [input.csv] [output.html]",
	Short: "Turn a CoinSnap export into a browsable collection page",
	Long: "Convert a CoinSnap CSV export into a single self-contained HTML page " +
		"with sortable, filterable list and grid views, or into other collection artifacts",
	Args: cobra.MaximumNArgs(2),
	Run:  runRender,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&latestExport, "latest", false,
		"use the most recent CoinSnap export from ~/Downloads as input")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(epubCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
