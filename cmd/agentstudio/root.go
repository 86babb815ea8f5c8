package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/angjelo/AIAgentStudio/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agentstudio",
	Short: "AI Agent Studio is a workflow engine for node-graph agents",
	Long: `AI Agent Studio executes agent workflows: directed graphs of typed
nodes (inputs, outputs, model calls, HTTP calls, transforms, branches,
loops) resolved against a set of input values.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// newLogger builds the CLI logger honoring --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
