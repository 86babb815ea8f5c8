package main

import (
	"fmt"

	"github.com/angjelo/AIAgentStudio"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("agentstudio", agentstudio.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
