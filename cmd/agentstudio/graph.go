package main

import (
	"fmt"
	"os"

	"github.com/angjelo/AIAgentStudio/internal/presentation/graph"
	"github.com/angjelo/AIAgentStudio/pkg/persistence"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <agent-file>",
	Short: "Render an agent as a Mermaid flowchart",
	Long:  `Prints Mermaid flowchart syntax for the agent graph, suitable for docs and markdown viewers.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		agent, err := persistence.LoadAgent(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(graph.GenerateMermaid(agent))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
