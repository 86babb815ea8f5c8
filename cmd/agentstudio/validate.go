package main

import (
	"fmt"
	"os"

	"github.com/angjelo/AIAgentStudio"
	"github.com/angjelo/AIAgentStudio/pkg/persistence"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <agent-file>",
	Short: "Check an agent graph for consistency",
	Long:  `Checks the agent for dangling edge endpoints, foreign ports and cycles without executing it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Agent is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	agent, err := persistence.LoadAgent(path)
	if err != nil {
		return err
	}
	return agentstudio.New().Validate(agent)
}
