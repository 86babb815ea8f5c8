package main

import (
	"fmt"
	"os"

	"github.com/angjelo/AIAgentStudio"
	"github.com/angjelo/AIAgentStudio/pkg/adapters/mcp"
	"github.com/angjelo/AIAgentStudio/pkg/adapters/memory"
	redisstore "github.com/angjelo/AIAgentStudio/pkg/adapters/redis"
	"github.com/angjelo/AIAgentStudio/pkg/ports"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the execution engine as an MCP server so LLM hosts can run stored agents as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		redisAddr, _ := cmd.Flags().GetString("redis")

		var store ports.AgentStore
		if redisAddr != "" {
			store = redisstore.New(redisAddr)
		} else {
			store = memory.NewStore()
		}

		engine := agentstudio.New(agentstudio.WithLogger(newLogger(cmd)))
		srv := mcp.NewServer(engine, store)
		if err := srv.ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("redis", "", "Redis address for agent storage (in-memory when empty)")
}
