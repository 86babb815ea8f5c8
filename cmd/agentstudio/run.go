package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/angjelo/AIAgentStudio"
	"github.com/angjelo/AIAgentStudio/pkg/persistence"
	"github.com/spf13/cobra"
)

// runCmd executes an agent file against input bindings.
var runCmd = &cobra.Command{
	Use:   "run <agent-file>",
	Short: "Execute an agent workflow",
	Long: `Loads an agent snapshot (JSON or YAML), executes it with the supplied
input bindings and prints the output map as JSON on stdout.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAgent(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayP("input", "i", nil, "Input binding as name=value (repeatable; value parsed as JSON when possible)")
	runCmd.Flags().String("input-json", "", "All input bindings as one JSON object")
}

func runAgent(cmd *cobra.Command, path string) error {
	agent, err := persistence.LoadAgent(path)
	if err != nil {
		return err
	}

	inputData, err := parseInputs(cmd)
	if err != nil {
		return err
	}

	engine := agentstudio.New(agentstudio.WithLogger(newLogger(cmd)))
	if err := engine.Validate(agent); err != nil {
		return fmt.Errorf("invalid agent: %w", err)
	}

	results, err := engine.Execute(cmd.Context(), agent, inputData)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// parseInputs merges --input-json with --input pairs; pairs win on
// conflicting names. Values that parse as JSON are bound structured,
// anything else binds as a plain string.
func parseInputs(cmd *cobra.Command) (map[string]any, error) {
	inputData := make(map[string]any)

	if raw, _ := cmd.Flags().GetString("input-json"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &inputData); err != nil {
			return nil, fmt.Errorf("--input-json is not a JSON object: %w", err)
		}
	}

	pairs, _ := cmd.Flags().GetStringArray("input")
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --input %q (want name=value)", pair)
		}
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			inputData[name] = parsed
		} else {
			inputData[name] = value
		}
	}
	return inputData, nil
}
