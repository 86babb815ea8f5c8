// Package persistence loads and saves agent snapshot files.
//
// Agents are single documents in JSON or YAML, the formats the studio's
// editing surface exports. The engine never touches storage itself; this
// codec exists for the CLI and serving layers that feed it.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"gopkg.in/yaml.v3"
)

// LoadAgent reads an agent snapshot from a .json, .yaml or .yml file.
func LoadAgent(path string) (*domain.Agent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read agent file: %w", err)
	}

	var agent domain.Agent
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &agent); err != nil {
			return nil, fmt.Errorf("parse agent yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &agent); err != nil {
			return nil, fmt.Errorf("parse agent json: %w", err)
		}
	}

	if agent.Name == "" {
		agent.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &agent, nil
}

// SaveAgent writes an agent snapshot next to the format implied by the
// file extension (YAML for .yaml/.yml, JSON otherwise).
func SaveAgent(path string, agent *domain.Agent) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(agent)
	default:
		data, err = json.MarshalIndent(agent, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode agent: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
