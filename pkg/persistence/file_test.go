package persistence_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"github.com/angjelo/AIAgentStudio/pkg/persistence"
)

func sampleAgent() *domain.Agent {
	return &domain.Agent{
		ID:   "a1",
		Name: "sample",
		Nodes: []domain.Node{
			{
				ID: "in", Type: domain.NodeTypeInput, Name: "in",
				Outputs: []domain.NodeIO{{ID: "in:output", Name: "output", DataType: domain.DataTypeAny}},
				Config:  map[string]any{"input_name": "x"},
			},
			{
				ID: "out", Type: domain.NodeTypeOutput, Name: "out",
				Inputs: []domain.NodeIO{{ID: "out:input", Name: "input", DataType: domain.DataTypeAny}},
				Config: map[string]any{"output_name": "result"},
			},
		},
		Edges: []domain.Edge{
			{ID: "e1", SourceNodeID: "in", SourceOutputID: "in:output",
				TargetNodeID: "out", TargetInputID: "out:input"},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "agent"+ext)
			require.NoError(t, persistence.SaveAgent(path, sampleAgent()))

			loaded, err := persistence.LoadAgent(path)
			require.NoError(t, err)

			assert.Equal(t, "a1", loaded.ID)
			assert.Equal(t, "sample", loaded.Name)
			require.Len(t, loaded.Nodes, 2)
			assert.Equal(t, domain.NodeTypeInput, loaded.Nodes[0].Type)
			assert.Equal(t, "x", loaded.Nodes[0].Config["input_name"])
			require.Len(t, loaded.Edges, 1)
			assert.Equal(t, "in:output", loaded.Edges[0].SourceOutputID)
		})
	}
}

func TestLoadAgent_NameDefaultsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather-bot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"nodes": [], "edges": []}`), 0o644))

	agent, err := persistence.LoadAgent(path)
	require.NoError(t, err)
	assert.Equal(t, "weather-bot", agent.Name)
}

func TestLoadAgent_MissingFile(t *testing.T) {
	_, err := persistence.LoadAgent(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadAgent_BadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := persistence.LoadAgent(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse agent json")
}
