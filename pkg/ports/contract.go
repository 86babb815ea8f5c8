package ports

import (
	"context"
	"testing"
	"time"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunAgentStoreContract runs a suite of tests verifying that an AgentStore
// implementation adheres to the interface contract. Adapter test files
// call this against their concrete store.
func RunAgentStoreContract(t *testing.T, store AgentStore) {
	ctx := context.Background()
	agentID := "contract-agent-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		agent := &domain.Agent{
			ID:   agentID,
			Name: "contract test",
			Nodes: []domain.Node{
				{ID: "in", Type: domain.NodeTypeInput, Name: "Input",
					Config: map[string]any{"input_name": "x"}},
			},
		}

		err := store.Save(ctx, agent)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, agentID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, agent.Name, loaded.Name)
		require.Len(t, loaded.Nodes, 1)
		assert.Equal(t, domain.NodeTypeInput, loaded.Nodes[0].Type)
		assert.Equal(t, "x", loaded.Nodes[0].Config["input_name"])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+agentID)
		assert.ErrorIs(t, err, domain.ErrAgentNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, &domain.Agent{ID: agentID, Name: "to delete"})
		require.NoError(t, err)

		err = store.Delete(ctx, agentID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, agentID)
		assert.ErrorIs(t, err, domain.ErrAgentNotFound, "Load after Delete should return ErrAgentNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := agentID + "-1"
		id2 := agentID + "-2"
		_ = store.Save(ctx, &domain.Agent{ID: id1, Name: "one"})
		_ = store.Save(ctx, &domain.Agent{ID: id2, Name: "two"})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
