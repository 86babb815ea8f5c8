package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angjelo/AIAgentStudio/internal/runtime"
	"github.com/angjelo/AIAgentStudio/pkg/domain"
)

func TestValidate(t *testing.T) {
	valid := &domain.Agent{
		Name: "valid",
		Nodes: []domain.Node{
			inputNode("in", "x"),
			node("tf", domain.NodeTypeTransform, map[string]any{}, []string{"input"}, []string{"output"}),
			outputNode("out", "result"),
		},
		Edges: []domain.Edge{
			edge("in", "output", "tf", "input"),
			edge("tf", "output", "out", "input"),
		},
	}

	t.Run("accepts a well-formed graph", func(t *testing.T) {
		assert.NoError(t, runtime.Validate(valid))
	})

	t.Run("rejects unknown source node", func(t *testing.T) {
		agent := &domain.Agent{
			Nodes: []domain.Node{outputNode("out", "result")},
			Edges: []domain.Edge{edge("ghost", "output", "out", "input")},
		}
		assert.ErrorIs(t, runtime.Validate(agent), domain.ErrNodeNotFound)
	})

	t.Run("rejects unknown target node", func(t *testing.T) {
		agent := &domain.Agent{
			Nodes: []domain.Node{inputNode("in", "x")},
			Edges: []domain.Edge{edge("in", "output", "ghost", "input")},
		}
		assert.ErrorIs(t, runtime.Validate(agent), domain.ErrNodeNotFound)
	})

	t.Run("rejects foreign output port", func(t *testing.T) {
		agent := &domain.Agent{
			Nodes: []domain.Node{inputNode("in", "x"), outputNode("out", "result")},
			Edges: []domain.Edge{
				{ID: "e1", SourceNodeID: "in", SourceOutputID: "other:output",
					TargetNodeID: "out", TargetInputID: "out:input"},
			},
		}
		err := runtime.Validate(agent)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not belong")
	})

	t.Run("rejects foreign input port", func(t *testing.T) {
		agent := &domain.Agent{
			Nodes: []domain.Node{inputNode("in", "x"), outputNode("out", "result")},
			Edges: []domain.Edge{
				{ID: "e1", SourceNodeID: "in", SourceOutputID: "in:output",
					TargetNodeID: "out", TargetInputID: "other:input"},
			},
		}
		err := runtime.Validate(agent)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not belong")
	})

	t.Run("rejects cycles", func(t *testing.T) {
		agent := &domain.Agent{
			Nodes: []domain.Node{
				node("a", domain.NodeTypeTransform, map[string]any{}, []string{"input"}, []string{"output"}),
				node("b", domain.NodeTypeTransform, map[string]any{}, []string{"input"}, []string{"output"}),
			},
			Edges: []domain.Edge{
				edge("a", "output", "b", "input"),
				edge("b", "output", "a", "input"),
			},
		}
		assert.ErrorIs(t, runtime.Validate(agent), domain.ErrCycleDetected)
	})
}
