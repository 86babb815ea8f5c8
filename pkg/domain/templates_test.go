package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
)

func TestNewNode(t *testing.T) {
	t.Run("instantiates from template", func(t *testing.T) {
		n := domain.NewNode(domain.NodeTypeLLM, "summarizer", domain.Position{X: 10, Y: 20})
		require.NotNil(t, n)

		assert.NotEmpty(t, n.ID)
		assert.Equal(t, domain.NodeTypeLLM, n.Type)
		assert.Equal(t, "summarizer", n.Name)
		assert.Equal(t, "openai", n.Config["provider"])

		require.Len(t, n.Inputs, 2)
		assert.Equal(t, "prompt", n.Inputs[0].Name)
		assert.Equal(t, "system", n.Inputs[1].Name)
		require.Len(t, n.Outputs, 1)
		assert.Equal(t, "response", n.Outputs[0].Name)
		assert.NotEmpty(t, n.Outputs[0].ID)
	})

	t.Run("defaults name from template", func(t *testing.T) {
		n := domain.NewNode(domain.NodeTypeInput, "", domain.Position{})
		require.NotNil(t, n)
		assert.Equal(t, "Input", n.Name)
	})

	t.Run("config is a copy", func(t *testing.T) {
		a := domain.NewNode(domain.NodeTypeTransform, "", domain.Position{})
		b := domain.NewNode(domain.NodeTypeTransform, "", domain.Position{})
		a.Config["expression"] = ".changed"
		assert.Equal(t, ".", b.Config["expression"])
	})

	t.Run("unknown type returns nil", func(t *testing.T) {
		assert.Nil(t, domain.NewNode(domain.NodeType("teleport"), "", domain.Position{}))
	})
}

func TestNewEdge(t *testing.T) {
	e := domain.NewEdge("a", "a:output", "b", "b:input")
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "a", e.SourceNodeID)
	assert.Equal(t, "a:output", e.SourceOutputID)
	assert.Equal(t, "b", e.TargetNodeID)
	assert.Equal(t, "b:input", e.TargetInputID)
}

func TestErrorRecord(t *testing.T) {
	record := domain.ErrorRecord(assert.AnError)
	msg, ok := domain.IsErrorRecord(record)
	assert.True(t, ok)
	assert.Equal(t, assert.AnError.Error(), msg)

	_, ok = domain.IsErrorRecord(map[string]any{"output": 1})
	assert.False(t, ok)
	_, ok = domain.IsErrorRecord("plain value")
	assert.False(t, ok)
}
