package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"github.com/angjelo/AIAgentStudio/pkg/ports"
	"github.com/angjelo/AIAgentStudio/pkg/registry"
)

func noop(_ context.Context, _ map[string]any, _ map[string]any) (any, error) {
	return "noop", nil
}

func TestRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		reg := registry.New()
		reg.Register(domain.NodeTypeTransform, ports.ExecutorFunc(noop))

		ex, err := reg.Get(domain.NodeTypeTransform)
		require.NoError(t, err)
		result, err := ex.Execute(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "noop", result)
	})

	t.Run("missing node type", func(t *testing.T) {
		_, err := registry.New().Get(domain.NodeTypeAPI)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no executor registered")
	})

	t.Run("providers", func(t *testing.T) {
		reg := registry.New()
		reg.RegisterProvider("openai", ports.ExecutorFunc(noop))

		_, err := reg.Provider("openai")
		assert.NoError(t, err)

		_, err = reg.Provider("mistral")
		assert.ErrorIs(t, err, domain.ErrUnknownProvider)

		assert.ElementsMatch(t, []string{"openai"}, reg.Providers())
	})

	t.Run("re-register overwrites", func(t *testing.T) {
		reg := registry.New()
		reg.Register(domain.NodeTypeTransform, ports.ExecutorFunc(noop))
		reg.Register(domain.NodeTypeTransform, ports.ExecutorFunc(
			func(_ context.Context, _ map[string]any, _ map[string]any) (any, error) {
				return "replaced", nil
			}))

		ex, err := reg.Get(domain.NodeTypeTransform)
		require.NoError(t, err)
		result, _ := ex.Execute(context.Background(), nil, nil)
		assert.Equal(t, "replaced", result)
	})
}

func TestDefault(t *testing.T) {
	reg := registry.Default()

	for _, nt := range []domain.NodeType{domain.NodeTypeAPI, domain.NodeTypeTransform} {
		_, err := reg.Get(nt)
		assert.NoError(t, err, "default registry covers %s", nt)
	}
	assert.ElementsMatch(t, []string{"openai", "anthropic"}, reg.Providers())
}
