package registry

import (
	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"github.com/angjelo/AIAgentStudio/pkg/executors/anthropic"
	"github.com/angjelo/AIAgentStudio/pkg/executors/api"
	"github.com/angjelo/AIAgentStudio/pkg/executors/openai"
	"github.com/angjelo/AIAgentStudio/pkg/executors/transform"
)

// Default builds a registry with the built-in executors: the HTTP caller,
// the transform engine, and the OpenAI/Anthropic model providers (which
// read their API keys from the environment).
func Default() *Registry {
	r := New()
	r.Register(domain.NodeTypeAPI, api.New())
	r.Register(domain.NodeTypeTransform, transform.New())
	r.RegisterProvider("openai", openai.New())
	r.RegisterProvider("anthropic", anthropic.New())
	return r
}
