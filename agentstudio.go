// Package agentstudio is the high-level entry point for the AI Agent
// Studio execution core. It wraps the internal runtime engine and provides
// a simplified API for consumers: hand it an agent graph and a map of
// input values, get back a map of output values.
package agentstudio

import (
	"context"
	"log/slog"

	"github.com/angjelo/AIAgentStudio/internal/logging"
	"github.com/angjelo/AIAgentStudio/internal/runtime"
	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"github.com/angjelo/AIAgentStudio/pkg/ports"
	"github.com/angjelo/AIAgentStudio/pkg/registry"
)

// Version is the library version, overridable at build time via ldflags.
var Version = "dev"

// Engine executes agent graphs.
type Engine struct {
	runtime  *runtime.Engine
	registry *registry.Registry
	logger   *slog.Logger
	hooks    domain.ExecutionHooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the default executor registry entirely.
func WithRegistry(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithExecutor registers (or overrides) the executor for a node type.
func WithExecutor(t domain.NodeType, ex ports.Executor) Option {
	return func(e *Engine) {
		e.registry.Register(t, ex)
	}
}

// WithProvider registers (or overrides) an LLM provider executor.
func WithProvider(name string, ex ports.Executor) Option {
	return func(e *Engine) {
		e.registry.RegisterProvider(name, ex)
	}
}

// WithHooks registers observability hooks invoked around node and run
// boundaries.
func WithHooks(hooks domain.ExecutionHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New initializes an Engine with the built-in executors (HTTP caller,
// transform engine, OpenAI and Anthropic providers reading their keys
// from the environment), then applies the options.
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: registry.Default(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.runtime = runtime.NewEngine(e.registry,
		runtime.WithLogger(e.logger),
		runtime.WithHooks(e.hooks),
	)
	return e
}

// Execute runs the agent against the supplied input bindings and returns
// one entry per Output node. Node failures surface as {"error": message}
// values inside the result map; Execute itself returns an error only for
// a structurally invalid agent (unknown node reference or a cycle).
func (e *Engine) Execute(ctx context.Context, agent *domain.Agent, inputData map[string]any) (map[string]any, error) {
	return e.runtime.ExecuteAgent(ctx, agent, inputData)
}

// Validate checks the agent for structural problems (dangling edge
// endpoints, foreign ports, cycles) without executing it.
func (e *Engine) Validate(agent *domain.Agent) error {
	return runtime.Validate(agent)
}

// Registry exposes the engine's executor registry so hosts can add node
// types or providers after construction.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}
