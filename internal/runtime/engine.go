// Package runtime contains the evaluation engine: a pull-based, memoized,
// depth-first evaluator over the agent graph. Each ExecuteAgent call gets
// its own execution cache, so concurrent runs never share mutable state.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/angjelo/AIAgentStudio/internal/logging"
	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"github.com/angjelo/AIAgentStudio/pkg/registry"
)

// Engine resolves agent graphs to output values.
// It is stateless between calls and safe for concurrent use.
type Engine struct {
	registry *registry.Registry
	logger   *slog.Logger
	hooks    domain.ExecutionHooks
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.ExecutionHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine dispatching node computations through the
// given executor registry.
func NewEngine(reg *registry.Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: reg,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecuteAgent runs the agent against the supplied input bindings and
// returns one entry per Output node, keyed by the node's configured
// output name.
//
// Node-local failures (executor errors, bad configs, unknown providers)
// become {"error": message} records that flow downstream as ordinary
// values. ExecuteAgent itself fails only for structural problems: an edge
// or output referencing a node id absent from the agent, or a cycle in
// the edge set.
func (e *Engine) ExecuteAgent(ctx context.Context, agent *domain.Agent, inputData map[string]any) (map[string]any, error) {
	start := time.Now()
	e.logger.Info("executing agent", "agent", agent.Name, "nodes", len(agent.Nodes))

	ev := &evaluation{
		engine:   e,
		agent:    agent,
		cache:    make(map[string]any),
		inFlight: make(map[string]bool),
	}

	// Pre-seed the cache for every Input node whose configured name is
	// bound in inputData. The seed lives under the (node id, port name)
	// compound key so it is distinguishable from a computed value.
	for _, node := range agent.NodesOfType(domain.NodeTypeInput) {
		cfg := decodeInputConfig(node.Config)
		if val, ok := inputData[cfg.InputName]; ok {
			ev.cache[seedKey(node)] = val
		}
	}

	results := make(map[string]any)
	for _, node := range agent.NodesOfType(domain.NodeTypeOutput) {
		val, err := ev.evaluate(ctx, node.ID)
		if err != nil {
			e.finishRun(ctx, agent, start, err)
			return nil, err
		}
		cfg := decodeOutputConfig(node.Config)
		results[cfg.OutputName] = val
	}

	e.finishRun(ctx, agent, start, nil)
	return results, nil
}

func (e *Engine) finishRun(ctx context.Context, agent *domain.Agent, start time.Time, err error) {
	dur := time.Since(start)
	if err != nil {
		e.logger.Error("agent execution failed", "agent", agent.Name, "err", err, "duration", dur)
	} else {
		e.logger.Info("agent execution finished", "agent", agent.Name, "duration", dur)
	}
	if e.hooks.OnRunFinish != nil {
		e.hooks.OnRunFinish(ctx, &domain.RunEvent{
			Timestamp: time.Now(),
			AgentName: agent.Name,
			Duration:  dur,
			Err:       err,
		})
	}
}

// seedKey is the compound cache key holding an Input node's pre-seeded
// value: "<node id>:<output port name>".
func seedKey(node *domain.Node) string {
	portName := "output"
	if len(node.Outputs) > 0 {
		portName = node.Outputs[0].Name
	}
	return fmt.Sprintf("%s:%s", node.ID, portName)
}
