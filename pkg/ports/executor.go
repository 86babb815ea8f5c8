package ports

import "context"

// Executor performs the computation for one node type.
//
// config is the node's raw configuration record and inputs maps input port
// names to the values pulled through the graph. Implementations return the
// node's result value, or an error for any transport, auth or
// configuration failure. The engine converts errors into node-local error
// records at the node boundary; an Executor error never aborts the run.
type Executor interface {
	Execute(ctx context.Context, config map[string]any, inputs map[string]any) (any, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, config map[string]any, inputs map[string]any) (any, error)

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, config map[string]any, inputs map[string]any) (any, error) {
	return f(ctx, config, inputs)
}
