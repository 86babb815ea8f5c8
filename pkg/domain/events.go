package domain

import (
	"context"
	"time"
)

// NodeEvent describes one node evaluation for observability consumers.
type NodeEvent struct {
	Timestamp time.Time `json:"timestamp"`
	AgentName string    `json:"agent_name"`
	NodeID    string    `json:"node_id"`
	NodeType  NodeType  `json:"node_type"`
	NodeName  string    `json:"node_name"`

	// Duration and IsError are only set on completion events.
	Duration time.Duration `json:"duration,omitempty"`
	IsError  bool          `json:"is_error,omitempty"`
}

// RunEvent describes a whole ExecuteAgent call.
type RunEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	AgentName string        `json:"agent_name"`
	Duration  time.Duration `json:"duration,omitempty"`
	Err       error         `json:"-"`
}

// ExecutionHooks defines optional callbacks for engine observability.
// Nil members are skipped. Hooks run synchronously on the evaluation path
// and must be cheap.
type ExecutionHooks struct {
	OnNodeStart  func(context.Context, *NodeEvent)
	OnNodeFinish func(context.Context, *NodeEvent)
	OnRunFinish  func(context.Context, *RunEvent)
}
