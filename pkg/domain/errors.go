package domain

import "errors"

// ErrNodeNotFound is returned when an edge or evaluation references a node
// id that does not exist in the agent. This is a structural error: the
// whole execution fails rather than producing a partial result.
var ErrNodeNotFound = errors.New("node not found")

// ErrCycleDetected is returned when the evaluator re-enters a node that is
// already being computed. A cyclic edge set cannot be pulled to a value.
var ErrCycleDetected = errors.New("cycle detected in agent graph")

// ErrAgentNotFound is returned by AgentStore implementations when the
// requested agent id is unknown.
var ErrAgentNotFound = errors.New("agent not found")

// ErrUnknownProvider is returned when an LLM node names a provider that is
// not registered. It surfaces as a node-local error record, not as a
// failure of the run.
var ErrUnknownProvider = errors.New("unknown LLM provider")

// ErrorRecord wraps a node-local failure as an ordinary data value.
// Failed nodes resolve to {"error": message} and that record flows to
// downstream consumers like any other value.
func ErrorRecord(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}

// IsErrorRecord reports whether a value is a node failure record, and if
// so returns its message.
func IsErrorRecord(v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	msg, ok := m["error"].(string)
	return msg, ok
}
