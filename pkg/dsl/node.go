package dsl

import "github.com/angjelo/AIAgentStudio/pkg/domain"

// NodeBuilder configures a single node beyond its template defaults.
type NodeBuilder struct {
	node domain.Node
}

// Config sets one configuration key on the node.
func (n *NodeBuilder) Config(key string, value any) *NodeBuilder {
	n.node.Config[key] = value
	return n
}

// Default sets the fallback value used when the named input port has no
// inbound edge.
func (n *NodeBuilder) Default(port string, value any) *NodeBuilder {
	return n.Config("default_"+port, value)
}

// Describe attaches a human-readable description to the node.
func (n *NodeBuilder) Describe(text string) *NodeBuilder {
	n.node.Description = text
	return n
}

// Build returns the underlying node. Exposed for callers that assemble
// agents by hand.
func (n *NodeBuilder) Build() domain.Node {
	return n.node
}
