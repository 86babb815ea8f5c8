// Package domain defines the agent graph data model: agents, nodes, ports,
// edges and the node type templates used to create them.
//
// The model is a plain data description of a workflow. It carries no
// behavior beyond lookups; execution semantics live in the runtime engine,
// and editing/persistence surfaces only produce and consume these types.
package domain
