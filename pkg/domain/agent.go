package domain

// Edge is a directed binding from one node's output port to another
// node's input port. Edges carry no data of their own; their existence is
// the sole mechanism by which values flow between nodes.
//
// Invariant: SourceOutputID must belong to the node SourceNodeID and
// TargetInputID to TargetNodeID. The engine trusts the graph as given and
// does not re-validate this at run time (Validate checks it up front).
type Edge struct {
	ID             string `json:"id" yaml:"id"`
	SourceNodeID   string `json:"source_node_id" yaml:"source_node_id"`
	SourceOutputID string `json:"source_output_id" yaml:"source_output_id"`
	TargetNodeID   string `json:"target_node_id" yaml:"target_node_id"`
	TargetInputID  string `json:"target_input_id" yaml:"target_input_id"`
}

// Agent is a complete node/edge graph representing one workflow.
// It is the unit of execution: the engine receives it as an immutable
// snapshot for the duration of one run.
type Agent struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Nodes       []Node `json:"nodes" yaml:"nodes"`
	Edges       []Edge `json:"edges" yaml:"edges"`
	CreatedAt   string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// FindNode returns the node with the given id, or nil.
func (a *Agent) FindNode(id string) *Node {
	for i := range a.Nodes {
		if a.Nodes[i].ID == id {
			return &a.Nodes[i]
		}
	}
	return nil
}

// NodesOfType returns all nodes with the given type tag, in declaration
// order.
func (a *Agent) NodesOfType(t NodeType) []*Node {
	var nodes []*Node
	for i := range a.Nodes {
		if a.Nodes[i].Type == t {
			nodes = append(nodes, &a.Nodes[i])
		}
	}
	return nodes
}

// InEdges returns the edges targeting the given node, in declaration
// order. When several edges feed the same input the first one wins
// downstream, so order matters here.
func (a *Agent) InEdges(nodeID string) []Edge {
	var edges []Edge
	for _, e := range a.Edges {
		if e.TargetNodeID == nodeID {
			edges = append(edges, e)
		}
	}
	return edges
}

// FirstEdgeTo returns the first edge (in declaration order) that targets
// the given input port of the given node, or nil if the port is unwired.
func (a *Agent) FirstEdgeTo(nodeID, inputID string) *Edge {
	for i := range a.Edges {
		e := &a.Edges[i]
		if e.TargetNodeID == nodeID && e.TargetInputID == inputID {
			return e
		}
	}
	return nil
}
