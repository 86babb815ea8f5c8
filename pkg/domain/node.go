package domain

// NodeIO is a named input or output slot (port) on a node.
// A port belongs to exactly one node and lives as long as the node does.
type NodeIO struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	DataType    DataType `json:"data_type" yaml:"data_type"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`

	// ConnectedTo lists the ids of output ports currently feeding this
	// input port. Maintained by the editing surface; the engine resolves
	// data flow from the edge list, not from this field.
	ConnectedTo []string `json:"connected_to,omitempty" yaml:"connected_to,omitempty"`
}

// Position is the node's location on the editing canvas.
// Irrelevant to execution.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Node is a typed unit of computation in the graph.
type Node struct {
	ID       string   `json:"id" yaml:"id"`
	Type     NodeType `json:"type" yaml:"type"`
	Name     string   `json:"name" yaml:"name"`
	Position Position `json:"position" yaml:"position"`

	// Inputs and Outputs are ordered; edge resolution and tie-breaking
	// follow declaration order.
	Inputs  []NodeIO `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs []NodeIO `json:"outputs,omitempty" yaml:"outputs,omitempty"`

	// Config is the open key→value configuration record. The recognized
	// keys depend on Type; the runtime decodes it into a typed config
	// before dispatch.
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Input returns the input port with the given name, or nil.
func (n *Node) Input(name string) *NodeIO {
	for i := range n.Inputs {
		if n.Inputs[i].Name == name {
			return &n.Inputs[i]
		}
	}
	return nil
}

// Output returns the output port with the given name, or nil.
func (n *Node) Output(name string) *NodeIO {
	for i := range n.Outputs {
		if n.Outputs[i].Name == name {
			return &n.Outputs[i]
		}
	}
	return nil
}

// ConfigString reads a string config key, falling back to def when the key
// is absent or not a string.
func (n *Node) ConfigString(key, def string) string {
	if v, ok := n.Config[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}
