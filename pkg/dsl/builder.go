package dsl

import (
	"fmt"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
)

// Builder accumulates nodes and connections for one agent graph.
type Builder struct {
	name  string
	nodes []*NodeBuilder
	byID  map[string]*NodeBuilder
	wires []wire
}

type wire struct {
	srcNode, srcPort string
	dstNode, dstPort string
}

// New creates a builder for an agent with the given name.
func New(name string) *Builder {
	return &Builder{
		name: name,
		byID: make(map[string]*NodeBuilder),
	}
}

// Input adds an Input node bound to the named run input.
func (b *Builder) Input(id, inputName string) *Builder {
	b.add(domain.NodeTypeInput, id).Config("input_name", inputName)
	return b
}

// Output adds an Output node publishing under the given result name.
func (b *Builder) Output(id, outputName string) *Builder {
	b.add(domain.NodeTypeOutput, id).Config("output_name", outputName)
	return b
}

// LLM adds an LLM node for the given provider.
func (b *Builder) LLM(id, provider string) *Builder {
	b.add(domain.NodeTypeLLM, id).Config("provider", provider)
	return b
}

// API adds an API node calling the given URL.
func (b *Builder) API(id, url string) *Builder {
	b.add(domain.NodeTypeAPI, id).Config("url", url)
	return b
}

// Transform adds a Transform node of the given type and expression.
func (b *Builder) Transform(id, transformType, expression string) *Builder {
	b.add(domain.NodeTypeTransform, id).
		Config("transform_type", transformType).
		Config("expression", expression)
	return b
}

// Condition adds a Condition node evaluating the given expression.
func (b *Builder) Condition(id, expression string) *Builder {
	b.add(domain.NodeTypeCondition, id).Config("expression", expression)
	return b
}

// Loop adds a Loop node enumerating its items input.
func (b *Builder) Loop(id string) *Builder {
	b.add(domain.NodeTypeLoop, id)
	return b
}

// Node returns the builder for an existing node so extra configuration can
// be applied, or nil if the id is unknown.
func (b *Builder) Node(id string) *NodeBuilder {
	return b.byID[id]
}

// Connect wires a source output port to a target input port, both
// addressed by node id and port name. Unknown endpoints surface at Build.
func (b *Builder) Connect(srcNode, srcPort, dstNode, dstPort string) *Builder {
	b.wires = append(b.wires, wire{srcNode, srcPort, dstNode, dstPort})
	return b
}

// Build assembles and returns the agent. It fails on duplicate node ids
// and on connections referencing nodes or ports that were never added.
func (b *Builder) Build() (*domain.Agent, error) {
	agent := &domain.Agent{Name: b.name}
	for _, nb := range b.nodes {
		agent.Nodes = append(agent.Nodes, nb.node)
	}

	for i, w := range b.wires {
		src, ok := b.byID[w.srcNode]
		if !ok {
			return nil, fmt.Errorf("connect %d: unknown source node %q", i, w.srcNode)
		}
		dst, ok := b.byID[w.dstNode]
		if !ok {
			return nil, fmt.Errorf("connect %d: unknown target node %q", i, w.dstNode)
		}
		out := src.node.Output(w.srcPort)
		if out == nil {
			return nil, fmt.Errorf("connect %d: node %q has no output port %q", i, w.srcNode, w.srcPort)
		}
		in := dst.node.Input(w.dstPort)
		if in == nil {
			return nil, fmt.Errorf("connect %d: node %q has no input port %q", i, w.dstNode, w.dstPort)
		}
		agent.Edges = append(agent.Edges, domain.Edge{
			ID:             fmt.Sprintf("%s:%s->%s:%s", w.srcNode, w.srcPort, w.dstNode, w.dstPort),
			SourceNodeID:   w.srcNode,
			SourceOutputID: out.ID,
			TargetNodeID:   w.dstNode,
			TargetInputID:  in.ID,
		})
	}

	return agent, nil
}

// add instantiates a node from its type template with deterministic ids.
// Re-adding an existing id returns the node already there.
func (b *Builder) add(t domain.NodeType, id string) *NodeBuilder {
	if existing, ok := b.byID[id]; ok {
		return existing
	}

	def := domain.Definitions[t]
	node := domain.Node{
		ID:     id,
		Type:   t,
		Name:   id,
		Config: make(map[string]any, len(def.DefaultConfig)),
	}
	for k, v := range def.DefaultConfig {
		node.Config[k] = v
	}
	for _, p := range def.DefaultInputs {
		node.Inputs = append(node.Inputs, domain.NodeIO{
			ID: id + ":" + p.Name, Name: p.Name, DataType: p.DataType, Description: p.Description,
		})
	}
	for _, p := range def.DefaultOutput {
		node.Outputs = append(node.Outputs, domain.NodeIO{
			ID: id + ":" + p.Name, Name: p.Name, DataType: p.DataType, Description: p.Description,
		})
	}

	nb := &NodeBuilder{node: node}
	b.nodes = append(b.nodes, nb)
	b.byID[id] = nb
	return nb
}
