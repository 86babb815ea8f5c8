package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
)

// evaluation holds the mutable state of one ExecuteAgent call: the memo
// cache and the in-flight marker set used for cycle detection. It is
// discarded when the call returns and never shared.
type evaluation struct {
	engine   *Engine
	agent    *domain.Agent
	cache    map[string]any
	inFlight map[string]bool
}

// evaluate resolves a node's value, pulling dependencies recursively.
// The cache guarantees each node is computed at most once per run
// regardless of fan-out. Returned errors are structural (unknown node,
// cycle) and abort the whole run; computation failures are converted to
// error records before this returns.
func (ev *evaluation) evaluate(ctx context.Context, nodeID string) (any, error) {
	if val, ok := ev.cache[nodeID]; ok {
		return val, nil
	}

	node := ev.agent.FindNode(nodeID)
	if node == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, nodeID)
	}

	if ev.inFlight[nodeID] {
		return nil, fmt.Errorf("%w: at node %s", domain.ErrCycleDetected, nodeID)
	}
	ev.inFlight[nodeID] = true
	defer delete(ev.inFlight, nodeID)

	ev.engine.logger.Debug("evaluating node", "node", node.Name, "type", node.Type)

	switch node.Type {
	case domain.NodeTypeInput:
		return ev.evaluateInput(node), nil
	case domain.NodeTypeOutput:
		return ev.evaluateOutput(ctx, node)
	}

	inputs, err := ev.gatherInputs(ctx, node)
	if err != nil {
		return nil, err
	}

	startEvent := &domain.NodeEvent{
		Timestamp: time.Now(),
		AgentName: ev.agent.Name,
		NodeID:    node.ID,
		NodeType:  node.Type,
		NodeName:  node.Name,
	}
	if ev.engine.hooks.OnNodeStart != nil {
		ev.engine.hooks.OnNodeStart(ctx, startEvent)
	}
	start := time.Now()

	result, err := ev.dispatch(ctx, node, inputs)
	if err != nil {
		// The node boundary: any computation failure becomes an error
		// record that caches and propagates downstream as ordinary data.
		ev.engine.logger.Error("node execution failed", "node", node.Name, "type", node.Type, "err", err)
		result = domain.ErrorRecord(err)
	}

	if ev.engine.hooks.OnNodeFinish != nil {
		ev.engine.hooks.OnNodeFinish(ctx, &domain.NodeEvent{
			Timestamp: time.Now(),
			AgentName: ev.agent.Name,
			NodeID:    node.ID,
			NodeType:  node.Type,
			NodeName:  node.Name,
			Duration:  time.Since(start),
			IsError:   err != nil,
		})
	}

	ev.cache[node.ID] = result
	return result, nil
}

// evaluateInput returns the pre-seeded value for an Input node, or its
// configured default. Input values are read through the seed key, not
// memoized under the bare node id.
func (ev *evaluation) evaluateInput(node *domain.Node) any {
	if val, ok := ev.cache[seedKey(node)]; ok && val != nil {
		return val
	}
	return decodeInputConfig(node.Config).DefaultValue
}

// evaluateOutput resolves an Output node from the first edge feeding it.
// With no inbound edge the output is nil: no data flowed in.
func (ev *evaluation) evaluateOutput(ctx context.Context, node *domain.Node) (any, error) {
	edges := ev.agent.InEdges(node.ID)
	if len(edges) == 0 {
		return nil, nil
	}

	val, err := ev.evaluate(ctx, edges[0].SourceNodeID)
	if err != nil {
		return nil, err
	}
	ev.cache[node.ID] = val
	return val, nil
}

// gatherInputs binds each declared input port of a node: the first edge
// (in declaration order) targeting the port wins; an unwired port falls
// back to a default_<port name> config key, or is omitted entirely.
func (ev *evaluation) gatherInputs(ctx context.Context, node *domain.Node) (map[string]any, error) {
	inputs := make(map[string]any, len(node.Inputs))
	for _, port := range node.Inputs {
		if edge := ev.agent.FirstEdgeTo(node.ID, port.ID); edge != nil {
			val, err := ev.evaluate(ctx, edge.SourceNodeID)
			if err != nil {
				return nil, err
			}
			inputs[port.Name] = val
			continue
		}
		if def, ok := node.Config["default_"+port.Name]; ok {
			inputs[port.Name] = def
		}
	}
	return inputs, nil
}

// dispatch invokes the per-type computation with the gathered inputs.
// Condition and Loop are evaluated inline; LLM, API and Transform go
// through the executor registry.
func (ev *evaluation) dispatch(ctx context.Context, node *domain.Node, inputs map[string]any) (any, error) {
	switch node.Type {
	case domain.NodeTypeLLM:
		cfg := decodeLLMConfig(node.Config)
		provider, err := ev.engine.registry.Provider(cfg.Provider)
		if err != nil {
			return nil, err
		}
		return provider.Execute(ctx, node.Config, inputs)

	case domain.NodeTypeAPI, domain.NodeTypeTransform:
		ex, err := ev.engine.registry.Get(node.Type)
		if err != nil {
			return nil, err
		}
		return ex.Execute(ctx, node.Config, inputs)

	case domain.NodeTypeCondition:
		if evaluateCondition(decodeConditionConfig(node.Config), inputs) {
			return inputs["data"], nil
		}
		return nil, nil

	case domain.NodeTypeLoop:
		return runLoop(decodeLoopConfig(node.Config), inputs)

	default:
		return nil, fmt.Errorf("unsupported node type: %s", node.Type)
	}
}
