package runtime

import (
	"fmt"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
)

// Validate checks an agent for the structural problems execution does not
// tolerate: edges referencing unknown nodes or ports, and cycles in the
// edge set. Execution itself trusts the graph as given, so callers that
// accept agents from outside should validate before running.
func Validate(agent *domain.Agent) error {
	for _, edge := range agent.Edges {
		src := agent.FindNode(edge.SourceNodeID)
		if src == nil {
			return fmt.Errorf("%w: edge %s source %s", domain.ErrNodeNotFound, edge.ID, edge.SourceNodeID)
		}
		dst := agent.FindNode(edge.TargetNodeID)
		if dst == nil {
			return fmt.Errorf("%w: edge %s target %s", domain.ErrNodeNotFound, edge.ID, edge.TargetNodeID)
		}
		if edge.SourceOutputID != "" && !hasPort(src.Outputs, edge.SourceOutputID) {
			return fmt.Errorf("edge %s: output port %s does not belong to node %s", edge.ID, edge.SourceOutputID, src.ID)
		}
		if edge.TargetInputID != "" && !hasPort(dst.Inputs, edge.TargetInputID) {
			return fmt.Errorf("edge %s: input port %s does not belong to node %s", edge.ID, edge.TargetInputID, dst.ID)
		}
	}

	return checkAcyclic(agent)
}

func hasPort(ports []domain.NodeIO, id string) bool {
	for _, p := range ports {
		if p.ID == id {
			return true
		}
	}
	return false
}

// checkAcyclic runs Kahn's algorithm over the node/edge graph. If the
// topological order does not cover every node, a cycle exists.
func checkAcyclic(agent *domain.Agent) error {
	inDegree := make(map[string]int, len(agent.Nodes))
	dependents := make(map[string][]string, len(agent.Nodes))
	for _, node := range agent.Nodes {
		inDegree[node.ID] = 0
	}
	for _, edge := range agent.Edges {
		inDegree[edge.TargetNodeID]++
		dependents[edge.SourceNodeID] = append(dependents[edge.SourceNodeID], edge.TargetNodeID)
	}

	queue := make([]string, 0, len(agent.Nodes))
	for _, node := range agent.Nodes {
		if inDegree[node.ID] == 0 {
			queue = append(queue, node.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++

		for _, dep := range dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited != len(agent.Nodes) {
		return domain.ErrCycleDetected
	}
	return nil
}
