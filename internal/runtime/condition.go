package runtime

import "strings"

// evaluateCondition resolves a Condition node's expression against the
// gathered inputs.
//
// The grammar is deliberately tiny: the literals "true" and "false", and
// the predicate "data != null" (is the data input present and non-nil).
// Any other expression — and any condition_type other than "expression" —
// evaluates to true. Callers must be aware that only these forms are
// meaningful.
func evaluateCondition(cfg ConditionConfig, inputs map[string]any) bool {
	if cfg.ConditionType != "expression" {
		return true
	}

	switch strings.TrimSpace(cfg.Expression) {
	case "true":
		return true
	case "false":
		return false
	case "data != null":
		val, ok := inputs["data"]
		return ok && val != nil
	default:
		return true
	}
}
