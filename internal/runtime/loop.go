package runtime

import "fmt"

// runLoop enumerates the "items" input into {item, index} records.
//
// The loop does not invoke any sub-graph per iteration — it only
// enumerates. A missing or nil items input yields empty results; a
// non-sequence input is a node-local error.
func runLoop(cfg LoopConfig, inputs map[string]any) (any, error) {
	results := make([]any, 0)

	raw, ok := inputs["items"]
	if !ok || raw == nil {
		return map[string]any{"results": results}, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("loop items input is not a sequence (got %T)", raw)
	}

	for i, item := range items {
		record := map[string]any{
			"item":  item,
			"index": i,
		}
		if cfg.CollectResults {
			results = append(results, record)
		}
	}

	return map[string]any{"results": results}, nil
}
