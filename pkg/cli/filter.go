package cli

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/ohler55/ojg/jp"
)

// filterRecords keeps the records for which the expression evaluates to
// true. Record fields are available as variables by their JSON names, e.g.
// `quantity < reorderLevel && active`.
func filterRecords(records []map[string]any, expression string) ([]map[string]any, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	var out []map[string]any
	for _, rec := range records {
		keep, err := expr.Run(program, rec)
		if err != nil {
			return nil, fmt.Errorf("filter evaluation failed: %w", err)
		}
		if keep.(bool) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// extractPath applies a JSONPath expression to the value and returns the
// matched results.
func extractPath(value any, path string) ([]any, error) {
	compiled, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", path, err)
	}
	return compiled.Get(value), nil
}
