// Package filter compiles expr-lang expressions and evaluates them
// against fetched Pokemon, so callers can narrow batch results with
// criteria like `Total > 500 && hasType("fire")`.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/pokedex-mcp/pokeapi"
)

// Filter is a compiled filter expression.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression. The expression must evaluate to
// a boolean for each Pokemon.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(staticEnv()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{program: program, expr: expression}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expr
}

// Evaluate runs the filter against a single Pokemon. Non-boolean results
// and runtime errors evaluate to false.
func (f *Filter) Evaluate(p *pokeapi.Pokemon) bool {
	output, err := expr.Run(f.program, environment(p))
	if err != nil {
		return false
	}
	matched, ok := output.(bool)
	return ok && matched
}

// Apply returns the subset of pokemon matching the filter, preserving
// input order.
func (f *Filter) Apply(pokemon []*pokeapi.Pokemon) []*pokeapi.Pokemon {
	var matched []*pokeapi.Pokemon
	for _, p := range pokemon {
		if f.Evaluate(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// staticEnv declares the identifiers available at compile time.
func staticEnv() map[string]interface{} {
	return map[string]interface{}{
		"Name":   "",
		"ID":     0,
		"Types":  []string{},
		"Stats":  map[string]int{},
		"Total":  0,
		"Height": 0.0,
		"Weight": 0.0,

		"hasType":  func(string) bool { return false },
		"stat":     func(string) int { return 0 },
		"contains": func(string, string) bool { return false },
		"lower":    strings.ToLower,
		"upper":    strings.ToUpper,
	}
}

// environment builds the evaluation environment for one Pokemon.
func environment(p *pokeapi.Pokemon) map[string]interface{} {
	stats := p.StatMap()
	return map[string]interface{}{
		"Name":   p.Name,
		"ID":     p.ID,
		"Types":  p.TypeNames(),
		"Stats":  stats,
		"Total":  p.StatTotal(),
		"Height": p.HeightMeters(),
		"Weight": p.WeightKG(),

		"hasType": p.HasType,
		"stat": func(name string) int {
			return stats[name]
		},
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
