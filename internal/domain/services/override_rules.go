package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// TagEnv defines the variables available to override expressions.
type TagEnv struct {
	Tags []string `expr:"tags"`
}

// OverrideSpec is an uncompiled override: when the expression holds for the
// union of both parents' tags, the result is Name.
type OverrideSpec struct {
	When string `yaml:"when"`
	Name string `yaml:"name"`
}

// DefaultOverrideSpecs is the built-in override list, first match wins.
var DefaultOverrideSpecs = []OverrideSpec{
	{When: `"life" in tags && "stone" in tags`, Name: "Golem"},
	{When: `"life" in tags && "metal" in tags`, Name: "Robot"},
	{When: `"life" in tags && "watery" in tags`, Name: "Fish"},
	{When: `"life" in tags && "earthy" in tags`, Name: "Animal"},
	{When: `"life" in tags && "sky" in tags`, Name: "Bird"},
	{When: `"hot" in tags && "stone" in tags && "watery" not in tags`, Name: "Magma Rock"},
	{When: `"plant" in tags && "stone" in tags`, Name: "Mossy Rock"},
	{When: `"watery" in tags && "airborne" in tags`, Name: "Cloud"},
	{When: `"cold" in tags && "watery" in tags`, Name: "Ice"},
	{When: `"energy" in tags && "metal" in tags`, Name: "Electricity"},
	{When: `"human" in tags && "stone" in tags`, Name: "Statue"},
	{When: `"human" in tags && "metal" in tags`, Name: "Knight"},
}

// OverrideRule is a compiled override.
type OverrideRule struct {
	program *vm.Program
	When    string
	Name    string
}

// CompileOverrides compiles specs in order.
func CompileOverrides(specs []OverrideSpec) ([]OverrideRule, error) {
	rules := make([]OverrideRule, 0, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("override %d: name is required", i)
		}
		program, err := expr.Compile(spec.When, expr.Env(TagEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("override %d (%s): invalid expression: %w", i, spec.Name, err)
		}
		rules = append(rules, OverrideRule{program: program, When: spec.When, Name: spec.Name})
	}
	return rules, nil
}

// MatchOverride returns the name of the first rule satisfied by tags.
// A rule whose evaluation errors is treated as not matching.
func MatchOverride(rules []OverrideRule, tags []string) (string, bool) {
	env := TagEnv{Tags: tags}
	for _, rule := range rules {
		out, err := expr.Run(rule.program, env)
		if err != nil {
			continue
		}
		if matched, ok := out.(bool); ok && matched {
			return rule.Name, true
		}
	}
	return "", false
}
