// Package cel evaluates CEL expressions against a site configuration tree.
// The tree is bound to the variable "_", so "_.menu[0].label" reads the first
// menu label and "_.menu.map(m, m.path)" lists every menu path.
package cel

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"

	"github.com/samdoesblogs/sitecfg/pkg/site"
)

// RootVariable is the name the configuration tree is bound to.
const RootVariable = "_"

// Evaluator compiles and evaluates CEL expressions.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates an evaluator with the string, list and math extensions
// plus the site-specific functions.
func NewEvaluator() (*Evaluator, error) {
	env, err := newSiteEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// GetEnvironment returns the CEL environment for introspection.
func (e *Evaluator) GetEnvironment() *cel.Env {
	return e.env
}

func newSiteEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	allOpts := make([]cel.EnvOption, 0, 5+len(opts))
	allOpts = append(allOpts,
		cel.Variable(RootVariable, cel.DynType),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
		configuredFunction(),
	)
	allOpts = append(allOpts, opts...)
	return cel.NewEnv(allOpts...)
}

// configuredFunction declares configured(string) -> bool, which applies the
// contact placeholder convention: empty and "#" are not configured.
func configuredFunction() cel.EnvOption {
	return cel.Function("configured",
		cel.Overload("configured_string",
			[]*cel.Type{cel.StringType},
			cel.BoolType,
			cel.UnaryBinding(func(v ref.Val) ref.Val {
				s, ok := v.(types.String)
				if !ok {
					return types.NewErr("configured() requires a string argument")
				}
				trimmed := strings.TrimSpace(string(s))
				return types.Bool(trimmed != "" && trimmed != site.PlaceholderLink)
			}),
		),
	)
}

// Check compiles expr without evaluating it.
func (e *Evaluator) Check(expr string) error {
	_, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return fmt.Errorf("compilation error: %w", issues.Err())
	}
	return nil
}

// Evaluate evaluates expr with data bound to "_" and returns plain Go values.
func (e *Evaluator) Evaluate(expr string, data any) (any, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}

	result, _, err := prg.Eval(map[string]any{
		RootVariable: data,
	})
	if err != nil {
		return nil, fmt.Errorf("eval error: %w", err)
	}

	converted := ToGo(result)
	if refVal, ok := converted.(ref.Val); ok {
		if valFunc, ok := refVal.(interface{ Value() any }); ok {
			converted = valFunc.Value()
		}
	}
	return converted, nil
}

// ToGo converts CEL values to Go values, recursing into lists and maps.
func ToGo(val ref.Val) any {
	if val == nil {
		return nil
	}

	switch v := val.(type) {
	case types.Bool:
		return bool(v)
	case types.Int:
		return int64(v)
	case types.Uint:
		return uint64(v)
	case types.Double:
		return float64(v)
	case types.String:
		return string(v)
	case types.Bytes:
		return []byte(v)
	}

	valuer, ok := val.(interface{ Value() any })
	if !ok {
		return val
	}
	switch inner := valuer.Value().(type) {
	case []ref.Val:
		out := make([]any, len(inner))
		for i, elem := range inner {
			out[i] = ToGo(elem)
		}
		return out
	case []any:
		return convertSlice(inner)
	case map[string]any:
		return convertMapValues(inner)
	case map[ref.Val]ref.Val:
		out := make(map[string]any, len(inner))
		for k, v := range inner {
			out[fmt.Sprintf("%v", ToGo(k))] = ToGo(v)
		}
		return out
	default:
		return inner
	}
}

func convertSlice(in []any) []any {
	out := make([]any, len(in))
	for i, elem := range in {
		out[i] = convertValue(elem)
	}
	return out
}

func convertMapValues(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = convertValue(v)
	}
	return out
}

func convertValue(v any) any {
	switch t := v.(type) {
	case ref.Val:
		return ToGo(t)
	case map[string]any:
		return convertMapValues(t)
	case []any:
		return convertSlice(t)
	default:
		return v
	}
}
