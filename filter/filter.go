// Package filter provides expr-based client-side filtering of Skyetel
// records, used by the CLI to narrow list output beyond what the API's
// query parameters can express.
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/skyetel/skyetel"
)

// Filter is a compiled boolean expression evaluated against one record's
// environment.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles a filter expression. Record fields are referenced as
// undefined variables and resolved at evaluation time, so one compiled
// filter works across record types that share field names.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the original expression text.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a record environment.
func (f *Filter) Match(env map[string]any) (bool, error) {
	merged := helperFunctions()
	for key, value := range env {
		merged[key] = value
	}

	result, err := expr.Run(f.program, merged)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "expression did not evaluate to a boolean",
		}
	}
	return matched, nil
}

// helperFunctions defines the static helpers available in expressions on
// top of expr's builtins. String matching uses the builtin contains and
// startsWith operators; matchText is their case-insensitive variant.
func helperFunctions() map[string]any {
	return map[string]any{
		"matchText": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
	}
}

// PhoneNumberEnv flattens a phone number into expression variables.
// Nested objects are exposed by name so expressions never have to
// nil-check them.
func PhoneNumberEnv(n skyetel.PhoneNumber) map[string]any {
	env := map[string]any{
		"ID":               n.ID,
		"Number":           n.Number.Int64(),
		"Category":         n.Category,
		"Note":             n.Note,
		"Vanity":           n.Vanity,
		"OffNetwork":       n.OffNetwork,
		"E911Enabled":      n.E911Enabled,
		"CNAMEnabled":      n.CNAMEnabled,
		"MessageEnabled":   n.MessageEnabled,
		"SpamblockEnabled": n.SpamblockEnabled,
		"VFaxEnabled":      n.VFaxEnabled,
		"LifecycleState":   n.LifecycleState,
		"Tenant":           "",
		"EndpointGroup":    "",
	}
	if n.Tenant != nil {
		env["Tenant"] = n.Tenant.Name
	}
	if n.EndpointGroup != nil {
		env["EndpointGroup"] = n.EndpointGroup.Name
	}
	return env
}

// RecordingEnv flattens an audio recording into expression variables.
func RecordingEnv(r skyetel.AudioRecording) map[string]any {
	return map[string]any{
		"ID":        r.ID,
		"CallID":    r.CallID,
		"TenantID":  r.TenantID,
		"Cost":      r.Cost.Float64(),
		"Duration":  r.Duration.Float64(),
		"SrcRoute":  r.SrcRoute,
		"DstRoute":  r.DstRoute,
		"StartTime": r.StartTime.Time,
	}
}
