// Package filter trims already-fetched titles with expr-lang expressions.
//
// Expressions see the fields of one title:
//
//	ID, Title, Year, HasYear, MediaType, ReferenceID
//
// and the helpers containsFold, prefixFold, suffixFold (case-insensitive),
// lower, upper and between(value, low, high). Titles without a release year
// have Year 0 and HasYear false. The expr operators contains, startsWith and
// endsWith remain available and are case-sensitive.
//
//	f, err := filter.NewExprCompiler().Compile(`HasYear and between(Year, 1970, 1989)`)
//	kept := filter.Apply(f, titles)
//
// Filters run client side on rows that were already returned; server-side
// query parameters remain the way to narrow a search.
package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/marquee/catalog"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler() Compiler {
	return &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}
}

type exprCompiler struct {
	helperFuncs map[string]any
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	env := createRuntimeEnvironment(catalog.Title{}, c.helperFuncs)
	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Position:   -1,
			Err:        err,
		}
	}

	return &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}, nil
}

// Evaluate evaluates the filter against a title. Runtime errors count as no match.
func (f *exprFilter) Evaluate(title catalog.Title) bool {
	result, err := expr.Run(f.program, createRuntimeEnvironment(title, f.helpers))
	if err != nil {
		return false
	}
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// Apply returns the titles f keeps, in order
func Apply(f Filter, titles []catalog.Title) []catalog.Title {
	kept := make([]catalog.Title, 0, len(titles))
	for _, title := range titles {
		if f.Evaluate(title) {
			kept = append(kept, title)
		}
	}
	return kept
}

func createHelperFunctions() map[string]any {
	return map[string]any{
		"containsFold": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"prefixFold": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"suffixFold": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"between": func(value, low, high int) bool {
			return value >= low && value <= high
		},
	}
}

// createRuntimeEnvironment exposes one title's fields next to the helpers
func createRuntimeEnvironment(title catalog.Title, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+6)
	maps.Copy(env, helpers)

	env["ID"] = title.ID
	env["Title"] = title.Name
	env["Year"] = title.Year()
	env["HasYear"] = title.ReleaseYear != nil
	env["MediaType"] = title.MediaType
	env["ReferenceID"] = title.ReferenceID()

	return env
}
