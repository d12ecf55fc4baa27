package filter

import (
	"github.com/s0up4200/marquee/catalog"
)

// Filter decides whether a title is kept
type Filter interface {
	// Evaluate checks if a title matches the filter criteria
	Evaluate(title catalog.Title) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}
