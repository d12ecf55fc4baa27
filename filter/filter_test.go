package filter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/marquee/catalog"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func testTitles() []catalog.Title {
	return []catalog.Title{
		{ID: 1, Name: "Alien", ReleaseYear: intPtr(1979), MediaType: "movie", ExternalReferenceID: strPtr("tt0078748")},
		{ID: 2, Name: "Aliens", ReleaseYear: intPtr(1986), MediaType: "movie"},
		{ID: 3, Name: "Alien: Romulus", ReleaseYear: intPtr(2024), MediaType: "movie"},
		{ID: 4, Name: "Untitled Alien Project", MediaType: "movie"},
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `containsFold(Title, "alien")`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `containsFold(Title, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "unknown field",
			expression: `Rating > 7`,
			wantErr:    true,
		},
		{
			name:       "non-boolean result",
			expression: `Year + 1`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `HasYear and between(Year, 1970, 1989) and prefixFold(Title, "ali")`,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)

			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.expression), filter.Expression())
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		expected   []int
	}{
		{name: "year range", expression: `between(Year, 1970, 1989)`, expected: []int{1, 2}},
		{name: "missing year", expression: `not HasYear`, expected: []int{4}},
		{name: "case insensitive contains", expression: `containsFold(Title, "ROMULUS")`, expected: []int{3}},
		{name: "case insensitive prefix", expression: `prefixFold(Title, "UNTITLED")`, expected: []int{4}},
		{name: "case insensitive suffix", expression: `suffixFold(Title, "S")`, expected: []int{2, 3}},
		{name: "contains operator is case sensitive", expression: `Title contains "alien"`, expected: nil},
		{name: "starts with operator", expression: `Title startsWith "Alien:"`, expected: []int{3}},
		{name: "reference id", expression: `ReferenceID != ""`, expected: []int{1}},
		{name: "media type", expression: `MediaType == "movie" and ID > 2`, expected: []int{3, 4}},
		{name: "lower", expression: `lower(Title) == "aliens"`, expected: []int{2}},
		{name: "upper", expression: `upper(Title) == "ALIEN"`, expected: []int{1}},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			require.NoError(t, err)

			var ids []int
			for _, title := range Apply(f, testTitles()) {
				ids = append(ids, title.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestApplyKeepsEmptySlice(t *testing.T) {
	f, err := NewExprCompiler().Compile(`false`)
	require.NoError(t, err)

	kept := Apply(f, testTitles())
	assert.NotNil(t, kept)
	assert.Empty(t, kept)
}

func TestHelperFunctions(t *testing.T) {
	title := catalog.Title{ID: 7, Name: "The Thing", ReleaseYear: intPtr(1982)}

	tests := map[string]bool{
		`containsFold(Title, "THING")`: true,
		`containsFold(Title, "alien")`: false,
		`prefixFold(Title, "the t")`:   true,
		`prefixFold(Title, "thing")`:   false,
		`suffixFold(Title, "ING")`:     true,
		`suffixFold(Title, "the")`:     false,
		`lower(Title) == "the thing"`:  true,
		`upper(Title) == "THE THING"`:  true,
		`between(Year, 1980, 1982)`:    true,
		`between(Year, 1983, 1990)`:    false,
	}

	compiler := NewExprCompiler()
	for expression, want := range tests {
		t.Run(expression, func(t *testing.T) {
			f, err := compiler.Compile(expression)
			require.NoError(t, err)
			assert.Equal(t, want, f.Evaluate(title))
		})
	}
}

func TestCompilationErrorMessage(t *testing.T) {
	err := &CompilationError{Expression: "x", Reason: "bad", Position: 3}
	assert.Equal(t, "compilation error at position 3 in 'x': bad", err.Error())

	err = &CompilationError{Expression: "x", Reason: "bad", Position: -1}
	assert.Equal(t, "compilation error in 'x': bad", err.Error())
}
