package viewer

import "github.com/charmbracelet/lipgloss"

// Option configures a List
type Option func(*options)

type options struct {
	horizontal   bool
	heading      string
	emptyText    string
	loadingText  string
	minItemWidth int
	gap          int
	styles       Styles
}

// Horizontal renders items in a single scrollable strip instead of a grid
func Horizontal() Option {
	return func(o *options) {
		o.horizontal = true
	}
}

// WithHeading shows a heading above every state
func WithHeading(heading string) Option {
	return func(o *options) {
		o.heading = heading
	}
}

// WithEmptyText sets the text shown when there are no items
func WithEmptyText(text string) Option {
	return func(o *options) {
		if text != "" {
			o.emptyText = text
		}
	}
}

// WithLoadingText sets the text shown while loading
func WithLoadingText(text string) Option {
	return func(o *options) {
		if text != "" {
			o.loadingText = text
		}
	}
}

// WithMinItemWidth sets the minimum cell width of an item
func WithMinItemWidth(width int) Option {
	return func(o *options) {
		if width > 0 {
			o.minItemWidth = width
		}
	}
}

// WithStyles sets the list styles
func WithStyles(styles Styles) Option {
	return func(o *options) {
		o.styles = styles
	}
}

// Styles are the lipgloss styles of the non-item parts of a list
type Styles struct {
	Heading    lipgloss.Style
	Loading    lipgloss.Style
	Error      lipgloss.Style
	Empty      lipgloss.Style
	Affordance lipgloss.Style
}

// DefaultStyles are plain styles without colors
func DefaultStyles() Styles {
	return Styles{
		Heading:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Loading:    lipgloss.NewStyle(),
		Error:      lipgloss.NewStyle(),
		Empty:      lipgloss.NewStyle().Italic(true),
		Affordance: lipgloss.NewStyle().Bold(true),
	}
}
