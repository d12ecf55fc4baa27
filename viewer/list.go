package viewer

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultEmptyText    = "No results found."
	defaultLoadingText  = "Loading..."
	defaultMinItemWidth = 22
	defaultGap          = 2
	frameRate           = 60
	affordanceWidth     = 2
)

// Item is anything with a stable unique id
type Item interface {
	ItemID() int
}

// RenderFunc draws one item into at most width cells
type RenderFunc[T Item] func(item T, selected bool, width int) string

// State is what a list currently shows. Earlier states take precedence.
type State int

const (
	StateLoading State = iota
	StateError
	StateEmpty
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	default:
		return "populated"
	}
}

// FrameMsg advances the strip animation of the list with the matching id
type FrameMsg struct {
	ID int
}

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// List renders homogeneous items as a horizontal strip or a wrapping grid.
// It knows nothing about what the items are.
type List[T Item] struct {
	id     int
	opts   options
	render RenderFunc[T]

	items   []T
	loading bool
	errMsg  string

	width  int
	height int

	cursor    int
	rowOffset int
	strip     Strip
}

// New creates a list that draws items with render
func New[T Item](render RenderFunc[T], opts ...Option) *List[T] {
	o := options{
		emptyText:    defaultEmptyText,
		loadingText:  defaultLoadingText,
		minItemWidth: defaultMinItemWidth,
		gap:          defaultGap,
		styles:       DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &List[T]{
		id:     nextID(),
		opts:   o,
		render: render,
		strip:  NewStrip(frameRate),
	}
}

// ID identifies the list in FrameMsg
func (l *List[T]) ID() int { return l.id }

// SetItems replaces the items. The cursor is kept when still in range.
func (l *List[T]) SetItems(items []T) {
	l.items = items
	if l.cursor >= len(items) {
		l.cursor = max(0, len(items)-1)
	}
	l.layout()
}

// Items returns the current items
func (l *List[T]) Items() []T { return l.items }

// SetLoading toggles the loading state
func (l *List[T]) SetLoading(loading bool) { l.loading = loading }

// SetError sets the error message; empty clears it
func (l *List[T]) SetError(msg string) { l.errMsg = msg }

// SetLoadingText replaces the text shown while loading, e.g. with a spinner frame
func (l *List[T]) SetLoadingText(text string) { l.opts.loadingText = text }

// SetHeading replaces the heading
func (l *List[T]) SetHeading(heading string) { l.opts.heading = heading }

// SetStyles replaces the styles, used when the theme changes
func (l *List[T]) SetStyles(styles Styles) { l.opts.styles = styles }

// Resize sets the area the list may draw into. Height zero means unbounded.
func (l *List[T]) Resize(width, height int) {
	l.width = max(0, width)
	l.height = max(0, height)
	l.layout()
}

// Horizontal reports strip mode
func (l *List[T]) Horizontal() bool { return l.opts.horizontal }

// State reports which of loading, error, empty and populated is shown
func (l *List[T]) State() State {
	switch {
	case l.loading:
		return StateLoading
	case l.errMsg != "":
		return StateError
	case len(l.items) == 0:
		return StateEmpty
	default:
		return StatePopulated
	}
}

// Selected returns the item under the cursor
func (l *List[T]) Selected() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[l.cursor], true
}

// Cursor returns the selected index
func (l *List[T]) Cursor() int { return l.cursor }

// Move shifts the cursor by dx items horizontally and dy rows vertically.
// Strip mode ignores dy. It reports whether the selection changed.
func (l *List[T]) Move(dx, dy int) bool {
	if len(l.items) == 0 {
		return false
	}

	next := l.cursor + dx
	if !l.opts.horizontal {
		next += dy * l.Columns()
	}
	next = max(0, min(len(l.items)-1, next))
	if next == l.cursor {
		return false
	}

	l.cursor = next
	l.follow()
	return true
}

// Strip exposes the scroll state in strip mode
func (l *List[T]) Strip() Strip { return l.strip }

// ScrollLeft scrolls a strip left by most of its width
func (l *List[T]) ScrollLeft() bool {
	return l.opts.horizontal && l.strip.ScrollLeft()
}

// ScrollRight scrolls a strip right by most of its width
func (l *List[T]) ScrollRight() bool {
	return l.opts.horizontal && l.strip.ScrollRight()
}

// Animate returns the next animation frame command, or nil when settled
func (l *List[T]) Animate() tea.Cmd {
	if !l.opts.horizontal || !l.strip.Animating() {
		return nil
	}
	id := l.id
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}

// Update advances the strip animation on frames addressed to this list
func (l *List[T]) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != l.id {
		return nil
	}
	l.strip.Step()
	return l.Animate()
}

// Columns is the number of grid columns that fit the width
func (l *List[T]) Columns() int {
	if l.opts.horizontal {
		return max(1, len(l.items))
	}
	return max(1, (l.width+l.opts.gap)/(l.opts.minItemWidth+l.opts.gap))
}

// Rows is the number of grid rows the items fill
func (l *List[T]) Rows() int {
	cols := l.Columns()
	return (len(l.items) + cols - 1) / cols
}

// VisibleRows is how many grid rows fit the height
func (l *List[T]) VisibleRows() int {
	if l.height == 0 {
		return max(1, l.Rows())
	}
	available := l.height - l.headingHeight()
	return max(1, (available+1)/(l.itemHeight()+1))
}

// NearEnd reports whether the visible window reaches within lookahead rows of the last row.
// It is the trigger for loading more items.
func (l *List[T]) NearEnd(lookahead int) bool {
	if l.State() != StatePopulated {
		return false
	}
	if l.opts.horizontal {
		return !l.strip.CanScrollRight()
	}
	lastVisible := l.rowOffset + l.VisibleRows() - 1
	return lastVisible >= l.Rows()-1-max(0, lookahead)
}

// View renders the current state
func (l *List[T]) View() string {
	var sections []string
	if l.opts.heading != "" {
		sections = append(sections, l.opts.styles.Heading.Render(l.opts.heading))
	}

	switch l.State() {
	case StateLoading:
		sections = append(sections, l.opts.styles.Loading.Render(l.opts.loadingText))
	case StateError:
		sections = append(sections, l.opts.styles.Error.Render(l.errMsg))
	case StateEmpty:
		sections = append(sections, l.opts.styles.Empty.Render(l.opts.emptyText))
	default:
		if l.opts.horizontal {
			sections = append(sections, l.viewStrip())
		} else {
			sections = append(sections, l.viewGrid())
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (l *List[T]) viewStrip() string {
	cards := make([]string, 0, 2*len(l.items))
	for i, item := range l.items {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", l.opts.gap))
		}
		cards = append(cards, l.cell(item, i == l.cursor, l.opts.minItemWidth))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	viewport := l.strip.Viewport()
	offset := l.strip.Offset()

	left, right := "  ", "  "
	if l.strip.CanScrollLeft() {
		left = l.opts.styles.Affordance.Render("‹ ")
	}
	if l.strip.CanScrollRight() {
		right = l.opts.styles.Affordance.Render(" ›")
	}

	lines := strings.Split(row, "\n")
	for i, line := range lines {
		visible := ansi.Cut(line, offset, offset+viewport)
		if pad := viewport - ansi.StringWidth(visible); pad > 0 {
			visible += strings.Repeat(" ", pad)
		}
		if i == len(lines)/2 {
			lines[i] = left + visible + right
		} else {
			lines[i] = "  " + visible + "  "
		}
	}
	return strings.Join(lines, "\n")
}

func (l *List[T]) viewGrid() string {
	cols := l.Columns()
	width := l.cellWidth(cols)

	first := l.rowOffset
	last := min(l.Rows(), first+l.VisibleRows())

	rows := make([]string, 0, last-first)
	for r := first; r < last; r++ {
		cells := make([]string, 0, 2*cols)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(l.items) {
				break
			}
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", l.opts.gap))
			}
			cells = append(cells, l.cell(l.items[i], i == l.cursor, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n\n")
}

// cell renders one item clamped to width
func (l *List[T]) cell(item T, selected bool, width int) string {
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(l.render(item, selected, width))
}

func (l *List[T]) cellWidth(cols int) int {
	if l.width == 0 {
		return l.opts.minItemWidth
	}
	return max(1, (l.width-(cols-1)*l.opts.gap)/cols)
}

func (l *List[T]) itemHeight() int {
	if len(l.items) == 0 {
		return 1
	}
	return max(1, lipgloss.Height(l.cell(l.items[0], false, l.cellWidth(l.Columns()))))
}

func (l *List[T]) headingHeight() int {
	if l.opts.heading == "" {
		return 0
	}
	return lipgloss.Height(l.opts.styles.Heading.Render(l.opts.heading))
}

// layout recomputes strip extents and the grid window after items or size change
func (l *List[T]) layout() {
	if l.opts.horizontal {
		n := len(l.items)
		content := 0
		if n > 0 {
			content = n*l.opts.minItemWidth + (n-1)*l.opts.gap
		}
		l.strip.Measure(l.width-2*affordanceWidth, content)
		l.follow()
		l.strip.Jump()
		return
	}

	maxOffset := max(0, l.Rows()-l.VisibleRows())
	l.rowOffset = max(0, min(l.rowOffset, maxOffset))
	l.follow()
}

// follow keeps the cursor inside the visible window
func (l *List[T]) follow() {
	if l.opts.horizontal {
		start := l.cursor * (l.opts.minItemWidth + l.opts.gap)
		l.strip.Reveal(start, start+l.opts.minItemWidth)
		return
	}

	row := l.cursor / l.Columns()
	visible := l.VisibleRows()
	switch {
	case row < l.rowOffset:
		l.rowOffset = row
	case row >= l.rowOffset+visible:
		l.rowOffset = row - visible + 1
	}
}
