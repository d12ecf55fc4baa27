package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/s0up4200/marquee/browse"
	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/viewer"
)

const (
	headline         = "Discover Movies. Follow the People Behind Them."
	subtitle         = "Explore any genre, find any contributor, and jump through connected titles."
	loadingMoreText  = "Loading more results..."
	browseEmptyText  = "No movies available."
	searchEmptyText  = "No movies found."
	homeHeaderHeight = 3
)

// homeScreen shows the browse strip or the paginated search grid
type homeScreen struct {
	ctrl  *browse.Controller
	strip *viewer.List[catalog.Title]
	grid  *viewer.List[catalog.Title]
	years []int
}

func newHomeScreen(logger zerolog.Logger, styles *Styles, now time.Time) *homeScreen {
	return &homeScreen{
		ctrl: browse.NewController(logger),
		strip: viewer.New(titleCard(styles),
			viewer.Horizontal(),
			viewer.WithEmptyText(browseEmptyText),
			viewer.WithMinItemWidth(cardMinWidth),
			viewer.WithStyles(styles.List),
		),
		grid: viewer.New(titleCard(styles),
			viewer.WithEmptyText(searchEmptyText),
			viewer.WithMinItemWidth(cardMinWidth),
			viewer.WithStyles(styles.List),
		),
		years: browse.ReleaseYearOptions(now),
	}
}

// list is the viewer of the current mode
func (h *homeScreen) list() *viewer.List[catalog.Title] {
	if h.ctrl.Mode() == browse.ModeSearch {
		return h.grid
	}
	return h.strip
}

// sync copies controller state into the viewer of the current mode
func (h *homeScreen) sync() {
	l := h.list()

	titles := h.ctrl.Titles()
	if h.ctrl.Mode() == browse.ModeBrowse && len(titles) > browse.StripLimit {
		titles = titles[:browse.StripLimit]
	}

	l.SetLoading(h.ctrl.Status() == browse.StatusLoading)
	if err := h.ctrl.Err(); err != nil {
		l.SetError(err.Error())
	} else {
		l.SetError("")
	}
	l.SetItems(titles)
}

func (h *homeScreen) resize(width, height int) {
	h.strip.Resize(width, 0)
	// filter line and the loading-more line
	h.grid.Resize(width, max(1, height-homeHeaderHeight))
}

func (h *homeScreen) setStyles(styles *Styles) {
	h.strip.SetStyles(styles.List)
	h.grid.SetStyles(styles.List)
}

func (h *homeScreen) setLoadingText(text string) {
	h.strip.SetLoadingText(text)
	h.grid.SetLoadingText(text)
}

func (h *homeScreen) filterLine(styles *Styles) string {
	f := h.ctrl.Filters()

	year := "All years"
	if f.ReleaseYear != 0 {
		year = fmt.Sprint(f.ReleaseYear)
	}
	genre := "All genres"
	if name, ok := h.ctrl.GenreName(); ok {
		genre = name
	} else if f.GenreID != 0 {
		genre = fmt.Sprintf("#%d", f.GenreID)
	}

	return strings.Join([]string{
		styles.Label.Render("Filters:"),
		styles.Muted.Render("Release Year") + " " + year + styles.Muted.Render(" (y)"),
		styles.Muted.Render("Genre") + " " + genre + styles.Muted.Render(" (g)"),
	}, "  ")
}

func (h *homeScreen) view(styles *Styles) string {
	if h.ctrl.Mode() == browse.ModeBrowse {
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.Headline.Render(headline),
			styles.Subtitle.Render(subtitle),
			h.strip.View(),
		)
	}

	sections := []string{
		h.filterLine(styles),
		"",
		h.grid.View(),
	}
	if h.ctrl.LoadingMore() {
		sections = append(sections, styles.Status.Render(loadingMoreText))
	}
	if err := h.ctrl.MoreErr(); err != nil {
		sections = append(sections, styles.Error.Render(err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
