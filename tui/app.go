package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/s0up4200/marquee/browse"
	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/detail"
	"github.com/s0up4200/marquee/settings"
	"github.com/s0up4200/marquee/viewer"
)

const (
	topBarHeight = 3
	helpHeight   = 2
)

// Options configures the terminal UI
type Options struct {
	Context context.Context
	API     catalog.API
	Store   settings.Store
	Logger  zerolog.Logger
	// LookaheadRows is how many grid rows before the end trigger the next page
	LookaheadRows int
	// Route is the initial path, "/" when empty
	Route string
	Now   func() time.Time
}

// Model is the root Bubble Tea model
type Model struct {
	ctx       context.Context
	api       catalog.API
	store     settings.Store
	logger    zerolog.Logger
	lookahead int

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	search  textinput.Model

	theme  settings.Theme
	styles *Styles

	router      *Router
	route       Route
	home        *homeScreen
	title       *titleScreen
	contributor *contributorScreen
	picker      *picker

	initialRoute string
	status       string
	width        int
	height       int
}

var _ tea.Model = (*Model)(nil)

// New creates the root model. The theme is read from the settings store.
func New(opts Options) *Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Store == nil {
		opts.Store = settings.NewMemoryStore()
	}
	if opts.Route == "" {
		opts.Route = homePath
	}

	theme := settings.LoadTheme(opts.Store)
	styles := NewStyles(theme)

	search := textinput.New()
	search.Placeholder = "Search movies"
	search.Prompt = "/ "
	search.CharLimit = 120
	search.Width = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	logger := opts.Logger.With().Str("component", "tui").Logger()

	return &Model{
		ctx:          opts.Context,
		api:          opts.API,
		store:        opts.Store,
		logger:       logger,
		lookahead:    max(0, opts.LookaheadRows),
		keys:         defaultKeyMap(),
		help:         help.New(),
		spinner:      sp,
		search:       search,
		theme:        theme,
		styles:       &styles,
		router:       NewRouter(),
		home:         newHomeScreen(logger, &styles, opts.Now()),
		title:        newTitleScreen(&styles),
		contributor:  newContributorScreen(&styles),
		initialRoute: opts.Route,
	}
}

// Init starts the spinner and opens the initial route
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.navigate(m.router.Push(m.initialRoute)))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, m.maybeLoadMore()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.setLoadingText(m.spinner.View() + " Loading...")
		return m, cmd

	case viewer.FrameMsg:
		return m, m.home.strip.Update(msg)

	case browseMsg:
		if m.home.ctrl.Apply(msg.result) {
			m.home.sync()
			return m, m.maybeLoadMore()
		}
		return m, nil

	case titleMsg:
		if m.title.ctrl.Apply(msg.result) {
			m.title.sync()
		}
		return m, nil

	case contributorMsg:
		if m.contributor.ctrl.Apply(msg.result) {
			m.contributor.sync()
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Str("theme", msg.theme.String()).Msg("Failed to save theme")
			m.status = "Theme not saved: " + msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	m.status = ""

	if m.picker != nil {
		return m.handlePickerKey(msg)
	}
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m.search.Focus()
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Home):
		if m.route.Kind == RouteHome {
			return nil
		}
		return m.navigate(m.router.Push(homePath))
	case key.Matches(msg, m.keys.Back):
		route, ok := m.router.Back()
		if !ok {
			return nil
		}
		return m.navigate(route)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return nil
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}

	switch m.route.Kind {
	case RouteTitle:
		return m.handleGridKey(msg, m.title.contributors.Move, func() tea.Cmd {
			if c, ok := m.title.contributors.Selected(); ok {
				return m.navigate(m.router.Push(ContributorPath(c.ID)))
			}
			return nil
		})
	case RouteContributor:
		return m.handleGridKey(msg, m.contributor.titles.Move, func() tea.Cmd {
			if t, ok := m.contributor.titles.Selected(); ok {
				return m.navigate(m.router.Push(TitlePath(t.ID)))
			}
			return nil
		})
	default:
		return m.handleHomeKey(msg)
	}
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	open := func() tea.Cmd {
		if t, ok := m.home.list().Selected(); ok {
			return m.navigate(m.router.Push(TitlePath(t.ID)))
		}
		return nil
	}

	if m.home.ctrl.Mode() == browse.ModeBrowse {
		strip := m.home.strip
		switch {
		case key.Matches(msg, m.keys.Left):
			strip.Move(-1, 0)
		case key.Matches(msg, m.keys.Right):
			strip.Move(1, 0)
		case key.Matches(msg, m.keys.ScrollLeft):
			strip.ScrollLeft()
		case key.Matches(msg, m.keys.ScrollRight):
			strip.ScrollRight()
		case key.Matches(msg, m.keys.Open):
			return open()
		}
		return strip.Animate()
	}

	switch {
	case key.Matches(msg, m.keys.Year):
		w, h := m.pickerSize()
		m.picker = newYearPicker(m.home.years, m.home.ctrl.Filters().ReleaseYear, w, h)
		return nil
	case key.Matches(msg, m.keys.Genre):
		genres := m.home.ctrl.Genres()
		if genres == nil {
			m.status = "Loading genres..."
			return nil
		}
		if len(genres) == 0 {
			m.status = "No genres available."
			return nil
		}
		w, h := m.pickerSize()
		m.picker = newGenrePicker(genres, m.home.ctrl.Filters().GenreID, w, h)
		return nil
	}

	return m.handleGridKey(msg, m.home.grid.Move, open)
}

// handleGridKey moves a grid cursor or opens the selected item
func (m *Model) handleGridKey(msg tea.KeyMsg, move func(dx, dy int) bool, open func() tea.Cmd) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		move(0, -1)
	case key.Matches(msg, m.keys.Down):
		move(0, 1)
	case key.Matches(msg, m.keys.Left):
		move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		move(1, 0)
	case key.Matches(msg, m.keys.Open):
		return open()
	default:
		return nil
	}
	return m.maybeLoadMore()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		text := strings.TrimSpace(m.search.Value())
		m.search.SetValue(text)
		return m.submitSearch(text)
	case "esc":
		m.search.Blur()
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	// clearing the input leaves search mode
	if before != "" && strings.TrimSpace(m.search.Value()) == "" && m.home.ctrl.Mode() == browse.ModeSearch {
		return tea.Batch(cmd, m.submitSearch(""))
	}
	return cmd
}

// submitSearch applies search text and shows the home screen
func (m *Model) submitSearch(text string) tea.Cmd {
	tickets := m.home.ctrl.SetSearchText(text)
	m.home.sync()

	var nav tea.Cmd
	if m.route.Kind != RouteHome {
		nav = m.navigate(m.router.Push(homePath))
	}
	return tea.Batch(nav, fetchBrowse(m.ctx, m.api, tickets...))
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	done, chosen, value, cmd := m.picker.update(msg)
	if !done {
		return cmd
	}

	kind := m.picker.kind
	m.picker = nil
	if !chosen {
		return nil
	}

	var tickets []browse.Ticket
	if kind == pickerYear {
		tickets = m.home.ctrl.SetReleaseYear(value)
	} else {
		tickets = m.home.ctrl.SetGenre(value)
	}
	m.home.sync()
	return fetchBrowse(m.ctx, m.api, tickets...)
}

// navigate shows a route, tearing down the detail screen being left
func (m *Model) navigate(route Route) tea.Cmd {
	if m.route.Kind == RouteTitle && route.Kind != RouteTitle {
		m.title.ctrl.Close()
	}
	if m.route.Kind == RouteContributor && route.Kind != RouteContributor {
		m.contributor.ctrl.Close()
	}
	m.route = route
	m.picker = nil

	switch route.Kind {
	case RouteTitle:
		ticket, outcome := m.title.ctrl.Open(route.RawID)
		switch outcome {
		case detail.OutcomeRedirect:
			m.logger.Debug().Str("id", route.RawID).Msg("Invalid title id, redirecting home")
			return m.navigate(m.router.Replace(homePath))
		case detail.OutcomeFetch:
			m.title.sync()
			return fetchTitle(m.ctx, m.api, &m.title.ctrl, ticket)
		}
		return nil

	case RouteContributor:
		ticket, outcome := m.contributor.ctrl.Open(route.RawID)
		switch outcome {
		case detail.OutcomeRedirect:
			m.logger.Debug().Str("id", route.RawID).Msg("Invalid contributor id, redirecting home")
			return m.navigate(m.router.Replace(homePath))
		case detail.OutcomeFetch:
			m.contributor.sync()
			return fetchContributor(m.ctx, m.api, &m.contributor.ctrl, ticket)
		}
		return nil

	default:
		tickets := m.home.ctrl.Start()
		m.home.sync()
		return fetchBrowse(m.ctx, m.api, tickets...)
	}
}

func (m *Model) reload() tea.Cmd {
	switch m.route.Kind {
	case RouteTitle:
		if ticket, ok := m.title.ctrl.Reload(); ok {
			m.title.sync()
			return fetchTitle(m.ctx, m.api, &m.title.ctrl, ticket)
		}
	case RouteContributor:
		if ticket, ok := m.contributor.ctrl.Reload(); ok {
			m.contributor.sync()
			return fetchContributor(m.ctx, m.api, &m.contributor.ctrl, ticket)
		}
	default:
		tickets := m.home.ctrl.Reload()
		m.home.sync()
		return fetchBrowse(m.ctx, m.api, tickets...)
	}
	return nil
}

// maybeLoadMore is the bottom-proximity trigger of the search grid
func (m *Model) maybeLoadMore() tea.Cmd {
	if m.route.Kind != RouteHome || m.home.ctrl.Mode() != browse.ModeSearch {
		return nil
	}
	if !m.home.ctrl.HasMore() || !m.home.grid.NearEnd(m.lookahead) {
		return nil
	}
	ticket, ok := m.home.ctrl.LoadMore()
	if !ok {
		return nil
	}
	return fetchBrowse(m.ctx, m.api, ticket)
}

func (m *Model) toggleTheme() tea.Cmd {
	m.theme = m.theme.Toggle()
	*m.styles = NewStyles(m.theme)
	m.home.setStyles(m.styles)
	m.title.contributors.SetStyles(m.styles.List)
	m.contributor.titles.SetStyles(m.styles.List)
	return saveTheme(m.store, m.theme)
}

func (m *Model) setLoadingText(text string) {
	m.home.setLoadingText(text)
	m.title.contributors.SetLoadingText(text)
	m.contributor.titles.SetLoadingText(text)
}

func (m *Model) bodySize() (int, int) {
	width := max(1, m.width-2)
	helpLines := 1
	if m.help.ShowAll {
		helpLines = 5
	}
	return width, max(1, m.height-topBarHeight-helpLines-helpHeight)
}

func (m *Model) pickerSize() (int, int) {
	w, h := m.bodySize()
	return min(w, 40), max(5, h)
}

func (m *Model) resize() {
	w, h := m.bodySize()
	m.help.Width = w
	m.home.resize(w, h)
	m.title.contributors.Resize(w, max(1, h-detailHeaderHeight))
	m.contributor.titles.Resize(w, max(1, h-detailHeaderHeight))
	if m.picker != nil {
		m.picker.setSize(m.pickerSize())
	}
}

// Theme returns the active theme
func (m *Model) Theme() settings.Theme { return m.theme }

// Route returns the active route
func (m *Model) Route() Route { return m.route }

// Path returns the current path
func (m *Model) Path() string { return m.router.Current() }

// View renders the UI
func (m *Model) View() string {
	var body string
	switch {
	case m.picker != nil:
		body = m.picker.view()
	case m.route.Kind == RouteTitle:
		body = m.title.view(m.styles)
	case m.route.Kind == RouteContributor:
		body = m.contributor.view(m.styles)
	default:
		body = m.home.view(m.styles)
	}

	sections := []string{m.topBar(), body}
	if m.status != "" {
		sections = append(sections, m.styles.Status.Render(m.status))
	}
	sections = append(sections, m.styles.Status.Render(m.help.View(m.keys)))

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) topBar() string {
	parts := []string{
		m.styles.Brand.Render("marquee"),
		m.search.View(),
		m.styles.Muted.Render("[t] " + m.theme.Toggle().String() + " mode"),
	}
	if m.route.Kind != RouteHome {
		parts = append(parts, m.styles.Muted.Render("[h] home"))
	}

	bar := strings.Join(parts, "   ")
	return m.styles.TopBar.Width(max(1, m.width-2)).Render(bar)
}
