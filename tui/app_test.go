package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/marquee/browse"
	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/settings"
)

type fakeAPI struct {
	mu sync.Mutex

	total  int
	genres []catalog.GenreOption

	queries          []catalog.BrowseQuery
	titleCalls       []int
	contributorCalls []int
}

var _ catalog.API = (*fakeAPI)(nil)

func (f *fakeAPI) BrowseTitles(_ context.Context, q catalog.BrowseQuery) (*catalog.BrowsePage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)

	page := &catalog.BrowsePage{Offset: q.Offset, PageSize: q.PageSize}
	for i := q.Offset; i < q.Offset+q.PageSize && i < f.total; i++ {
		page.Results = append(page.Results, catalog.Title{ID: i + 1, Name: fmt.Sprintf("Title %d", i+1), MediaType: "movie"})
	}
	return page, nil
}

func (f *fakeAPI) BrowseGenres(context.Context) ([]catalog.GenreOption, error) {
	return f.genres, nil
}

func (f *fakeAPI) GetTitleDetails(_ context.Context, id int) (*catalog.TitleDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.titleCalls = append(f.titleCalls, id)

	year := 1995
	return &catalog.TitleDetails{
		Title:  catalog.Title{ID: id, Name: "Heat", ReleaseYear: &year, MediaType: "movie"},
		Genres: []string{"Crime", "Drama"},
		Contributors: []catalog.Contributor{
			{ID: 3, Name: "Michael Mann", Roles: []string{"director", "writer"}},
			{ID: 4, Name: "Al Pacino", Roles: []string{"actor"}},
		},
	}, nil
}

func (f *fakeAPI) GetContributorDetails(_ context.Context, id int) (*catalog.ContributorDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contributorCalls = append(f.contributorCalls, id)

	return &catalog.ContributorDetails{
		ID:   id,
		Name: "Michael Mann",
		Titles: []catalog.ContributorTitle{
			{Title: catalog.Title{ID: 42, Name: "Heat"}, Roles: []string{"director", "writer"}},
			{Title: catalog.Title{ID: 43, Name: "Thief"}, Roles: []string{"writer"}},
		},
	}, nil
}

func (f *fakeAPI) snapshot() ([]catalog.BrowseQuery, []int, []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]catalog.BrowseQuery(nil), f.queries...),
		append([]int(nil), f.titleCalls...),
		append([]int(nil), f.contributorCalls...)
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, nil }
func (failingStore) Set(string, string) error       { return errors.New("disk full") }

func newTestModel(t *testing.T, api *fakeAPI, route string, store settings.Store) *Model {
	t.Helper()

	m := New(Options{
		API:           api,
		Store:         store,
		Logger:        zerolog.Nop(),
		LookaheadRows: 1,
		Route:         route,
		Now:           func() time.Time { return time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC) },
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	drain(m, m.Init())
	return m
}

// drain runs commands and feeds data messages back into the model.
// Timer-driven commands (spinner, cursor blink, animation) are skipped.
func drain(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := runCmd(next).(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case browseMsg, titleMsg, contributorMsg, themeSavedMsg:
			_, follow := m.Update(msg)
			queue = append(queue, follow)
		}
	}
}

func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		_, cmd := m.Update(k)
		drain(m, cmd)
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	bsKey    = tea.KeyMsg{Type: tea.KeyBackspace}
)

func TestHomeBrowseMode(t *testing.T) {
	api := &fakeAPI{total: 100}
	m := newTestModel(t, api, "", nil)

	queries, _, _ := api.snapshot()
	require.Len(t, queries, 1)
	assert.Equal(t, browse.DefaultPageSize, queries[0].PageSize)
	assert.Nil(t, queries[0].SearchText)

	assert.Equal(t, RouteHome, m.Route().Kind)
	assert.Len(t, m.home.strip.Items(), browse.StripLimit)

	view := m.View()
	assert.Contains(t, view, headline)
	assert.Contains(t, view, "Title 1")
	assert.NotContains(t, view, "[h] home")
}

func TestSearchFlow(t *testing.T) {
	api := &fakeAPI{total: 40, genres: []catalog.GenreOption{{ID: 5, Name: "Horror"}}}
	m := newTestModel(t, api, "/", nil)

	press(m, runes("/"), runes("alien"), enterKey)

	require.Equal(t, browse.ModeSearch, m.home.ctrl.Mode())
	assert.Len(t, m.home.grid.Items(), browse.SearchPageSize)
	assert.Contains(t, m.View(), "Filters:")

	queries, _, _ := api.snapshot()
	require.Len(t, queries, 2)
	require.NotNil(t, queries[1].SearchText)
	assert.Equal(t, "alien", *queries[1].SearchText)
	assert.Equal(t, browse.SearchPageSize, queries[1].PageSize)

	// walking down the grid reaches the bottom sentinel and loads the rest
	for i := 0; i < 20; i++ {
		press(m, downKey)
	}
	queries, _, _ = api.snapshot()
	require.Len(t, queries, 3)
	assert.Equal(t, browse.SearchPageSize, queries[2].Offset)
	assert.Len(t, m.home.grid.Items(), 40)
	assert.False(t, m.home.ctrl.HasMore())

	// release year picker: first entry is "All years", the next is last year
	press(m, runes("y"), downKey, enterKey)
	assert.Equal(t, 2025, m.home.ctrl.Filters().ReleaseYear)
	queries, _, _ = api.snapshot()
	var filtered []catalog.BrowseQuery
	for _, q := range queries {
		if q.ReleaseYear != nil {
			filtered = append(filtered, q)
		}
	}
	require.NotEmpty(t, filtered)
	assert.Equal(t, 2025, *filtered[0].ReleaseYear)
	assert.Zero(t, filtered[0].Offset)

	press(m, runes("g"), downKey, enterKey)
	assert.Equal(t, 5, m.home.ctrl.Filters().GenreID)
	assert.Contains(t, m.View(), "Horror")

	// clearing the input leaves search mode
	press(m, runes("/"))
	for i := 0; i < len("alien"); i++ {
		press(m, bsKey)
	}
	assert.Equal(t, browse.ModeBrowse, m.home.ctrl.Mode())
	assert.Equal(t, browse.Filters{}, m.home.ctrl.Filters())
	assert.Contains(t, m.View(), headline)
}

func TestBlankSearchSubmitGoesHome(t *testing.T) {
	api := &fakeAPI{total: 10}
	m := newTestModel(t, api, "/movie/42", nil)
	require.Equal(t, RouteTitle, m.Route().Kind)

	press(m, runes("/"), runes("   "), enterKey)
	assert.Equal(t, RouteHome, m.Route().Kind)
	assert.Equal(t, browse.ModeBrowse, m.home.ctrl.Mode())
}

func TestInvalidDetailRouteRedirects(t *testing.T) {
	for _, path := range []string{"/movie/0", "/movie/-5", "/movie/abc", "/contributor/abc", "/movie"} {
		t.Run(path, func(t *testing.T) {
			api := &fakeAPI{total: 10}
			m := newTestModel(t, api, path, nil)

			_, titles, contributors := api.snapshot()
			assert.Empty(t, titles)
			assert.Empty(t, contributors)
			assert.Equal(t, RouteHome, m.Route().Kind)
			assert.Equal(t, "/", m.Path())
			assert.Zero(t, m.router.Depth())
		})
	}
}

func TestTitleAndContributorNavigation(t *testing.T) {
	api := &fakeAPI{total: 10}
	m := newTestModel(t, api, "/movie/42", nil)

	_, titles, _ := api.snapshot()
	assert.Equal(t, []int{42}, titles)

	view := m.View()
	assert.Contains(t, view, "Heat")
	assert.Contains(t, view, "Crime, Drama")
	assert.Contains(t, view, "Contributors")
	assert.Contains(t, view, "Michael Mann")
	assert.Contains(t, view, "[h] home")

	press(m, enterKey)
	assert.Equal(t, RouteContributor, m.Route().Kind)
	assert.Equal(t, "/contributor/3", m.Path())

	_, _, contributors := api.snapshot()
	assert.Equal(t, []int{3}, contributors)
	assert.Contains(t, m.View(), "Contributions: director, writer")
	assert.Contains(t, m.View(), "Movies worked on")

	press(m, escKey)
	assert.Equal(t, "/movie/42", m.Path())
	assert.Equal(t, RouteTitle, m.Route().Kind)

	press(m, runes("h"))
	assert.Equal(t, RouteHome, m.Route().Kind)
}

func TestThemeTogglePersists(t *testing.T) {
	store := settings.NewMemoryStore()
	m := newTestModel(t, &fakeAPI{total: 10}, "", store)
	assert.Equal(t, settings.ThemeLight, m.Theme())

	press(m, runes("t"))
	assert.Equal(t, settings.ThemeDark, m.Theme())
	assert.Equal(t, settings.ThemeDark, settings.LoadTheme(store))

	// a new model picks the stored preference up
	again := newTestModel(t, &fakeAPI{total: 10}, "", store)
	assert.Equal(t, settings.ThemeDark, again.Theme())

	press(again, runes("t"))
	assert.Equal(t, settings.ThemeLight, settings.LoadTheme(store))
}

func TestThemeSaveFailureIsReported(t *testing.T) {
	m := newTestModel(t, &fakeAPI{total: 10}, "", failingStore{})

	press(m, runes("t"))
	assert.Equal(t, settings.ThemeDark, m.Theme())
	assert.Contains(t, m.View(), "Theme not saved: save theme: disk full")
}

func TestGenrePickerWithoutGenres(t *testing.T) {
	m := newTestModel(t, &fakeAPI{total: 10}, "", nil)
	press(m, runes("/"), runes("heat"), enterKey)

	press(m, runes("g"))
	assert.Nil(t, m.picker)
	assert.Contains(t, m.View(), "No genres available.")
}

func TestStaleBrowseMessageIgnored(t *testing.T) {
	api := &fakeAPI{total: 100}
	m := newTestModel(t, api, "", nil)

	var stale browse.Ticket
	for _, t := range m.home.ctrl.SetSearchText("alien") {
		if t.Kind == browse.KindReset {
			stale = t
		}
	}
	newer := m.home.ctrl.SetSearchText("aliens")
	drain(m, fetchBrowse(context.Background(), api, newer...))
	items := m.home.grid.Items()

	_, cmd := m.Update(browseMsg{result: browse.Fetch(context.Background(), api, stale)})
	assert.Nil(t, cmd)
	assert.Equal(t, items, m.home.grid.Items())
}
