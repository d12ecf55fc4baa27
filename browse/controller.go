package browse

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/marquee/catalog"
)

// Controller tracks query filters, accumulated titles and pagination for one home screen.
// It is not safe for concurrent use; drive it from a single goroutine.
type Controller struct {
	logger zerolog.Logger

	filters    Filters
	generation uint64
	started    bool

	status  Status
	titles  []catalog.Title
	err     error
	moreErr error

	pageSize    int
	nextOffset  int
	hasMore     bool
	loadingMore bool

	genres          []catalog.GenreOption
	genreGeneration uint64
}

// NewController creates a controller in browse mode. Call Start to issue the first fetch.
func NewController(logger zerolog.Logger) *Controller {
	return &Controller{
		logger:   logger.With().Str("component", "browse").Logger(),
		pageSize: DefaultPageSize,
	}
}

// Start issues the initial fetch for the current filters. Later calls return nothing.
func (c *Controller) Start() []Ticket {
	if c.started {
		return nil
	}
	c.started = true

	var tickets []Ticket
	if c.filters.Mode() == ModeSearch {
		tickets = append(tickets, c.enterSearch())
	}
	return append(tickets, c.reset())
}

// Reload refetches the first page for the current filters
func (c *Controller) Reload() []Ticket {
	c.started = true
	return []Ticket{c.reset()}
}

// SetSearchText switches between browse and search mode. Blank text selects browse mode.
// Leaving search mode drops the genre and release year filters along with the genre options.
func (c *Controller) SetSearchText(text string) []Ticket {
	text = strings.TrimSpace(text)
	if c.started && text == c.filters.SearchText {
		return nil
	}
	c.started = true

	before := c.filters.Mode()
	c.filters.SearchText = text

	var tickets []Ticket
	switch after := c.filters.Mode(); {
	case before == ModeBrowse && after == ModeSearch:
		tickets = append(tickets, c.enterSearch())
	case before == ModeSearch && after == ModeBrowse:
		c.leaveSearch()
	}

	return append(tickets, c.reset())
}

// SetGenre selects a genre filter; zero clears it. Only applies in search mode.
func (c *Controller) SetGenre(id int) []Ticket {
	if id < 0 {
		id = 0
	}
	if c.filters.Mode() != ModeSearch || id == c.filters.GenreID {
		return nil
	}
	c.filters.GenreID = id
	return []Ticket{c.reset()}
}

// SetReleaseYear selects a release year filter; zero clears it. Only applies in search mode.
func (c *Controller) SetReleaseYear(year int) []Ticket {
	if year < 0 {
		year = 0
	}
	if c.filters.Mode() != ModeSearch || year == c.filters.ReleaseYear {
		return nil
	}
	c.filters.ReleaseYear = year
	return []Ticket{c.reset()}
}

// LoadMore issues the next page request. It reports false when not in search mode,
// when the last page was not full, or while any page request is still in flight.
func (c *Controller) LoadMore() (Ticket, bool) {
	if c.filters.Mode() != ModeSearch || !c.hasMore || c.loadingMore || c.status != StatusLoaded {
		return Ticket{}, false
	}

	c.loadingMore = true
	c.moreErr = nil

	return Ticket{
		Kind:       KindMore,
		Generation: c.generation,
		Filters:    c.filters,
		Query:      c.query(c.nextOffset),
	}, true
}

// Apply applies a fetch result if its ticket still matches the current state.
// It reports whether the result was applied; stale results are dropped.
func (c *Controller) Apply(res Result) bool {
	t := res.Ticket

	switch t.Kind {
	case KindGenres:
		if t.Generation != c.genreGeneration || c.filters.Mode() != ModeSearch {
			c.logStale(t)
			return false
		}
		if res.Err != nil {
			c.logger.Debug().Err(res.Err).Msg("Genre options unavailable")
			c.genres = []catalog.GenreOption{}
			return true
		}
		c.genres = res.Genres
		if c.genres == nil {
			c.genres = []catalog.GenreOption{}
		}
		return true

	case KindReset:
		if !c.current(t) || c.status != StatusLoading {
			c.logStale(t)
			return false
		}
		if res.Err != nil {
			c.status = StatusError
			c.err = res.Err
			c.titles = nil
			c.hasMore = false
			return true
		}
		c.status = StatusLoaded
		c.titles = append([]catalog.Title(nil), pageResults(res.Page)...)
		c.advance(t.Query.Offset, res.Page)
		return true

	case KindMore:
		if !c.current(t) || !c.loadingMore || t.Query.Offset != c.nextOffset {
			c.logStale(t)
			return false
		}
		c.loadingMore = false
		if res.Err != nil {
			c.moreErr = res.Err
			c.hasMore = false
			return true
		}
		c.titles = append(c.titles, pageResults(res.Page)...)
		c.advance(t.Query.Offset, res.Page)
		return true
	}

	return false
}

// Mode reports browse or search mode
func (c *Controller) Mode() Mode { return c.filters.Mode() }

// Filters returns the current filters
func (c *Controller) Filters() Filters { return c.filters }

// Status returns the primary data state
func (c *Controller) Status() Status { return c.status }

// Titles returns the accumulated titles
func (c *Controller) Titles() []catalog.Title { return c.titles }

// Err returns the primary load error, if any
func (c *Controller) Err() error { return c.err }

// MoreErr returns the last incremental load error. Titles loaded before it are kept.
func (c *Controller) MoreErr() error { return c.moreErr }

// HasMore reports whether the last page was full
func (c *Controller) HasMore() bool { return c.hasMore }

// LoadingMore reports whether an incremental load is in flight
func (c *Controller) LoadingMore() bool { return c.loadingMore }

// NextOffset is the offset the next incremental load will request
func (c *Controller) NextOffset() int { return c.nextOffset }

// PageSize is the page size of the current mode
func (c *Controller) PageSize() int { return c.pageSize }

// Genres returns the genre options. Nil means not loaded yet; empty means none or unavailable.
func (c *Controller) Genres() []catalog.GenreOption { return c.genres }

// GenreName returns the name of the selected genre, if known
func (c *Controller) GenreName() (string, bool) {
	if c.filters.GenreID == 0 {
		return "", false
	}
	for _, g := range c.genres {
		if g.ID == c.filters.GenreID {
			return g.Name, true
		}
	}
	return "", false
}

func (c *Controller) enterSearch() Ticket {
	c.genreGeneration++
	c.genres = nil
	return Ticket{Kind: KindGenres, Generation: c.genreGeneration, Filters: c.filters}
}

func (c *Controller) leaveSearch() {
	c.genreGeneration++
	c.genres = nil
	c.filters.GenreID = 0
	c.filters.ReleaseYear = 0
}

// reset starts a fresh first-page load and invalidates every outstanding page ticket
func (c *Controller) reset() Ticket {
	c.generation++
	c.status = StatusLoading
	c.titles = nil
	c.err = nil
	c.moreErr = nil
	c.hasMore = false
	c.loadingMore = false
	c.nextOffset = 0

	c.pageSize = DefaultPageSize
	if c.filters.Mode() == ModeSearch {
		c.pageSize = SearchPageSize
	}

	c.logger.Debug().
		Uint64("generation", c.generation).
		Str("mode", c.filters.Mode().String()).
		Str("search_text", c.filters.SearchText).
		Int("genre", c.filters.GenreID).
		Int("release_year", c.filters.ReleaseYear).
		Msg("Resetting browse results")

	return Ticket{
		Kind:       KindReset,
		Generation: c.generation,
		Filters:    c.filters,
		Query:      c.query(0),
	}
}

func (c *Controller) query(offset int) catalog.BrowseQuery {
	q := catalog.BrowseQuery{Offset: offset, PageSize: c.pageSize}
	if c.filters.SearchText != "" {
		text := c.filters.SearchText
		q.SearchText = &text
	}
	if c.filters.GenreID > 0 {
		id := c.filters.GenreID
		q.GenreID = &id
	}
	if c.filters.ReleaseYear > 0 {
		year := c.filters.ReleaseYear
		q.ReleaseYear = &year
	}
	return q
}

// advance applies the fullness heuristic. Browse mode never paginates.
func (c *Controller) advance(offset int, page *catalog.BrowsePage) {
	c.hasMore = c.filters.Mode() == ModeSearch && page != nil && page.Full(c.pageSize)
	if c.hasMore {
		c.nextOffset = offset + c.pageSize
	}
}

func (c *Controller) current(t Ticket) bool {
	return t.Generation == c.generation && t.Filters == c.filters
}

func (c *Controller) logStale(t Ticket) {
	c.logger.Debug().
		Str("kind", t.Kind.String()).
		Uint64("generation", t.Generation).
		Uint64("current", c.generation).
		Msg("Dropping stale result")
}

func pageResults(page *catalog.BrowsePage) []catalog.Title {
	if page == nil {
		return nil
	}
	return page.Results
}
