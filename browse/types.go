package browse

import (
	"context"
	"time"

	"github.com/s0up4200/marquee/catalog"
)

const (
	// DefaultPageSize is the single page fetched in browse mode
	DefaultPageSize = 40
	// SearchPageSize is the page size used while paginating search results
	SearchPageSize = 28
	// StripLimit caps the number of titles shown in the browse strip
	StripLimit = 14
	// MinReleaseYear is the oldest selectable release year
	MinReleaseYear = 1800
)

// Mode is derived from the search text
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "browse"
}

// Status is the primary data state of the controller
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Filters is the user-controlled input of a query. Zero GenreID or ReleaseYear means unfiltered.
type Filters struct {
	SearchText  string
	GenreID     int
	ReleaseYear int
}

// Mode reports which mode the filters select
func (f Filters) Mode() Mode {
	if f.SearchText != "" {
		return ModeSearch
	}
	return ModeBrowse
}

// Kind identifies what a ticket fetches
type Kind int

const (
	KindReset Kind = iota
	KindMore
	KindGenres
)

func (k Kind) String() string {
	switch k {
	case KindMore:
		return "more"
	case KindGenres:
		return "genres"
	default:
		return "reset"
	}
}

// Ticket describes one request issued by the controller.
// Generation and Filters are the snapshot Apply compares against current state.
type Ticket struct {
	Kind       Kind
	Generation uint64
	Filters    Filters
	Query      catalog.BrowseQuery
}

// Result is the outcome of running a ticket
type Result struct {
	Ticket Ticket
	Page   *catalog.BrowsePage
	Genres []catalog.GenreOption
	Err    error
}

// Fetcher is the part of the catalog API the controller needs
type Fetcher interface {
	BrowseTitles(ctx context.Context, query catalog.BrowseQuery) (*catalog.BrowsePage, error)
	BrowseGenres(ctx context.Context) ([]catalog.GenreOption, error)
}

// Fetch runs a ticket. It touches no controller state and is safe to call from any goroutine.
func Fetch(ctx context.Context, f Fetcher, t Ticket) Result {
	res := Result{Ticket: t}
	switch t.Kind {
	case KindGenres:
		res.Genres, res.Err = f.BrowseGenres(ctx)
	default:
		res.Page, res.Err = f.BrowseTitles(ctx, t.Query)
	}
	return res
}

// ReleaseYearOptions lists selectable release years, newest first, starting the year before now
func ReleaseYearOptions(now time.Time) []int {
	first := now.Year() - 1
	if first < MinReleaseYear {
		return nil
	}
	years := make([]int, 0, first-MinReleaseYear+1)
	for y := first; y >= MinReleaseYear; y-- {
		years = append(years, y)
	}
	return years
}
