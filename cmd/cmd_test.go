package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/marquee/browse"
	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/config"
	"github.com/s0up4200/marquee/settings"
)

// catalogServer serves total titles from /browse and records every query string
type catalogServer struct {
	mu      sync.Mutex
	total   int
	queries []string
}

func (s *catalogServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/browse", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.queries = append(s.queries, r.URL.RawQuery)
		s.mu.Unlock()

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

		page := catalog.BrowsePage{Offset: offset, PageSize: size, Results: []catalog.Title{}}
		for i := offset; i < offset+size && i < s.total; i++ {
			year := 1970 + i
			page.Results = append(page.Results, catalog.Title{ID: i + 1, Name: fmt.Sprintf("Title %d", i+1), ReleaseYear: &year})
		}
		assert.NoError(t, json.NewEncoder(w).Encode(page))
	})
	mux.HandleFunc("/browse/genres", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["Action", "Drama"]`))
	})
	return mux
}

func newTestClient(t *testing.T, s *catalogServer) *catalog.Client {
	t.Helper()
	server := httptest.NewServer(s.handler(t))
	t.Cleanup(server.Close)

	c, err := catalog.NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestCollectTitles(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		opts        searchOptions
		wantTitles  int
		wantQueries []string
	}{
		{
			name:        "browse mode fetches one page",
			total:       100,
			opts:        searchOptions{Pages: 0},
			wantTitles:  browse.DefaultPageSize,
			wantQueries: []string{"offset=0&page_size=40"},
		},
		{
			name:        "search stops at the page limit",
			total:       100,
			opts:        searchOptions{Text: "alien", Pages: 2},
			wantTitles:  2 * browse.SearchPageSize,
			wantQueries: []string{"offset=0&page_size=28&search_text=alien", "offset=28&page_size=28&search_text=alien"},
		},
		{
			name:       "all pages stop on a short page",
			total:      60,
			opts:       searchOptions{Text: "alien", ReleaseYear: 1979, GenreID: 2},
			wantTitles: 60,
			wantQueries: []string{
				"genre=2&offset=0&page_size=28&release_year=1979&search_text=alien",
				"genre=2&offset=28&page_size=28&release_year=1979&search_text=alien",
				"genre=2&offset=56&page_size=28&release_year=1979&search_text=alien",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &catalogServer{total: tt.total}
			c := newTestClient(t, s)

			titles, err := collectTitles(context.Background(), c, zerolog.Nop(), tt.opts)
			require.NoError(t, err)
			assert.Len(t, titles, tt.wantTitles)
			assert.Equal(t, tt.wantQueries, s.queries)
		})
	}
}

func TestCollectTitlesRejectsFiltersWithoutText(t *testing.T) {
	s := &catalogServer{total: 10}
	c := newTestClient(t, s)

	_, err := collectTitles(context.Background(), c, zerolog.Nop(), searchOptions{ReleaseYear: 1999})
	assert.Error(t, err)
	assert.Empty(t, s.queries)

	_, err = collectTitles(context.Background(), c, zerolog.Nop(), searchOptions{Text: "   ", GenreID: 3})
	assert.Error(t, err)
	assert.Empty(t, s.queries)

	_, err = collectTitles(context.Background(), c, zerolog.Nop(), searchOptions{Text: "x", Pages: -1})
	assert.Error(t, err)
}

func TestCollectTitlesTrimsText(t *testing.T) {
	s := &catalogServer{total: 5}
	c := newTestClient(t, s)

	titles, err := collectTitles(context.Background(), c, zerolog.Nop(), searchOptions{Text: "  alien  ", ReleaseYear: 1979})
	require.NoError(t, err)
	assert.Len(t, titles, 5)
	assert.Equal(t, []string{"offset=0&page_size=28&release_year=1979&search_text=alien"}, s.queries)
}

func TestCollectTitlesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c, err := catalog.NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	_, err = collectTitles(context.Background(), c, zerolog.Nop(), searchOptions{Text: "alien"})
	var reqErr *catalog.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.True(t, reqErr.IsServerError())
}

func TestProbe(t *testing.T) {
	c := newTestClient(t, &catalogServer{total: 12})

	stats, err := probe(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, probeStats{genres: 2, titles: 12}, stats)
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", "42"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 42}, ids)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		t.Run(bad, func(t *testing.T) {
			_, err := parseIDs([]string{"1", bad})
			assert.ErrorIs(t, err, catalog.ErrInvalidID)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(name))
		})
	}
}

func TestSetupLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := setupLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	l.Info().Msg("hidden")
	l.Warn().Str("resource", "browse").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "browse", entry["resource"])
	assert.Equal(t, "warn", entry["level"])
}

func TestSetupTUILoggerWithoutFile(t *testing.T) {
	l, closer := setupTUILogger(config.LoggingConfig{Level: "debug"})
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestApplyTheme(t *testing.T) {
	store := settings.NewMemoryStore()

	theme, err := applyTheme(store, nil)
	require.NoError(t, err)
	assert.Equal(t, settings.ThemeLight, theme)

	theme, err = applyTheme(store, []string{"toggle"})
	require.NoError(t, err)
	assert.Equal(t, settings.ThemeDark, theme)
	assert.Equal(t, settings.ThemeDark, settings.LoadTheme(store))

	theme, err = applyTheme(store, []string{"light"})
	require.NoError(t, err)
	assert.Equal(t, settings.ThemeLight, theme)
	assert.Equal(t, settings.ThemeLight, settings.LoadTheme(store))

	_, err = applyTheme(store, []string{"sepia"})
	assert.Error(t, err)
}
