package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Title represents a catalog title
type Title struct {
	ID                  int     `json:"id"`
	ExternalReferenceID *string `json:"imdb_reference_id"`
	Name                string  `json:"title"`
	ReleaseYear         *int    `json:"release_year"`
	MediaType           string  `json:"media_type"`
}

// ItemID returns the title identifier
func (t Title) ItemID() int {
	return t.ID
}

// Year returns the release year, or zero when unknown
func (t Title) Year() int {
	if t.ReleaseYear == nil {
		return 0
	}
	return *t.ReleaseYear
}

// ReferenceID returns the external reference identifier, or an empty string
func (t Title) ReferenceID() string {
	if t.ExternalReferenceID == nil {
		return ""
	}
	return *t.ExternalReferenceID
}

// Contributor represents a person credited on a title
type Contributor struct {
	ID                  int      `json:"id"`
	ExternalReferenceID *string  `json:"imdb_reference_id"`
	Name                string   `json:"name"`
	Roles               []string `json:"roles"`
}

// ItemID returns the contributor identifier
func (c Contributor) ItemID() int {
	return c.ID
}

// TitleDetails is a title with its genres and contributors
type TitleDetails struct {
	Title
	Genres       []string      `json:"genres"`
	Contributors []Contributor `json:"contributors"`
}

// ContributorTitle is a title a contributor worked on, with their roles on it
type ContributorTitle struct {
	Title
	Roles []string `json:"roles"`
}

// ContributorDetails is a contributor with the titles they worked on
type ContributorDetails struct {
	ID                  int                `json:"id"`
	ExternalReferenceID *string            `json:"imdb_reference_id"`
	Name                string             `json:"name"`
	Titles              []ContributorTitle `json:"titles"`
}

// BrowseQuery holds the parameters of a browse request.
// Nil pointers and blank search text are omitted from the request entirely.
type BrowseQuery struct {
	SearchText  *string
	ReleaseYear *int
	// LegacyReleaseYear is the alternate spelling accepted by older callers.
	// It is only used when ReleaseYear is nil.
	LegacyReleaseYear *int
	GenreID           *int
	Offset            int
	// PageSize is omitted when zero so the server applies its default.
	PageSize int
}

// Validate checks the query can be sent
func (q BrowseQuery) Validate() error {
	if q.Offset < 0 {
		return fmt.Errorf("%w: offset %d is negative", ErrInvalidQuery, q.Offset)
	}
	if q.PageSize < 0 {
		return fmt.Errorf("%w: page size %d is negative", ErrInvalidQuery, q.PageSize)
	}
	return nil
}

// Values returns the query parameters for the provided fields only
func (q BrowseQuery) Values() url.Values {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(q.Offset))
	if q.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.SearchText != nil && strings.TrimSpace(*q.SearchText) != "" {
		params.Set("search_text", *q.SearchText)
	}
	if year := q.releaseYear(); year != nil {
		params.Set("release_year", strconv.Itoa(*year))
	}
	if q.GenreID != nil {
		params.Set("genre", strconv.Itoa(*q.GenreID))
	}
	return params
}

func (q BrowseQuery) releaseYear() *int {
	if q.ReleaseYear != nil {
		return q.ReleaseYear
	}
	return q.LegacyReleaseYear
}

// BrowsePage is one page of browse results
type BrowsePage struct {
	Offset   int     `json:"offset"`
	PageSize int     `json:"page_size"`
	Results  []Title `json:"results"`
}

// Full reports whether the page holds exactly the requested number of results.
// The API has no total count, so a full page is the only hint that more may exist.
func (p *BrowsePage) Full(requested int) bool {
	return requested > 0 && len(p.Results) == requested
}

// GenreOption is a selectable genre filter.
// IDs synthesized from bare names are positional and must not be persisted.
type GenreOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ItemID returns the genre identifier
func (g GenreOption) ItemID() int {
	return g.ID
}

// normalizeGenres decodes a genre payload where each element is either a bare
// name or an {id, name} object. Bare names get their 1-based position as id.
func normalizeGenres(data []byte) ([]GenreOption, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	options := make([]GenreOption, 0, len(raw))
	for i, element := range raw {
		element = bytes.TrimSpace(element)
		if len(element) > 0 && element[0] == '"' {
			var name string
			if err := json.Unmarshal(element, &name); err != nil {
				return nil, fmt.Errorf("genre %d: %w", i, err)
			}
			options = append(options, GenreOption{ID: i + 1, Name: name})
			continue
		}

		var option GenreOption
		if err := json.Unmarshal(element, &option); err != nil {
			return nil, fmt.Errorf("genre %d: %w", i, err)
		}
		options = append(options, option)
	}
	return options, nil
}
