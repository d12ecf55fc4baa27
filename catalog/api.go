package catalog

import (
	"context"
)

// API defines the catalog operations consumed by the browser
type API interface {
	// BrowseTitles fetches one page of titles matching the query
	BrowseTitles(ctx context.Context, query BrowseQuery) (*BrowsePage, error)

	// BrowseGenres fetches the genre options used by the search filters
	BrowseGenres(ctx context.Context) ([]GenreOption, error)

	// GetTitleDetails fetches a title with its genres and contributors
	GetTitleDetails(ctx context.Context, id int) (*TitleDetails, error)

	// GetContributorDetails fetches a contributor with their titles
	GetContributorDetails(ctx context.Context, id int) (*ContributorDetails, error)
}

var _ API = (*Client)(nil)
