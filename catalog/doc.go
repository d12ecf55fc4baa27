// Package catalog provides a client for the remote movie catalog API.
//
// The catalog API exposes four read-only endpoints relative to a single base URL:
//
//   - GET /browse: paginated, filterable title listing
//   - GET /browse/genres: genre options for the search filters
//   - GET /title/{id}: a title with its genres and contributors
//   - GET /contributor/{id}: a contributor with the titles they worked on
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := catalog.NewClient(
//		"http://localhost:8000/",
//		logger,
//		catalog.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	text := "alien"
//	page, err := client.BrowseTitles(ctx, catalog.BrowseQuery{
//		SearchText: &text,
//		PageSize:   28,
//	})
//
// # Error Handling
//
// Every call is a single GET with no retries and no caching. Failures are reported as:
//
//   - RequestError: the server answered with a non-2xx status, or the request never completed
//   - DecodeError: the body was not valid JSON of the expected shape
//   - ErrInvalidID / ErrInvalidQuery: rejected locally, no request was sent
//
// Use errors.As to classify:
//
//	var reqErr *catalog.RequestError
//	if errors.As(err, &reqErr) && reqErr.IsNotFound() {
//		// Handle missing entity
//	}
package catalog
