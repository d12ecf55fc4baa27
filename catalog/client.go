package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "marquee"
	maxErrorBody     = 4 << 10
)

// Client represents a catalog API client
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// NewClient creates a new catalog client.
// Endpoint paths resolve relative to baseURL, which must be an absolute http(s) URL.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("%w: catalog URL is required", ErrInvalidConfig)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: catalog URL must be absolute http(s), got %q", ErrInvalidConfig, baseURL)
	}

	// Relative resolution drops the last path segment unless it ends with a slash
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	options := clientOptions{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		userAgent:  options.userAgent,
		logger:     logger,
	}, nil
}

// BaseURL returns the resolved base endpoint
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// BrowseTitles fetches one page of titles. Only the provided query fields are sent.
func (c *Client) BrowseTitles(ctx context.Context, query BrowseQuery) (*BrowsePage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, ResourceBrowse, "browse", query.Values())
	if err != nil {
		return nil, err
	}

	var page BrowsePage
	if err := decodeObject(body, &page); err != nil {
		return nil, &DecodeError{Resource: ResourceBrowse, Err: err}
	}

	c.logger.Debug().
		Int("offset", query.Offset).
		Int("page_size", query.PageSize).
		Int("count", len(page.Results)).
		Msg("Retrieved browse page")

	return &page, nil
}

// BrowseGenres fetches the genre filter options
func (c *Client) BrowseGenres(ctx context.Context) ([]GenreOption, error) {
	body, err := c.get(ctx, ResourceGenres, "browse/genres", nil)
	if err != nil {
		return nil, err
	}

	genres, err := normalizeGenres(body)
	if err != nil {
		return nil, &DecodeError{Resource: ResourceGenres, Err: err}
	}

	c.logger.Debug().Int("count", len(genres)).Msg("Retrieved genre options")
	return genres, nil
}

// GetTitleDetails fetches a title with its genres and contributors
func (c *Client) GetTitleDetails(ctx context.Context, id int) (*TitleDetails, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: title %d", ErrInvalidID, id)
	}

	body, err := c.get(ctx, ResourceTitle, "title/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var details TitleDetails
	if err := decodeObject(body, &details); err != nil {
		return nil, &DecodeError{Resource: ResourceTitle, Err: err}
	}

	c.logger.Debug().Int("title_id", id).Int("contributors", len(details.Contributors)).Msg("Retrieved title details")
	return &details, nil
}

// GetContributorDetails fetches a contributor with the titles they worked on
func (c *Client) GetContributorDetails(ctx context.Context, id int) (*ContributorDetails, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: contributor %d", ErrInvalidID, id)
	}

	body, err := c.get(ctx, ResourceContributor, "contributor/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var details ContributorDetails
	if err := decodeObject(body, &details); err != nil {
		return nil, &DecodeError{Resource: ResourceContributor, Err: err}
	}

	c.logger.Debug().Int("contributor_id", id).Int("titles", len(details.Titles)).Msg("Retrieved contributor details")
	return &details, nil
}

// get performs a GET request against a path relative to the base URL
func (c *Client) get(ctx context.Context, resource, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path})
	if len(params) > 0 {
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &RequestError{Resource: resource, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().Str("url", endpoint.String()).Msg("Making catalog API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Debug().
			Str("resource", resource).
			Int("status", resp.StatusCode).
			Msg("Catalog API returned unsuccessful status")
		return nil, &RequestError{
			Resource:   resource,
			StatusCode: resp.StatusCode,
			Body:       string(snippet),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Resource: resource, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return body, nil
}

// decodeObject decodes a JSON object body, rejecting null and non-object payloads
func decodeObject(body []byte, out any) error {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "{") {
		return fmt.Errorf("expected JSON object")
	}
	return json.Unmarshal(body, out)
}
