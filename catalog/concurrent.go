package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MaxConcurrency bounds parallel detail requests in batch fetches
const MaxConcurrency = 4

// GetTitleDetailsBatch fetches several titles concurrently. Results keep the order of ids.
func (c *Client) GetTitleDetailsBatch(ctx context.Context, ids []int) ([]*TitleDetails, error) {
	return fetchAll(ctx, ids, c.GetTitleDetails)
}

// GetContributorDetailsBatch fetches several contributors concurrently. Results keep the order of ids.
func (c *Client) GetContributorDetailsBatch(ctx context.Context, ids []int) ([]*ContributorDetails, error) {
	return fetchAll(ctx, ids, c.GetContributorDetails)
}

// fetchAll runs fetch for every id with bounded concurrency; the first error cancels the rest
func fetchAll[T any](ctx context.Context, ids []int, fetch func(context.Context, int) (*T, error)) ([]*T, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	results := make([]*T, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			item, err := fetch(ctx, id)
			if err != nil {
				return err
			}
			// Each goroutine owns its own index
			results[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
