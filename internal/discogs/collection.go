package discogs

import (
	"context"
	"fmt"
	"iter"
	"net/url"

	apperrors "github.com/waxworks/stylus/internal/errors"
)

// AllFolder is the built-in Discogs folder containing the whole collection.
const AllFolder = 0

// CollectionPage fetches a single page of a user's collection folder.
func (c *Client) CollectionPage(ctx context.Context, username string, folder, page, perPage int) (*CollectionResponse, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	if perPage > 0 {
		params.Set("per_page", fmt.Sprintf("%d", perPage))
	}

	endpoint := fmt.Sprintf("%s/users/%s/collection/folders/%d/releases?%s",
		c.baseURL, url.PathEscape(username), folder, params.Encode())

	var resp CollectionResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Collection walks a user's collection folder page by page and yields
// each release in API order. The sequence is restartable: ranging over
// it again re-issues page 1. Pages are fetched strictly sequentially;
// the total page count is taken from the first successful response and
// trusted for the rest of the walk.
//
// On failure the iterator yields a single *errors.FetchError (wrapping
// the underlying cause and carrying how many releases were already
// delivered) and stops.
func (c *Client) Collection(ctx context.Context, username string, folder, perPage int) iter.Seq2[CollectionRelease, error] {
	return func(yield func(CollectionRelease, error) bool) {
		totalPages := 1
		fetched := 0

		for page := 1; page <= totalPages; page++ {
			resp, err := c.CollectionPage(ctx, username, folder, page, perPage)
			if err != nil {
				yield(CollectionRelease{}, &apperrors.FetchError{Page: page, Fetched: fetched, Err: err})
				return
			}
			if resp.Pagination == nil {
				// Contract violation, not a transient fault: do not retry.
				yield(CollectionRelease{}, &apperrors.FetchError{
					Page:    page,
					Fetched: fetched,
					Err:     fmt.Errorf("response for page %d is missing the pagination block", page),
				})
				return
			}

			if page == 1 {
				totalPages = resp.Pagination.Pages
				if c.maxPages > 0 && totalPages > c.maxPages {
					totalPages = c.maxPages
				}
			}

			for _, release := range resp.Releases {
				if !yield(release, nil) {
					return
				}
				fetched++
			}
		}
	}
}

// FetchCollection drains Collection into a slice. On error the releases
// fetched so far are returned alongside the *errors.FetchError.
func (c *Client) FetchCollection(ctx context.Context, username string, folder, perPage int) ([]CollectionRelease, error) {
	var releases []CollectionRelease
	for release, err := range c.Collection(ctx, username, folder, perPage) {
		if err != nil {
			return releases, err
		}
		releases = append(releases, release)
	}
	return releases, nil
}
