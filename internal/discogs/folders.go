package discogs

import (
	"context"
	"fmt"
	"net/url"
)

// Folders lists a user's collection folders, including the built-in
// "All" (id 0) and "Uncategorized" (id 1) folders.
func (c *Client) Folders(ctx context.Context, username string) ([]Folder, error) {
	endpoint := fmt.Sprintf("%s/users/%s/collection/folders", c.baseURL, url.PathEscape(username))

	var resp FoldersResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to list collection folders: %w", err)
	}
	return resp.Folders, nil
}
