package discogs

import (
	"context"
	"fmt"
)

// ReleasePriceStats fetches marketplace stats for a release. The lowest
// price is nil when no copies are listed for sale.
func (c *Client) ReleasePriceStats(ctx context.Context, releaseID int) (*PriceStats, error) {
	endpoint := fmt.Sprintf("%s/marketplace/stats/%d", c.baseURL, releaseID)

	var stats PriceStats
	if err := c.getJSON(ctx, endpoint, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch price stats for release %d: %w", releaseID, err)
	}
	return &stats, nil
}
