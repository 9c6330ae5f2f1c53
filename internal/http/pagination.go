package http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// FetchPaginated retrieves every item of a server-side paginated listing as
// one in-memory slice, preserving server order. Pages are addressed with
// start/limit offset parameters; extra holds additional filter parameters
// merged into every page request.
//
// The total request count is fixed from the first page's count field. The
// server gives no consistency guarantee across pages: if the total changes
// mid-fetch (for example after a dataset reload), the result length is
// undefined.
func (c *Client) FetchPaginated(ctx context.Context, path string, pageSize int, extra url.Values, headers map[string]string) ([]interface{}, error) {
	page, err := c.fetchPage(ctx, path, 0, pageSize, extra, headers)
	if err != nil {
		return nil, err
	}

	// First page already holds everything.
	if page.Count < pageSize {
		return page.Data, nil
	}

	requests := page.Count/pageSize + 1

	results := page.Data
	for i := 1; i < requests; i++ {
		page, err = c.fetchPage(ctx, path, i*pageSize, pageSize, extra, headers)
		if err != nil {
			return nil, err
		}

		results = append(results, page.Data...)
	}

	return results, nil
}

func (c *Client) fetchPage(ctx context.Context, path string, start, limit int, extra url.Values, headers map[string]string) (*riskapi.PagedResponse, error) {
	params := url.Values{}
	params.Set("start", strconv.Itoa(start))
	params.Set("limit", strconv.Itoa(limit))

	for key, values := range extra {
		params[key] = values
	}

	resp, err := c.Get(ctx, path, params, headers)
	if err != nil {
		return nil, err
	}

	var page riskapi.PagedResponse

	err = resp.Decode(&page)
	if err != nil {
		return nil, fmt.Errorf("decoding page at start=%d: %w", start, err)
	}

	return &page, nil
}
