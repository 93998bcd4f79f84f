package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/dirctl/internal/core/domain"
)

// Page is one whole page of a list response; pages are accumulated as
// returned, not flattened into one result array.
type Page map[string]any

// maxPages bounds pagination so a server that never stops returning a
// nextPageToken cannot loop the client forever.
const maxPages = 1000

// ErrTooManyPages indicates pagination hit the page bound.
var ErrTooManyPages = errors.New("directory: pagination exceeded page limit")

// collectPages drives a list endpoint to exhaustion. Each iteration
// carries the previous response's nextPageToken; the loop ends when a
// response omits the token, the context is cancelled, or the bound hits.
func (c *Client) collectPages(
	ctx context.Context,
	fetch func(ctx context.Context, pageToken string) (*Result, error),
) ([]Page, error) {
	var pages []Page
	var token string

	for range maxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := fetch(ctx, token)
		if err != nil {
			return nil, err
		}
		if res.Object == nil {
			return nil, fmt.Errorf("%w: list response was not a JSON object", domain.ErrTransport)
		}

		pages = append(pages, Page(res.Object))

		next, _ := res.Object["nextPageToken"].(string)
		if next == "" {
			return pages, nil
		}
		token = next
	}

	return nil, ErrTooManyPages
}
