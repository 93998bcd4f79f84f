package directory

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/custodia-labs/dirctl/internal/core/domain"
)

// GetGroup fetches a single group by email address or id.
func (c *Client) GetGroup(ctx context.Context, group string) (*Result, error) {
	if group == "" {
		return nil, domain.MissingParameter("group")
	}
	u := c.directoryBase + "/groups/" + url.PathEscape(group)
	return c.do(ctx, apiRequest{method: http.MethodGet, url: u})
}

// GetAllGroups lists every group in the domain, paginated at 500 per page.
func (c *Client) GetAllGroups(ctx context.Context) ([]Page, error) {
	return c.collectPages(ctx, func(ctx context.Context, pageToken string) (*Result, error) {
		q := url.Values{}
		q.Set("domain", c.cfg.Domain)
		q.Set("maxResults", strconv.Itoa(groupsPageSize))
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		return c.do(ctx, apiRequest{
			method: http.MethodGet,
			url:    c.directoryBase + "/groups?" + q.Encode(),
		})
	})
}

// GetGroupsForMember lists the groups a user or group belongs to,
// paginated at 500 per page.
func (c *Client) GetGroupsForMember(ctx context.Context, member string) ([]Page, error) {
	if member == "" {
		return nil, domain.MissingParameter("member")
	}
	return c.collectPages(ctx, func(ctx context.Context, pageToken string) (*Result, error) {
		q := url.Values{}
		q.Set("userKey", member)
		q.Set("maxResults", strconv.Itoa(groupsPageSize))
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		return c.do(ctx, apiRequest{
			method: http.MethodGet,
			url:    c.directoryBase + "/groups?" + q.Encode(),
		})
	})
}
