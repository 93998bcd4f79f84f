package directory

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/custodia-labs/dirctl/internal/core/domain"
)

// UserListOptions are the optional query parameters recognised by
// GetAllUsers. Zero-valued fields are omitted from the URL.
type UserListOptions struct {
	CustomFieldMask string
	Customer        string
	OrderBy         string
	Query           string
	SortOrder       string
	ViewType        string
}

// apply sets only the supplied options on q.
func (o *UserListOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("customFieldMask", o.CustomFieldMask)
	set("customer", o.Customer)
	set("orderBy", o.OrderBy)
	set("query", o.Query)
	set("sortOrder", o.SortOrder)
	set("viewType", o.ViewType)
}

// GetUser fetches a single user by primary email address.
func (c *Client) GetUser(ctx context.Context, email string) (*Result, error) {
	if email == "" {
		return nil, domain.MissingParameter("email")
	}
	u := c.directoryBase + "/users/" + url.PathEscape(email)
	return c.do(ctx, apiRequest{method: http.MethodGet, url: u})
}

// GetAllUsers lists every user in the domain, paginated at 500 per page.
func (c *Client) GetAllUsers(ctx context.Context, opts *UserListOptions) ([]Page, error) {
	return c.collectPages(ctx, func(ctx context.Context, pageToken string) (*Result, error) {
		q := url.Values{}
		q.Set("domain", c.cfg.Domain)
		q.Set("maxResults", strconv.Itoa(usersPageSize))
		opts.apply(q)
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		return c.do(ctx, apiRequest{
			method: http.MethodGet,
			url:    c.directoryBase + "/users?" + q.Encode(),
		})
	})
}
