package directory

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/custodia-labs/dirctl/internal/core/domain"
)

// memberURL builds /groups/{group}/members[/{member}].
func (c *Client) memberURL(group, member string) string {
	u := c.directoryBase + "/groups/" + url.PathEscape(group) + "/members"
	if member != "" {
		u += "/" + url.PathEscape(member)
	}
	return u
}

// GetAllMembers lists a group's members, paginated at 200 per page.
func (c *Client) GetAllMembers(ctx context.Context, group string) ([]Page, error) {
	if group == "" {
		return nil, domain.MissingParameter("group")
	}
	return c.collectPages(ctx, func(ctx context.Context, pageToken string) (*Result, error) {
		q := url.Values{}
		q.Set("maxResults", strconv.Itoa(membersPageSize))
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		return c.do(ctx, apiRequest{
			method: http.MethodGet,
			url:    c.memberURL(group, "") + "?" + q.Encode(),
		})
	})
}

// GetMember fetches a single membership entry.
func (c *Client) GetMember(ctx context.Context, group, member string) (*Result, error) {
	if group == "" {
		return nil, domain.MissingParameter("group")
	}
	if member == "" {
		return nil, domain.MissingParameter("member")
	}
	return c.do(ctx, apiRequest{method: http.MethodGet, url: c.memberURL(group, member)})
}

// AddMemberToGroup adds email to group with the given role.
func (c *Client) AddMemberToGroup(ctx context.Context, group, email, role string) (*Result, error) {
	if group == "" {
		return nil, domain.MissingParameter("group")
	}
	if email == "" {
		return nil, domain.MissingParameter("email")
	}
	if role == "" {
		return nil, domain.MissingParameter("role")
	}
	return c.do(ctx, apiRequest{
		method: http.MethodPost,
		url:    c.memberURL(group, ""),
		body:   map[string]string{"role": role, "email": email},
	})
}

// UpdateMembership changes a member's role within a group.
func (c *Client) UpdateMembership(ctx context.Context, group, member, role string) (*Result, error) {
	if group == "" {
		return nil, domain.MissingParameter("group")
	}
	if member == "" {
		return nil, domain.MissingParameter("member")
	}
	if role == "" {
		return nil, domain.MissingParameter("role")
	}
	return c.do(ctx, apiRequest{
		method: http.MethodPut,
		url:    c.memberURL(group, member),
		body:   map[string]string{"role": role},
	})
}

// DeleteMemberFromGroup removes a member from a group. Reports true when
// the API acknowledged with 204 No Content.
func (c *Client) DeleteMemberFromGroup(ctx context.Context, group, member string) (bool, error) {
	if group == "" {
		return false, domain.MissingParameter("group")
	}
	if member == "" {
		return false, domain.MissingParameter("member")
	}

	res, err := c.do(ctx, apiRequest{method: http.MethodDelete, url: c.memberURL(group, member)})
	if err != nil {
		return false, err
	}
	return res.NoContent, nil
}
