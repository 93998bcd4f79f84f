package directory

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"

	"github.com/custodia-labs/dirctl/internal/core/domain"
)

// Admin Settings feed property names.
const (
	propDefaultLanguage    = "defaultLanguage"
	propOrganizationName   = "organizationName"
	propMaxNumberOfUsers   = "maximumNumberOfUsers"
	propCurrentNumberUsers = "currentNumberOfUsers"
)

// feedEntry matches the Admin Settings atom entry shape:
//
//	<entry xmlns='http://www.w3.org/2005/Atom'
//	       xmlns:apps='http://schemas.google.com/apps/2006'>
//	  <apps:property name='defaultLanguage' value='en-US'/>
//	</entry>
type feedEntry struct {
	Properties []struct {
		Name  string `xml:"name,attr"`
		Value string `xml:"value,attr"`
	} `xml:"property"`
}

// parseFeedProperties extracts name/value pairs from an atom feed entry.
func parseFeedProperties(body []byte) (map[string]string, error) {
	var entry feedEntry
	if err := xml.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("%w: decode atom feed: %v", domain.ErrTransport, err)
	}

	props := make(map[string]string, len(entry.Properties))
	for _, p := range entry.Properties {
		props[p.Name] = p.Value
	}
	return props, nil
}

// getProperty fetches one Admin Settings feed property for the domain.
func (c *Client) getProperty(ctx context.Context, name string) (string, error) {
	u := c.feedsBase + "/" + c.cfg.Domain + "/general/" + name
	res, err := c.do(ctx, apiRequest{method: http.MethodGet, url: u})
	if err != nil {
		return "", err
	}

	if v, ok := res.Properties[name]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: property %q missing from feed response", domain.ErrTransport, name)
}

// getIntProperty fetches a numeric feed property.
func (c *Client) getIntProperty(ctx context.Context, name string) (int, error) {
	v, err := c.getProperty(ctx, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: property %q is not a number: %v", domain.ErrTransport, name, err)
	}
	return n, nil
}

// GetDefaultLanguage returns the domain's default language code.
func (c *Client) GetDefaultLanguage(ctx context.Context) (string, error) {
	return c.getProperty(ctx, propDefaultLanguage)
}

// GetOrganizationName returns the domain's organisation name.
func (c *Client) GetOrganizationName(ctx context.Context) (string, error) {
	return c.getProperty(ctx, propOrganizationName)
}

// GetMaximumNumberOfUsers returns the licensed seat count.
func (c *Client) GetMaximumNumberOfUsers(ctx context.Context) (int, error) {
	return c.getIntProperty(ctx, propMaxNumberOfUsers)
}

// GetCurrentNumberOfUsers returns the occupied seat count.
func (c *Client) GetCurrentNumberOfUsers(ctx context.Context) (int, error) {
	return c.getIntProperty(ctx, propCurrentNumberUsers)
}

// GetLicenseInfo composes the two seat counters into a usage summary.
func (c *Client) GetLicenseInfo(ctx context.Context) (*domain.LicenseInfo, error) {
	maxUsers, err := c.GetMaximumNumberOfUsers(ctx)
	if err != nil {
		return nil, err
	}
	curUsers, err := c.GetCurrentNumberOfUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.LicenseInfo{
		Free:       maxUsers - curUsers,
		MaxAccount: maxUsers,
		CurAccount: curUsers,
	}, nil
}
