package directory

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/custodia-labs/dirctl/internal/core/domain"
)

// decodeInto re-encodes a generic JSON value into a typed view.
func decodeInto(v, out any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// collectEntries gathers the named result array across pages.
func collectEntries(pages []Page, key string) []any {
	var entries []any
	for _, page := range pages {
		items, _ := page[key].([]any)
		entries = append(entries, items...)
	}
	return entries
}

// UserFromResult lifts the presentation fields out of a user payload.
func UserFromResult(res *Result) (domain.User, error) {
	var u struct {
		domain.User
		Name struct {
			FullName string `json:"fullName"`
		} `json:"name"`
	}
	if err := decodeInto(res.Object, &u); err != nil {
		return domain.User{}, fmt.Errorf("decode user: %w", err)
	}
	u.User.FullName = u.Name.FullName
	return u.User, nil
}

// UsersFromPages flattens user list pages into typed views.
func UsersFromPages(pages []Page) ([]domain.User, error) {
	entries := collectEntries(pages, "users")
	users := make([]domain.User, 0, len(entries))
	for _, e := range entries {
		u, err := UserFromResult(&Result{Object: asObject(e)})
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// GroupFromResult lifts the presentation fields out of a group payload.
func GroupFromResult(res *Result) (domain.Group, error) {
	var g domain.Group
	if err := decodeInto(res.Object, &g); err != nil {
		return domain.Group{}, fmt.Errorf("decode group: %w", err)
	}
	return g, nil
}

// GroupsFromPages flattens group list pages into typed views.
func GroupsFromPages(pages []Page) ([]domain.Group, error) {
	entries := collectEntries(pages, "groups")
	groups := make([]domain.Group, 0, len(entries))
	for _, e := range entries {
		var g domain.Group
		if err := decodeInto(e, &g); err != nil {
			return nil, fmt.Errorf("decode group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// MemberFromResult lifts the presentation fields out of a member payload.
func MemberFromResult(res *Result) (domain.Member, error) {
	var m domain.Member
	if err := decodeInto(res.Object, &m); err != nil {
		return domain.Member{}, fmt.Errorf("decode member: %w", err)
	}
	return m, nil
}

// MembersFromPages flattens member list pages into typed views.
func MembersFromPages(pages []Page) ([]domain.Member, error) {
	entries := collectEntries(pages, "members")
	members := make([]domain.Member, 0, len(entries))
	for _, e := range entries {
		var m domain.Member
		if err := decodeInto(e, &m); err != nil {
			return nil, fmt.Errorf("decode member: %w", err)
		}
		members = append(members, m)
	}
	return members, nil
}

func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}
