package directory

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectPages_ThreePages(t *testing.T) {
	var tokens []string
	pagesServed := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens = append(tokens, r.URL.Query().Get("pageToken"))
		pagesServed++

		w.Header().Set("Content-Type", "application/json")
		switch pagesServed {
		case 1:
			fmt.Fprint(w, `{"groups":[{"email":"a@example.com"}],"nextPageToken":"t2"}`)
		case 2:
			fmt.Fprint(w, `{"groups":[{"email":"b@example.com"}],"nextPageToken":"t3"}`)
		default:
			fmt.Fprint(w, `{"groups":[{"email":"c@example.com"}]}`)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeTokens{})
	pages, err := c.GetAllGroups(context.Background())

	require.NoError(t, err)
	// Three requests, token carried on the second and third.
	assert.Equal(t, []string{"", "t2", "t3"}, tokens)
	// Three whole pages in order, not flattened.
	require.Len(t, pages, 3)

	groups, err := GroupsFromPages(pages)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "a@example.com", groups[0].Email)
	assert.Equal(t, "b@example.com", groups[1].Email)
	assert.Equal(t, "c@example.com", groups[2].Email)
}

func TestCollectPages_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"groups":[],"nextPageToken":"again"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeTokens{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetAllGroups(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollectPages_BoundedAgainstEndlessTokens(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"groups":[],"nextPageToken":"again"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeTokens{})
	_, err := c.GetAllGroups(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyPages)
	assert.Equal(t, maxPages, requests)
}

func TestCollectPages_NonJSONPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "not a list")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeTokens{})
	_, err := c.GetAllGroups(context.Background())

	require.Error(t, err)
}
