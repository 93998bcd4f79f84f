package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/dirctl/internal/core/domain"
	"github.com/custodia-labs/dirctl/internal/directory"
)

// stubTokens satisfies the TokenProvider port with a fixed token.
type stubTokens struct{}

func (stubTokens) Token(context.Context) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "stub", TokenType: "Bearer"}, nil
}
func (stubTokens) Refresh(context.Context) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "stub", TokenType: "Bearer"}, nil
}
func (stubTokens) Exchange(context.Context, string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "stub", TokenType: "Bearer"}, nil
}
func (stubTokens) AuthURL(string) string { return "https://auth.invalid" }

// withStubClient points newClient at a test server for one test.
func withStubClient(t *testing.T, srvURL string) {
	t.Helper()

	cred := filepath.Join(t.TempDir(), "client_secret.json")
	require.NoError(t, os.WriteFile(cred, []byte("{}"), 0o600))

	orig := newClient
	newClient = func() (*directory.Client, error) {
		cfg := domain.ClientConfig{
			Domain:         "example.com",
			CredentialFile: cred,
			TokenCachePath: filepath.Join(t.TempDir(), "token.json"),
		}
		return directory.New(cfg, stubTokens{}, directory.WithBaseURLs(srvURL, srvURL))
	}
	t.Cleanup(func() { newClient = orig })
}

// execute runs the root command with args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestUsersGetCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"42","primaryEmail":"alice@example.com","isAdmin":true,"name":{"fullName":"Alice Aardvark"}}`)
	}))
	defer srv.Close()
	withStubClient(t, srv.URL)

	out, err := execute(t, "users", "get", "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "Alice Aardvark")
}

func TestMembersListCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"members":[{"email":"alice@example.com","role":"MEMBER","type":"USER"}]}`)
	}))
	defer srv.Close()
	withStubClient(t, srv.URL)

	out, err := execute(t, "members", "list", "team@example.com")

	require.NoError(t, err)
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "MEMBER")
}

func TestDomainLicenseCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		if strings.HasSuffix(r.URL.Path, "maximumNumberOfUsers") {
			fmt.Fprint(w, `<entry><property name='maximumNumberOfUsers' value='100'/></entry>`)
			return
		}
		fmt.Fprint(w, `<entry><property name='currentNumberOfUsers' value='37'/></entry>`)
	}))
	defer srv.Close()
	withStubClient(t, srv.URL)

	out, err := execute(t, "domain", "license")

	require.NoError(t, err)
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "37")
	assert.Contains(t, out, "63")
}

func TestMembersRemoveCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()
	withStubClient(t, srv.URL)

	out, err := execute(t, "members", "remove", "team@example.com", "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out, "removed alice@example.com from team@example.com")
}
