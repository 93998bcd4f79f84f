package driven

import (
	"context"

	"golang.org/x/oauth2"
)

// TokenProvider is the authentication capability injected into the
// directory client. It owns the token; the client only reads it to build
// Authorization headers.
type TokenProvider interface {
	// Token returns the current token, establishing one first if the
	// provider has never authenticated (cache load or interactive exchange).
	Token(ctx context.Context) (*oauth2.Token, error)

	// Refresh exchanges the refresh token for a new access token and
	// persists the result. Called reactively on a 401, never proactively.
	Refresh(ctx context.Context) (*oauth2.Token, error)

	// Exchange trades an authorization code for a token and persists it.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)

	// AuthURL returns the authorization URL a user must visit to obtain
	// a verification code.
	AuthURL(state string) string
}

// AuthCodeSupplier obtains an authorization code for the initial token
// exchange. The default implementation prompts on the terminal; automated
// contexts inject a non-interactive one.
type AuthCodeSupplier interface {
	// Code presents authURL to the user and returns the verification code.
	Code(ctx context.Context, authURL string) (string, error)
}
