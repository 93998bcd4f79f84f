// Package auth implements the TokenProvider port on top of
// golang.org/x/oauth2 with a file-backed token cache.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/custodia-labs/dirctl/internal/core/domain"
	"github.com/custodia-labs/dirctl/internal/core/ports/driven"
	"github.com/custodia-labs/dirctl/internal/logger"
)

// Ensure Provider implements the port.
var _ driven.TokenProvider = (*Provider)(nil)

// Scopes requested during authorization. Includes the legacy Admin
// Settings feed scope alongside the Directory API scopes.
var scopes = []string{
	"https://www.googleapis.com/auth/admin.directory.user",
	"https://www.googleapis.com/auth/admin.directory.group",
	"https://www.googleapis.com/auth/admin.directory.group.member",
	"https://apps-apis.google.com/a/feeds/domain/",
}

// Provider holds the OAuth configuration and the single in-memory token.
// Single-owner: it is only ever used by the one goroutine owning the
// directory client.
type Provider struct {
	conf     *oauth2.Config
	cache    *TokenCache
	supplier driven.AuthCodeSupplier
	token    *oauth2.Token
}

// NewProvider parses the vendor client-secret file and prepares a provider.
// No network I/O happens here; the token is established lazily by Token.
func NewProvider(credentialFile, cachePath string, supplier driven.AuthCodeSupplier) (*Provider, error) {
	data, err := os.ReadFile(credentialFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read credential file: %v", domain.ErrConfiguration, err)
	}

	conf, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parse credential file: %v", domain.ErrConfiguration, err)
	}

	return &Provider{
		conf:     conf,
		cache:    NewTokenCache(cachePath),
		supplier: supplier,
	}, nil
}

// AuthURL returns the authorization URL for the out-of-band code flow.
func (p *Provider) AuthURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Token returns the current token, loading the cache or running the
// interactive exchange on first use.
func (p *Provider) Token(ctx context.Context) (*oauth2.Token, error) {
	if p.token != nil {
		return p.token, nil
	}

	tok, err := p.cache.Load()
	switch {
	case err == nil:
		logger.WithField("cache", p.cache.Path()).Debugf("loaded cached token")
		p.token = tok
		return tok, nil
	case errors.Is(err, ErrNoCachedToken):
		return p.Authorize(ctx)
	default:
		return nil, err
	}
}

// Authorize runs the authorization-code exchange regardless of any cached
// token and persists the result.
func (p *Provider) Authorize(ctx context.Context) (*oauth2.Token, error) {
	if p.supplier == nil {
		return nil, fmt.Errorf("%w: no cached token and no code supplier", domain.ErrAuthRequired)
	}

	state := uuid.NewString()
	code, err := p.supplier.Code(ctx, p.AuthURL(state))
	if err != nil {
		return nil, fmt.Errorf("obtain authorization code: %w", err)
	}

	return p.Exchange(ctx, code)
}

// Exchange trades an authorization code for a token and persists it.
func (p *Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	p.token = tok
	if err := p.cache.Save(tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// Refresh exchanges the refresh token for a new access token. The result
// is persisted so a restart does not force interactive re-auth.
func (p *Provider) Refresh(ctx context.Context) (*oauth2.Token, error) {
	if p.token == nil || p.token.RefreshToken == "" {
		return nil, fmt.Errorf("%w: no refresh token available", domain.ErrAuthRequired)
	}

	// Seed the token source with only the refresh token to force a
	// refresh round-trip rather than reusing the stale access token.
	src := p.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: p.token.RefreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}

	if tok.RefreshToken == "" {
		// The provider does not always return a new refresh token.
		tok.RefreshToken = p.token.RefreshToken
	}

	p.token = tok
	if err := p.cache.Save(tok); err != nil {
		return nil, err
	}
	logger.Debugf("token refreshed")
	return tok, nil
}
