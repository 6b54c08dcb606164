package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes cover everything the scribe touches: read calendars, attach
// minutes to events, create Drive files it owns, and search contacts.
var Scopes = []string{
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/calendar.events",
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/contacts.readonly",
}

// Authenticator manages the OAuth client secrets and the cached user token.
// Token refresh is handled by the oauth2 token source.
type Authenticator struct {
	credentialsPath string
	tokenPath       string
}

// NewAuthenticator creates an authenticator reading the OAuth client config
// from credentialsPath and caching the user token at tokenPath.
func NewAuthenticator(credentialsPath, tokenPath string) *Authenticator {
	return &Authenticator{
		credentialsPath: credentialsPath,
		tokenPath:       tokenPath,
	}
}

func (a *Authenticator) oauthConfig() (*oauth2.Config, error) {
	data, err := os.ReadFile(a.credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("missing %s: download an OAuth 2.0 client ID from Google Cloud Console and place it there: %w", a.credentialsPath, err)
	}

	conf, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid OAuth client config: %w", err)
	}
	return conf, nil
}

// HasToken checks if a cached OAuth token exists
func (a *Authenticator) HasToken() bool {
	_, err := os.Stat(a.tokenPath)
	return err == nil
}

// AuthURL returns the OAuth URL for user authorization
func (a *Authenticator) AuthURL() (string, error) {
	conf, err := a.oauthConfig()
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL("state", oauth2.AccessTypeOffline), nil
}

// SaveToken exchanges an authorization code for tokens and caches them
func (a *Authenticator) SaveToken(ctx context.Context, authCode string) error {
	conf, err := a.oauthConfig()
	if err != nil {
		return err
	}

	token, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(a.tokenPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// TokenSource returns a refreshing token source backed by the cached token
func (a *Authenticator) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	conf, err := a.oauthConfig()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.tokenPath)
	if err != nil {
		return nil, fmt.Errorf("no cached Google OAuth token at %s; authorize access first: %w", a.tokenPath, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token file %s: %w", a.tokenPath, err)
	}

	return conf.TokenSource(ctx, &token), nil
}

// HTTPClient returns an HTTP client configured with OAuth2 authentication
func (a *Authenticator) HTTPClient(ctx context.Context) (*http.Client, error) {
	ts, err := a.TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}
