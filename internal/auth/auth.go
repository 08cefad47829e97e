// Package auth acquires and caches OAuth credentials for the Tag Manager
// API. Tokens are cached in SQLite and refreshed silently; the interactive
// authorization flow runs only when no usable token exists.
package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	tagmanager "google.golang.org/api/tagmanager/v2"

	"gtmdiff/internal/gtmerrors"
	"gtmdiff/internal/logging"
)

// Authenticator manages the OAuth lifecycle for one client secret
type Authenticator struct {
	conf   *oauth2.Config
	store  *TokenStore
	logger *logging.Logger

	// Input/Output for the interactive flow; defaults to stdin/stderr
	In  io.Reader
	Out io.Writer
}

// New creates an Authenticator from an installed-app client secret file
// and a token cache database path
func New(credentialsPath, tokenDBPath string, logger *logging.Logger) (*Authenticator, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, gtmerrors.New(gtmerrors.AuthFailed,
			fmt.Sprintf("client secret file not readable at %s", credentialsPath), err)
	}

	conf, err := google.ConfigFromJSON(data, tagmanager.TagmanagerReadonlyScope)
	if err != nil {
		return nil, gtmerrors.New(gtmerrors.AuthFailed, "client secret file not parseable", err)
	}

	store, err := OpenStore(tokenDBPath)
	if err != nil {
		return nil, gtmerrors.New(gtmerrors.AuthFailed, "token cache unavailable", err)
	}

	return &Authenticator{
		conf:   conf,
		store:  store,
		logger: logger,
		In:     os.Stdin,
		Out:    os.Stderr,
	}, nil
}

// Close releases the token cache
func (a *Authenticator) Close() error {
	return a.store.Close()
}

// Client returns an HTTP client that attaches valid credentials to every
// request, running the interactive flow first if no token is cached.
// Refreshed tokens are written back to the cache.
func (a *Authenticator) Client(ctx context.Context) (*http.Client, error) {
	tok, err := a.store.Load(a.conf.ClientID)
	if errors.Is(err, ErrTokenNotFound) {
		tok, err = a.authorize(ctx)
	}
	if err != nil {
		return nil, err
	}

	src := &savingSource{
		wrapped: a.conf.TokenSource(ctx, tok),
		auth:    a,
		last:    tok.AccessToken,
	}
	return oauth2.NewClient(ctx, src), nil
}

// Login runs the interactive authorization flow unconditionally and
// caches the resulting token
func (a *Authenticator) Login(ctx context.Context) error {
	_, err := a.authorize(ctx)
	return err
}

// authorize walks the user through the out-of-band code flow
func (a *Authenticator) authorize(ctx context.Context) (*oauth2.Token, error) {
	url := a.conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(a.Out, "Open the following URL in a browser, authorize gtmdiff, then paste the code here:\n\n%s\n\nCode: ", url)

	code, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil {
		return nil, gtmerrors.New(gtmerrors.AuthFailed, "reading authorization code", err)
	}

	tok, err := a.conf.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, gtmerrors.New(gtmerrors.AuthFailed, "exchanging authorization code", err)
	}

	if err := a.store.Save(a.conf.ClientID, tok); err != nil {
		return nil, gtmerrors.New(gtmerrors.AuthFailed, "caching token", err)
	}
	a.logger.Info("authorization complete, token cached", nil)
	return tok, nil
}

// savingSource persists tokens back to the cache whenever the underlying
// source refreshes them
type savingSource struct {
	wrapped oauth2.TokenSource
	auth    *Authenticator
	last    string
}

func (s *savingSource) Token() (*oauth2.Token, error) {
	tok, err := s.wrapped.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		if saveErr := s.auth.store.Save(s.auth.conf.ClientID, tok); saveErr != nil {
			s.auth.logger.Warn("refreshed token not cached", map[string]interface{}{
				"error": saveErr.Error(),
			})
		}
	}
	return tok, nil
}
