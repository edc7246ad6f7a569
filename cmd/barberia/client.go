package main

import (
	"fmt"
	"strings"

	"github.com/nybarber/barberia/internal/apiclient"
	"github.com/nybarber/barberia/internal/localstore"
	"github.com/nybarber/barberia/internal/session"
	"github.com/nybarber/barberia/internal/viewport"
)

// resolveServerURL returns the server argument, falling back to the
// default server from config.
func resolveServerURL(serverArg string) (string, error) {
	if serverArg != "" {
		return strings.TrimRight(serverArg, "/"), nil
	}
	cfg, err := localstore.LoadConfig()
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	if cfg.DefaultServer == "" {
		return "", fmt.Errorf("no server configured; run 'barberia login <server-url>' first")
	}
	return cfg.DefaultServer, nil
}

// getSession loads the stored credential for the server and builds the
// immutable session handed to every screen.
func getSession(serverArg string) (*session.Session, error) {
	serverURL, err := resolveServerURL(serverArg)
	if err != nil {
		return nil, err
	}

	cred, err := localstore.LoadCredential(serverURL)
	if err != nil {
		if err == localstore.ErrNotLoggedIn {
			return nil, fmt.Errorf("not logged in to %s; run 'barberia login %s' first", serverURL, serverURL)
		}
		return nil, fmt.Errorf("loading credentials: %w", err)
	}

	return session.New(serverURL, cred.Token, func() error {
		return localstore.DeleteCredential(serverURL)
	})
}

// getAuthenticatedClient returns the session and an API client carrying
// its bearer token.
func getAuthenticatedClient(serverArg string) (*session.Session, *apiclient.Client, error) {
	sess, err := getSession(serverArg)
	if err != nil {
		return nil, nil, err
	}
	return sess, apiclient.New(sess.ServerURL, sess.Token()), nil
}

// getPublicClient returns an unauthenticated client for the public
// gallery endpoints.
func getPublicClient(serverArg string) (*apiclient.Client, error) {
	serverURL, err := resolveServerURL(serverArg)
	if err != nil {
		return nil, err
	}
	return apiclient.NewWithoutAuth(serverURL), nil
}

// viewportSignal builds the reactive viewport source, honoring a config
// override when one is set.
func viewportSignal() (*viewport.Signal, error) {
	cfg, err := localstore.LoadConfig()
	if err != nil {
		return nil, err
	}
	if class, ok := viewport.ParseClass(cfg.Viewport); ok {
		return viewport.NewStdoutSignal(&class), nil
	}
	return viewport.NewStdoutSignal(nil), nil
}
