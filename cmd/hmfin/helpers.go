package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/himalayanmicrofin/hmfin/internal/api"
	"github.com/himalayanmicrofin/hmfin/internal/common"
	"github.com/himalayanmicrofin/hmfin/internal/config"
	"github.com/himalayanmicrofin/hmfin/internal/session"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// openSessionStore opens the session database with proper path
// expansion and migration.
func openSessionStore(ctx context.Context) (*session.Store, error) {
	dbPath := viper.GetString("session.path")
	if dbPath == "" {
		dbPath = config.DefaultSessionPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := session.NewStore(dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

// apiBaseURL returns the configured API base URL or an error telling
// the user how to set it.
func apiBaseURL() (string, error) {
	baseURL := viper.GetString("api.url")
	if baseURL == "" {
		return "", common.NewUserError(
			"API URL is not configured; set api.url in config or pass --api-url", common.ErrMissingConfig)
	}
	return baseURL, nil
}

// newAnonymousClient builds an API client without a session token, for
// auth commands.
func newAnonymousClient() (*api.Client, error) {
	baseURL, err := apiBaseURL()
	if err != nil {
		return nil, err
	}
	return api.NewClient(baseURL)
}

// newAuthedClient loads the saved session and builds an API client
// carrying its token.
func newAuthedClient(ctx context.Context) (*api.Client, *session.Session, error) {
	baseURL, err := apiBaseURL()
	if err != nil {
		return nil, nil, err
	}

	store, err := openSessionStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = store.Close() }()

	sess, err := store.Load(ctx)
	if err != nil {
		if err == common.ErrNotLoggedIn {
			return nil, nil, common.NewUserError("not logged in; run 'hmfin auth login' first", err)
		}
		return nil, nil, err
	}

	client, err := api.NewClient(baseURL, api.WithToken(sess.Token))
	if err != nil {
		return nil, nil, err
	}
	return client, sess, nil
}

// parseAmount parses a user-entered money figure.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// parseID parses a numeric record id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
