// Package services contains application services for the catalog client.
// This file defines the authentication service: login against the remote API
// and housekeeping of the locally persisted session token.
package services

import (
	"context"
	"fmt"

	"github.com/frolovpd/shopwindow/internal/client/api"
	"github.com/frolovpd/shopwindow/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the access token.
//   - Logout: drop the persisted token.
//   - AccountName: display name for the stored session, "" when logged out.
//
// All methods must honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*api.LoginResult, error)
	Logout(ctx context.Context) error
	AccountName(ctx context.Context) string
}

// authService is the concrete AuthService backed by a remote Client and the
// local session store.
type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

// Login authenticates against the server and persists the returned access
// token. A rejected login (*api.AuthError) propagates unchanged and nothing
// is persisted.
func (a *authService) Login(ctx context.Context, username, password string) (*api.LoginResult, error) {
	result, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := a.store.Set(ctx, result.AccessToken); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return result, nil
}

// Logout wipes the persisted session token.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// AccountName returns the stored token's display name, or "" when no session
// is stored or the token carries no usable claim.
func (a *authService) AccountName(ctx context.Context) string {
	token, err := a.store.Get(ctx)
	if err != nil || token == "" {
		return ""
	}
	return session.AccountName(token)
}
