package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/frolovpd/shopwindow/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the remote API.
// On success the access token is persisted and the guard re-resolves to the
// authenticated state. A rejected login prints the server's message and
// persists nothing.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	result, err := a.authService.Login(ctx, username, string(password))
	if err != nil {
		var authErr *api.AuthError
		if errors.As(err, &authErr) {
			printlnFn("Login failed:", authErr.Message)
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.guard.Activate(ctx)
	printlnFn(fmt.Sprintf("Welcome, %s %s!", result.FirstName, result.LastName))
	return nil
}

// Logout drops the stored session and returns to the landing screen. Safe to
// call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.guard.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}
