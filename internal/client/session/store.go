// Package session owns the locally persisted session token. Presence of the
// token is the only authentication criterion: it is never validated against
// the server and has no expiry handling.
package session

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Store is the injectable session abstraction. Get returns "" when no token
// is stored. Clear on an absent token is a no-op, not an error.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// AccountName extracts the "username" claim from the access token for
// display purposes. The token is decoded without any signature verification;
// a malformed token simply yields "".
func AccountName(token string) string {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	name, _ := claims["username"].(string)
	return name
}
