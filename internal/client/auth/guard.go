// Package auth gates the protected views on session state. The check is
// purely local: a stored token means authenticated, nothing is verified
// against the server.
package auth

import (
	"context"

	"github.com/frolovpd/shopwindow/internal/client/session"
	"github.com/frolovpd/shopwindow/internal/logging"
)

// State is the guard's view of the session.
type State int

const (
	// StateUnknown is the initial state, before the store has been read.
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// In-app routes the guard and the views navigate between.
const (
	RouteLanding  = "/"
	RouteProducts = "/products"
	RouteUsers    = "/users"
)

// Navigator is the guard's side-effect channel: instead of returning errors,
// a failed check redirects the visitor.
type Navigator interface {
	Redirect(route string)
}

// Guard reads the session store on activation and redirects unauthenticated
// visitors to the landing route.
type Guard struct {
	store session.Store
	nav   Navigator
	log   logging.Logger
	state State
}

func NewGuard(store session.Store, nav Navigator, log logging.Logger) *Guard {
	return &Guard{store: store, nav: nav, log: log.With("component", "guard"), state: StateUnknown}
}

// State returns the result of the most recent Activate or Logout;
// StateUnknown before either has run.
func (g *Guard) State() State {
	return g.state
}

// Activate reads the stored token and resolves the session state. An absent
// token (or a store read failure, which is treated the same) resolves to
// StateUnauthenticated and issues exactly one redirect to the landing route.
// A present token resolves to StateAuthenticated with no navigation.
func (g *Guard) Activate(ctx context.Context) State {
	token, err := g.store.Get(ctx)
	if err != nil {
		g.log.Warn(ctx, "session read failed, treating as logged out", "error", err.Error())
		token = ""
	}

	if token == "" {
		g.state = StateUnauthenticated
		g.nav.Redirect(RouteLanding)
	} else {
		g.state = StateAuthenticated
	}
	return g.state
}

// Logout clears the stored token, forces StateUnauthenticated, and redirects
// to the landing route. It is idempotent and independent of the current state.
func (g *Guard) Logout(ctx context.Context) error {
	err := g.store.Clear(ctx)
	g.state = StateUnauthenticated
	g.nav.Redirect(RouteLanding)
	return err
}
