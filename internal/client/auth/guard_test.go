package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/frolovpd/shopwindow/internal/logging"
)

type memStore struct {
	token  string
	getErr error
}

func (m *memStore) Get(context.Context) (string, error) { return m.token, m.getErr }
func (m *memStore) Set(_ context.Context, token string) error {
	m.token = token
	return nil
}
func (m *memStore) Clear(context.Context) error {
	m.token = ""
	return nil
}

type recNav struct {
	routes []string
}

func (n *recNav) Redirect(route string) { n.routes = append(n.routes, route) }

func newGuard(store *memStore, nav *recNav) *Guard {
	return NewGuard(store, nav, logging.NewZerologLogger(zerolog.Nop()))
}

func TestGuard_InitialStateIsUnknown(t *testing.T) {
	g := newGuard(&memStore{}, &recNav{})
	require.Equal(t, StateUnknown, g.State())
}

func TestGuard_ActivateWithToken(t *testing.T) {
	nav := &recNav{}
	g := newGuard(&memStore{token: "tok"}, nav)

	require.Equal(t, StateAuthenticated, g.Activate(context.Background()))
	require.Equal(t, StateAuthenticated, g.State())
	require.Empty(t, nav.routes, "no navigation on success")
}

func TestGuard_ActivateWithoutTokenRedirectsOnce(t *testing.T) {
	nav := &recNav{}
	g := newGuard(&memStore{}, nav)

	require.Equal(t, StateUnauthenticated, g.Activate(context.Background()))
	require.Equal(t, []string{RouteLanding}, nav.routes)
}

func TestGuard_StoreErrorTreatedAsLoggedOut(t *testing.T) {
	nav := &recNav{}
	g := newGuard(&memStore{getErr: errors.New("disk trouble")}, nav)

	require.Equal(t, StateUnauthenticated, g.Activate(context.Background()))
	require.Equal(t, []string{RouteLanding}, nav.routes)
}

func TestGuard_LogoutClearsAndRedirects(t *testing.T) {
	store := &memStore{token: "tok"}
	nav := &recNav{}
	g := newGuard(store, nav)
	g.Activate(context.Background())

	require.NoError(t, g.Logout(context.Background()))
	require.Equal(t, StateUnauthenticated, g.State())
	require.Empty(t, store.token)
	require.Equal(t, []string{RouteLanding}, nav.routes)
}

func TestGuard_DoubleLogoutIsNotAnError(t *testing.T) {
	store := &memStore{}
	nav := &recNav{}
	g := newGuard(store, nav)

	require.NoError(t, g.Logout(context.Background()))
	require.NoError(t, g.Logout(context.Background()))
	require.Equal(t, []string{RouteLanding, RouteLanding}, nav.routes)
}
