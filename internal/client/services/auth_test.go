package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/frolovpd/shopwindow/internal/client/api"
)

// ---- fakes ----

type fakeClient struct {
	loginRet *api.LoginResult
	loginErr error

	lastUser string
	lastPass string
}

func (f *fakeClient) Login(_ context.Context, username, password string) (*api.LoginResult, error) {
	f.lastUser, f.lastPass = username, password
	return f.loginRet, f.loginErr
}
func (f *fakeClient) ListProducts(context.Context) (*api.ProductList, error) { return nil, nil }
func (f *fakeClient) ListUsers(context.Context) (*api.UserList, error)       { return nil, nil }
func (f *fakeClient) GetProduct(context.Context, int) (*api.ProductDetail, error) {
	return nil, nil
}

type memStore struct {
	token  string
	setErr error
	getErr error
}

func (m *memStore) Get(context.Context) (string, error) { return m.token, m.getErr }
func (m *memStore) Set(_ context.Context, token string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.token = token
	return nil
}
func (m *memStore) Clear(context.Context) error {
	m.token = ""
	return nil
}

// ---- tests ----

func TestLogin_PersistsToken(t *testing.T) {
	c := &fakeClient{loginRet: &api.LoginResult{AccessToken: "tok-1", FirstName: "Emily"}}
	store := &memStore{}
	svc := NewAuthService(c, store)

	res, err := svc.Login(context.Background(), "emilys", "emilyspass")
	require.NoError(t, err)
	require.Equal(t, "emilys", c.lastUser)
	require.Equal(t, "emilyspass", c.lastPass)
	require.Equal(t, "Emily", res.FirstName)
	require.Equal(t, "tok-1", store.token)
}

func TestLogin_RejectionPersistsNothing(t *testing.T) {
	c := &fakeClient{loginErr: &api.AuthError{Message: "Invalid credentials"}}
	store := &memStore{}
	svc := NewAuthService(c, store)

	_, err := svc.Login(context.Background(), "emilys", "wrong")

	var authErr *api.AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "Invalid credentials", authErr.Message)
	require.Empty(t, store.token)
}

func TestLogin_StoreFailureSurfaces(t *testing.T) {
	c := &fakeClient{loginRet: &api.LoginResult{AccessToken: "tok-1"}}
	store := &memStore{setErr: errors.New("disk full")}
	svc := NewAuthService(c, store)

	_, err := svc.Login(context.Background(), "emilys", "emilyspass")
	require.ErrorContains(t, err, "disk full")
}

func TestLogout_ClearsToken(t *testing.T) {
	store := &memStore{token: "tok-1"}
	svc := NewAuthService(&fakeClient{}, store)

	require.NoError(t, svc.Logout(context.Background()))
	require.Empty(t, store.token)
}

func TestAccountName(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "emilys"})
	signed, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	svc := NewAuthService(&fakeClient{}, &memStore{token: signed})
	require.Equal(t, "emilys", svc.AccountName(context.Background()))
}

func TestAccountName_LoggedOut(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, &memStore{})
	require.Equal(t, "", svc.AccountName(context.Background()))
}
