package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/frolovpd/shopwindow/internal/client/api"
	"github.com/frolovpd/shopwindow/internal/client/auth"
	"github.com/frolovpd/shopwindow/internal/client/services"
	"github.com/frolovpd/shopwindow/internal/client/views"
	"github.com/frolovpd/shopwindow/internal/logging"
)

// ---- fakes ----

type memStore struct {
	token string
}

func (m *memStore) Get(context.Context) (string, error) { return m.token, nil }
func (m *memStore) Set(_ context.Context, token string) error {
	m.token = token
	return nil
}
func (m *memStore) Clear(context.Context) error {
	m.token = ""
	return nil
}

type fakeAPI struct {
	loginRet *api.LoginResult
	loginErr error

	productList *api.ProductList
	productErr  error
	userList    *api.UserList
	userErr     error
	detailRet   *api.ProductDetail
	detailErr   error

	productCalls int
	userCalls    int
}

func (f *fakeAPI) Login(context.Context, string, string) (*api.LoginResult, error) {
	return f.loginRet, f.loginErr
}

func (f *fakeAPI) ListProducts(context.Context) (*api.ProductList, error) {
	f.productCalls++
	return f.productList, f.productErr
}

func (f *fakeAPI) ListUsers(context.Context) (*api.UserList, error) {
	f.userCalls++
	return f.userList, f.userErr
}

func (f *fakeAPI) GetProduct(_ context.Context, id int) (*api.ProductDetail, error) {
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	if f.detailRet != nil {
		return f.detailRet, nil
	}
	return &api.ProductDetail{Product: api.Product{ID: id, Title: fmt.Sprintf("product %d", id)}}, nil
}

// ---- helpers ----

func newTestApp(client api.Client, store *memStore) *App {
	log := logging.NewZerologLogger(zerolog.Nop())
	a := &App{
		log:         log,
		authService: services.NewAuthService(client, store),
		products:    views.NewProductsView(client, log),
		users:       views.NewUsersView(client, log),
		overlay:     views.NewDetailOverlay(client, log),
		reader:      bufio.NewReader(strings.NewReader("")),
		route:       auth.RouteLanding,
	}
	a.guard = auth.NewGuard(store, a, log)
	return a
}

// captureOutput redirects printlnFn into a slice for the duration of a test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	lines := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		*lines = append(*lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

func outputContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}
