package views

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/frolovpd/shopwindow/internal/client/api"
	"github.com/frolovpd/shopwindow/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewZerologLogger(zerolog.Nop())
}

// fakeClient serves canned list responses and counts calls.
type fakeClient struct {
	productList *api.ProductList
	productErr  error
	userList    *api.UserList
	userErr     error

	detailFn func(ctx context.Context, id int) (*api.ProductDetail, error)

	productCalls int
	userCalls    int
}

func (f *fakeClient) Login(context.Context, string, string) (*api.LoginResult, error) {
	return nil, nil
}

func (f *fakeClient) ListProducts(context.Context) (*api.ProductList, error) {
	f.productCalls++
	return f.productList, f.productErr
}

func (f *fakeClient) ListUsers(context.Context) (*api.UserList, error) {
	f.userCalls++
	return f.userList, f.userErr
}

func (f *fakeClient) GetProduct(ctx context.Context, id int) (*api.ProductDetail, error) {
	if f.detailFn != nil {
		return f.detailFn(ctx, id)
	}
	return &api.ProductDetail{Product: api.Product{ID: id}}, nil
}
