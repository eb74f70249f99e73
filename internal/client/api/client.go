// Package api wraps the remote catalog API: login, product and user listings,
// and single-product detail. The base host is fixed and external; every call
// is a single fire-once HTTP round trip with no retries and no caching.
package api

import "context"

// Client defines the remote operations the application uses.
//
// Contract:
//   - Login: authenticate and return the decoded response body.
//     Rejection surfaces as *AuthError.
//   - ListProducts / ListUsers: fetch the full collection envelope.
//   - GetProduct: fetch one product record by id.
//     Any non-2xx or transport failure on the list/detail calls surfaces
//     as *FetchError.
//
// All methods must honor context cancellation.
type Client interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ListProducts(ctx context.Context) (*ProductList, error)
	ListUsers(ctx context.Context) (*UserList, error)
	GetProduct(ctx context.Context, id int) (*ProductDetail, error)
}
