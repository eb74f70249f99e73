// Package views holds the list-and-filter view models. A view is an explicit,
// test-triggerable unit: Activate issues the single fetch, filtering is a pure
// derivation over the fetched collection, and rendering is left to the caller.
package views

import (
	"context"
	"strings"

	"github.com/frolovpd/shopwindow/internal/client/api"
	"github.com/frolovpd/shopwindow/internal/logging"
)

// ProductsEmptyMessage is shown instead of an empty grid when nothing
// matches the current search.
const ProductsEmptyMessage = "no products found"

// ProductsView fetches the product collection once per activation and derives
// a filtered slice from the search query.
type ProductsView struct {
	client api.Client
	log    logging.Logger

	products []api.Product
	total    int
	query    string
	errMsg   string
	loaded   bool
}

func NewProductsView(client api.Client, log logging.Logger) *ProductsView {
	return &ProductsView{client: client, log: log.With("view", "products")}
}

// Activate issues exactly one list fetch. On success the full collection is
// stored; on failure a user-visible message is stored and the view stays
// empty. Re-activating always re-fetches.
func (v *ProductsView) Activate(ctx context.Context) {
	v.products = nil
	v.total = 0
	v.errMsg = ""
	v.loaded = false

	list, err := v.client.ListProducts(ctx)
	if err != nil {
		v.log.Warn(ctx, "product fetch failed", "error", err.Error())
		v.errMsg = "failed to load products, please try again later"
		return
	}

	v.products = list.Products
	v.total = list.Total
	v.loaded = true
}

// SetQuery updates the search text. Purely local; never fetches.
func (v *ProductsView) SetQuery(q string) {
	v.query = q
}

func (v *ProductsView) Query() string {
	return v.query
}

// Visible derives the filtered slice: every product whose title+brand
// case-insensitively contains the query. An empty query yields the full
// collection. The source slice is never mutated.
func (v *ProductsView) Visible() []api.Product {
	if v.query == "" {
		return v.products
	}
	q := strings.ToLower(v.query)
	var out []api.Product
	for _, p := range v.products {
		haystack := strings.ToLower(p.Title + " " + p.Brand)
		if strings.Contains(haystack, q) {
			out = append(out, p)
		}
	}
	return out
}

// Err returns the user-visible fetch error message, "" when the last
// activation succeeded.
func (v *ProductsView) Err() string {
	return v.errMsg
}

// Loaded reports whether the collection has been fetched successfully.
func (v *ProductsView) Loaded() bool {
	return v.loaded
}

// Total is the server-reported collection size (pagination metadata).
func (v *ProductsView) Total() int {
	return v.total
}
