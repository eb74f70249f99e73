package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/frolovpd/shopwindow/internal/client/auth"
	"github.com/frolovpd/shopwindow/internal/client/views"
)

// activateGuarded runs the auth guard before a protected view renders.
// While the session state is still unknown a loading placeholder prints;
// an unauthenticated visitor renders nothing (the guard's redirect already
// switched the screen back to the landing route).
func (a *App) activateGuarded(ctx context.Context, route string) bool {
	if a.guard.State() == auth.StateUnknown {
		printlnFn("Checking session ...")
	}
	if a.guard.Activate(ctx) != auth.StateAuthenticated {
		printlnFn("Please login first")
		return false
	}
	a.route = route
	a.page = 0
	return true
}

// Products opens the product catalog: guard check, one list fetch, render.
func (a *App) Products(ctx context.Context) error {
	if !a.activateGuarded(ctx, auth.RouteProducts) {
		return nil
	}

	printlnFn("Loading products ...")
	a.products.Activate(ctx)
	if msg := a.products.Err(); msg != "" {
		printlnFn(msg)
		return nil
	}
	a.renderProducts()
	return nil
}

// Search filters the current view. Purely local; no network calls.
func (a *App) Search(ctx context.Context, query string) error {
	switch a.route {
	case auth.RouteProducts:
		a.products.SetQuery(query)
		a.page = 0
		a.renderProducts()
	case auth.RouteUsers:
		a.users.SetQuery(query)
		a.page = 0
		a.renderUsers()
	default:
		printlnFn("Open products or users first")
	}
	return nil
}

// Open fetches and shows the detail overlay for one product.
func (a *App) Open(ctx context.Context, idArg string) error {
	if a.route != auth.RouteProducts {
		printlnFn("Open the products view first")
		return nil
	}
	id, err := strconv.Atoi(idArg)
	if err != nil {
		printlnFn("Usage: open <numeric id>")
		return nil
	}

	printlnFn(fmt.Sprintf("Loading product %d ...", id))
	done := a.overlay.Open(ctx, id)
	<-done
	a.renderOverlay()
	return nil
}

// Image selects an image inside the open overlay.
func (a *App) Image(ctx context.Context, idxArg string) error {
	if !a.overlay.IsOpen() {
		printlnFn("No open product")
		return nil
	}
	i, err := strconv.Atoi(idxArg)
	if err != nil {
		printlnFn("Usage: image <number>")
		return nil
	}
	a.overlay.SelectImage(i)
	a.renderOverlayImages()
	return nil
}

// CloseOverlay dismisses the detail overlay and discards its record.
func (a *App) CloseOverlay(ctx context.Context) error {
	a.overlay.Close()
	printlnFn("Closed")
	return nil
}

// Page moves through the filtered list: "next", "prev" or a 1-based number.
func (a *App) Page(ctx context.Context, arg string) error {
	switch arg {
	case "next":
		a.page++
	case "prev":
		a.page--
	default:
		n, err := strconv.Atoi(arg)
		if err != nil {
			printlnFn("Usage: page <n> | next | prev")
			return nil
		}
		a.page = n - 1
	}

	switch a.route {
	case auth.RouteProducts:
		a.renderProducts()
	case auth.RouteUsers:
		a.renderUsers()
	default:
		printlnFn("Open products or users first")
	}
	return nil
}

// pageBounds clamps page into range for n items and returns the slice bounds
// plus the clamped page and total page count.
func pageBounds(n, page int) (start, end, clamped, pages int) {
	pages = (n + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	if page < 0 {
		page = 0
	}
	if page >= pages {
		page = pages - 1
	}
	start = page * pageSize
	end = start + pageSize
	if end > n {
		end = n
	}
	return start, end, page, pages
}

func (a *App) renderProducts() {
	visible := a.products.Visible()
	if len(visible) == 0 {
		printlnFn(views.ProductsEmptyMessage)
		return
	}

	start, end, page, pages := pageBounds(len(visible), a.page)
	a.page = page

	for _, p := range visible[start:end] {
		printlnFn(fmt.Sprintf("%4d  %-45s %-20s $%8.2f  rating %.1f  stock %d",
			p.ID, p.Title, p.Brand, p.Price, p.Rating, p.Stock))
	}
	printlnFn(fmt.Sprintf("page %d/%d, %d of %d products", page+1, pages, len(visible), a.products.Total()))
}

func (a *App) renderOverlay() {
	if !a.overlay.IsOpen() {
		return
	}
	if a.overlay.Loading() {
		printlnFn("Loading ...")
		return
	}
	if a.overlay.Failed() {
		printlnFn("Failed to load product")
		return
	}

	d := a.overlay.Detail()
	if d == nil {
		return
	}
	printlnFn(fmt.Sprintf("%s (%s)", d.Title, d.Brand))
	printlnFn(fmt.Sprintf("Category: %s", d.Category))
	printlnFn(fmt.Sprintf("Price: $%.2f (-%.1f%%)", d.Price, d.DiscountPercentage))
	printlnFn(fmt.Sprintf("Rating: %.1f, stock: %d, weight: %.1f", d.Rating, d.Stock, d.Weight))
	printlnFn(d.Description)
	a.renderOverlayImages()
}

func (a *App) renderOverlayImages() {
	d := a.overlay.Detail()
	if d == nil || len(d.Images) == 0 {
		return
	}
	selected := a.overlay.ImageIndex()
	for i, img := range d.Images {
		marker := " "
		if i == selected {
			marker = "*"
		}
		printlnFn(fmt.Sprintf(" %s [%d] %s", marker, i, img))
	}
}
