package cli

import (
	"context"
	"fmt"

	"github.com/frolovpd/shopwindow/internal/client/auth"
	"github.com/frolovpd/shopwindow/internal/client/views"
)

// Users opens the user catalog: guard check, one list fetch, render.
func (a *App) Users(ctx context.Context) error {
	if !a.activateGuarded(ctx, auth.RouteUsers) {
		return nil
	}

	printlnFn("Loading users ...")
	a.users.Activate(ctx)
	if msg := a.users.Err(); msg != "" {
		printlnFn(msg)
		return nil
	}
	a.renderUsers()
	return nil
}

// Gender switches the users view's facet filter.
func (a *App) Gender(ctx context.Context, facet string) error {
	if a.route != auth.RouteUsers {
		printlnFn("Open the users view first")
		return nil
	}
	g, err := views.ParseGender(facet)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	a.users.SetGender(g)
	a.page = 0
	a.renderUsers()
	return nil
}

func (a *App) renderUsers() {
	visible := a.users.Visible()
	if len(visible) == 0 {
		printlnFn(views.UsersEmptyMessage)
		return
	}

	start, end, page, pages := pageBounds(len(visible), a.page)
	a.page = page

	for _, u := range visible[start:end] {
		printlnFn(fmt.Sprintf("%4d  %-25s %-8s age %-3d  %-30s %s/%s",
			u.ID, u.FirstName+" "+u.LastName, u.Gender, u.Age, u.Email, u.Username, u.Password))
	}
	printlnFn(fmt.Sprintf("page %d/%d, %d of %d users", page+1, pages, len(visible), a.users.Total()))
}
