// Package cli is the interactive front end: a REPL that drives the guard,
// the list views, and the detail overlay.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/frolovpd/shopwindow/internal/client/api"
	"github.com/frolovpd/shopwindow/internal/client/auth"
	"github.com/frolovpd/shopwindow/internal/client/config"
	"github.com/frolovpd/shopwindow/internal/client/services"
	"github.com/frolovpd/shopwindow/internal/client/session"
	"github.com/frolovpd/shopwindow/internal/client/views"
	"github.com/frolovpd/shopwindow/internal/logging"
)

// pageSize is how many grid rows print per page.
const pageSize = 10

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	authService services.AuthService
	guard       *auth.Guard
	products    *views.ProductsView
	users       *views.UsersView
	overlay     *views.DetailOverlay
	reader      *bufio.Reader

	route string
	page  int
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err.Error())
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(c.BaseURL, log)

	a := &App{
		config:      c,
		log:         log,
		db:          db,
		authService: services.NewAuthService(apiClient, store),
		products:    views.NewProductsView(apiClient, log),
		users:       views.NewUsersView(apiClient, log),
		overlay:     views.NewDetailOverlay(apiClient, log),
		reader:      bufio.NewReader(os.Stdin),
		route:       auth.RouteLanding,
	}
	a.guard = auth.NewGuard(store, a, log)
	return a, nil
}

// Redirect is the guard's navigation side effect: the CLI switches its
// current screen.
func (a *App) Redirect(route string) {
	if a.route != route {
		a.log.Debug(context.Background(), "route changed", "from", a.route, "to", route)
		a.route = route
		a.page = 0
	}
	if route == auth.RouteLanding {
		a.overlay.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.guard.State() == auth.StateAuthenticated
}

// getStatus renders the prompt decoration: account name and current route.
func (a *App) getStatus() string {
	ctx := context.Background()
	s := ""
	if a.isLoggedIn() {
		if name := a.authService.AccountName(ctx); name != "" {
			s = name + " "
		}
	}
	s += a.route
	return "(" + s + ")"
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("Welcome to shopwindow (type 'help' for commands)")

	// Resolve the persisted session up front so the prompt reflects it.
	a.guard.Activate(ctx)
	if a.isLoggedIn() {
		if name := a.authService.AccountName(ctx); name != "" {
			printlnFn("Welcome back,", name)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
