package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context) error
	Users(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Gender(ctx context.Context, facet string) error
	Open(ctx context.Context, idArg string) error
	Image(ctx context.Context, idxArg string) error
	CloseOverlay(ctx context.Context) error
	Page(ctx context.Context, arg string) error
}

// runREPL starts a simple read–eval–print loop for the catalog browser.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - products | users      — open a catalog view (fetches the list)
//	  - search <text>         — filter the current view
//	  - gender <all|male|female> — facet filter on the users view
//	  - open | show <id>      — product detail overlay
//	  - image <n>             — pick an image inside the open overlay
//	  - close                 — close the overlay
//	  - page <n> | next | prev — page through the filtered list
//	  - logout, help, exit | quit
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sw %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: products, users, search <text>, gender <all|male|female>, open <id>, image <n>, close, page <n>, next, prev, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "products":
			_ = a.Products(ctx)

		case "users":
			_ = a.Users(ctx)

		case "search":
			// keep spaces inside the query
			q := strings.TrimSpace(strings.TrimPrefix(line, "search"))
			_ = a.Search(ctx, q)

		case "gender":
			if len(args) == 0 {
				printlnFn("Usage: gender <all|male|female>")
				continue
			}
			_ = a.Gender(ctx, args[0])

		case "open", "show":
			if len(args) == 0 {
				printlnFn("Usage:", cmd, "<id>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "image":
			if len(args) == 0 {
				printlnFn("Usage: image <n>")
				continue
			}
			_ = a.Image(ctx, args[0])

		case "close":
			_ = a.CloseOverlay(ctx)

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.Page(ctx, args[0])

		case "next", "prev":
			_ = a.Page(ctx, cmd)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
