package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Next(ctx context.Context) error
	Reload(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context, name string) error
	Profile(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while logged out: help, register, login, exit.
// Commands while logged in: help, list, next, reload, search [query],
// show <name>, profile, deleteaccount, logout, exit.
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	fmt.Fprintln(w, "Pokedex CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(w, "pokedex (%s) > ", statusFn())
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
				fmt.Fprintln(w, "Available commands: (l)ist, next, reload, search [query], show <name>, profile, deleteaccount, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "next":
			_ = a.Next(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "search":
			// No argument clears the filter.
			_ = a.Search(ctx, strings.Join(args, " "))

		case "show":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: show <name>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "deleteaccount":
			_ = a.DeleteAccount(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
