package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Fprintln

type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	List(ctx context.Context) error
}

// runREPL reads one command per line and dispatches it to a:
//
//	Not logged in:  help, register, login, exit | quit
//	Logged in:      help, add [title], (l)ist, logout, exit | quit
//
// Commands share reader with the prompts they issue. Handlers report their
// own errors, the loop only stops on EOF, exit or ctx cancellation.
func runREPL(ctx context.Context, a execIface, statusFn func() string, w io.Writer, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "todo %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "add", "l", "list", "logout":
				printlnFn(w, "Please login first")
				continue
			}
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(w, "Available commands: add [title], (l)ist, logout, exit")
			} else {
				printlnFn(w, "Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "add":
			_ = a.Add(ctx, args)

		case "l", "list":
			_ = a.List(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn(w, "Bye!")
			return

		default:
			printlnFn(w, "Unknown command:", cmd)
		}
	}
}
