package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Exec(ctx context.Context, cmd string, args []string) error
}

// runREPL reads a line at a time from reader and hands the first word and
// the rest to a.Exec. Errors are printed and the loop continues. It returns
// on EOF, "exit" or "quit".
//
// Commands prompt on the same reader, so it must not be wrapped in another
// buffering layer.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("blog%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: blogs, blog, create, assign, edit, delete, comments, comment, uncomment, token, logout, health, exit")
			} else {
				printlnFn("Available commands: signup, login, blogs, blog, comments, health, exit")
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if err := a.Exec(ctx, cmd, parts[1:]); err != nil {
				printlnFn("Error:", err)
			}
		}
	}
}
