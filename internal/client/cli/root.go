package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf(" (%s)", a.userName)
	}
	if a.isLoggedIn() {
		return " (token)"
	}
	return ""
}

// Root runs the interactive loop until EOF or exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to blogkeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
