package cli

import (
	"bufio"
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	a.mu.Lock()
	name, mode := a.userName, a.mode
	a.mu.Unlock()

	s := ""
	if name != "" {
		s = name + " "
	}
	if mode != "" {
		s += string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	a.printf("Welcome to chatsync (type 'help' for commands)\n")
	if !a.isLoggedIn() {
		if err := a.Login(ctx); err != nil {
			a.printf("error: %v\n", err)
		}
	}
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}
