package cli

import "context"

// Root prints the welcome line and the first page, then runs the REPL on
// a.reader.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to postboard (type 'help' for commands)")
	a.svc.Refresh(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}
