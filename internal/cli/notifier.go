package cli

import (
	"context"
	"fmt"
	"io"
)

// termNotifier prints service alerts and confirmations to the terminal.
type termNotifier struct {
	w      io.Writer
	styles Styles
}

func newNotifier(w io.Writer, styles Styles) *termNotifier {
	return &termNotifier{w: w, styles: styles}
}

func (n *termNotifier) Alert(_ context.Context, msg string) {
	fmt.Fprintln(n.w, n.styles.Error.Render("! "+msg))
}

func (n *termNotifier) Confirm(_ context.Context, msg string) {
	fmt.Fprintln(n.w, n.styles.Success.Render("✓ "+msg))
}
