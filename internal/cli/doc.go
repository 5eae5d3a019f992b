// Package cli provides the interactive postboard terminal client.
//
// NewApp opens the configured store, loads the board, and subscribes a
// presenter to the mutation service so every change redraws the page. The
// REPL is started via App.Run(ctx), which blocks until the user exits.
//
// Guests can browse the feed, register and log in. Members also manage
// their profile and posts, like and comment. The admin additionally sees
// the admin panel. Type 'help' inside the REPL for the commands available
// to the current session.
package cli
