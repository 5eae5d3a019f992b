package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/postboard/internal/common"
	"github.com/dmitrijs2005/postboard/internal/views"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. *App satisfies it;
// tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Show(ctx context.Context) error
	Navigate(ctx context.Context, view string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	EditProfile(ctx context.Context) error
	CreatePost(ctx context.Context) error
	EditPost(ctx context.Context, id string) error
	DeletePost(ctx context.Context, id string) error
	LikePost(ctx context.Context, id string) error
	CommentPost(ctx context.Context, id string) error
}

func helpText(a execIface) string {
	switch {
	case a.isAdmin():
		return "Available commands: show, view <id>, home, profile, create-post, my-posts, admin, profile-edit, post, edit <id>, delete <id>, like <id>, comment <id>, logout, exit"
	case a.isLoggedIn():
		return "Available commands: show, view <id>, home, profile, create-post, my-posts, profile-edit, post, edit <id>, delete <id>, like <id>, comment <id>, logout, exit"
	default:
		return "Available commands: show, view <id>, home, auth, register, login, like <id>, exit"
	}
}

// idCommands take exactly one post id.
var idCommands = map[string]func(execIface, context.Context, string) error{
	"edit":    execIface.EditPost,
	"delete":  execIface.DeletePost,
	"like":    execIface.LikePost,
	"comment": execIface.CommentPost,
}

// runREPL reads one command per line from reader and dispatches it to a.
// It returns on EOF or "exit"/"quit".
//
// Handlers that fail after the notifier already told the user (validation,
// duplicate email, bad credentials, guest like) are not reported again.
// Other errors are printed and the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("pb %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a))

		case "show":
			report(a.Show(ctx))

		case "view":
			if len(args) != 1 {
				printlnFn("Usage: view <id>")
				continue
			}
			report(a.Navigate(ctx, args[0]))

		case string(views.Home), string(views.Auth), string(views.Profile),
			string(views.CreatePost), string(views.MyPosts), string(views.Admin):
			report(a.Navigate(ctx, cmd))

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "profile-edit":
			report(a.EditProfile(ctx))

		case "post":
			report(a.CreatePost(ctx))

		case "edit", "delete", "like", "comment":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			report(idCommands[cmd](a, ctx, args[0]))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err == nil || alreadyShown(err) {
		return
	}
	printlnFn("Error:", err)
}

func alreadyShown(err error) bool {
	return errors.Is(err, common.ErrValidation) ||
		errors.Is(err, common.ErrDuplicateEmail) ||
		errors.Is(err, common.ErrInvalidCredentials) ||
		errors.Is(err, common.ErrUnauthorized)
}
