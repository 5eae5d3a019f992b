package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/postboard/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	admin    bool
	err      error

	calls []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool                  { return f.loggedIn }
func (f *fakeExec) isAdmin() bool                     { return f.admin }
func (f *fakeExec) Show(context.Context) error        { return f.record("show") }
func (f *fakeExec) Register(context.Context) error    { return f.record("register") }
func (f *fakeExec) Logout(context.Context) error      { f.loggedIn = false; return f.record("logout") }
func (f *fakeExec) EditProfile(context.Context) error { return f.record("profile-edit") }
func (f *fakeExec) CreatePost(context.Context) error  { return f.record("post") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Navigate(_ context.Context, view string) error {
	return f.record("view:" + view)
}
func (f *fakeExec) EditPost(_ context.Context, id string) error   { return f.record("edit:" + id) }
func (f *fakeExec) DeletePost(_ context.Context, id string) error { return f.record("delete:" + id) }
func (f *fakeExec) LikePost(_ context.Context, id string) error   { return f.record("like:" + id) }
func (f *fakeExec) CommentPost(_ context.Context, id string) error {
	return f.record("comment:" + id)
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	input := rdr("help\nlogin\nshow\nview admin\nmy-posts\nregister\nprofile-edit\npost\n" +
		"edit p1\ndelete p2\nlike p3\ncomment p4\nlogout\nexit\nshow\n")

	runREPL(context.Background(), exec, func() string { return "status" }, input)

	assert.Equal(t, []string{
		"login", "show", "view:admin", "view:my-posts", "register", "profile-edit", "post",
		"edit:p1", "delete:p2", "like:p3", "comment:p4", "logout",
	}, exec.calls)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("like\nview\nedit a b\nfoobar\n\nquit\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: like <id>\n")
	assert.Contains(t, *lines, "Usage: view <id>\n")
	assert.Contains(t, *lines, "Usage: edit <id>\n")
	assert.Contains(t, *lines, "Unknown command: foobar\n")
	assert.Contains(t, *lines, "Bye!\n")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("like p1"))

	assert.Equal(t, []string{"like:p1"}, exec.calls)
}

func TestRunREPL_HelpDependsOnRole(t *testing.T) {
	tests := []struct {
		name     string
		exec     *fakeExec
		contains string
		missing  string
	}{
		{"guest", &fakeExec{}, "register", "logout"},
		{"user", &fakeExec{loggedIn: true}, "my-posts", "admin"},
		{"admin", &fakeExec{loggedIn: true, admin: true}, "admin", "register"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := capturePrintln(t)
			runREPL(context.Background(), tt.exec, func() string { return "s" }, rdr("help\nexit\n"))

			var help string
			for _, l := range *lines {
				if len(l) > 9 && l[:9] == "Available" {
					help = l
				}
			}
			assert.Contains(t, help, tt.contains)
			assert.NotContains(t, help, tt.missing)
		})
	}
}

func TestReport(t *testing.T) {
	lines := capturePrintln(t)

	report(nil)
	report(fmt.Errorf("%w: title is required", common.ErrValidation))
	report(common.ErrDuplicateEmail)
	report(common.ErrUnauthorized)
	report(common.ErrInvalidCredentials)
	assert.Empty(t, *lines)

	report(errors.New("disk full"))
	assert.Equal(t, []string{"Error: disk full\n"}, *lines)
}
