package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/postboard/internal/config"
	"github.com/dmitrijs2005/postboard/internal/identity"
	"github.com/dmitrijs2005/postboard/internal/logging"
	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/state"
	"github.com/dmitrijs2005/postboard/internal/store/memory"
	"github.com/dmitrijs2005/postboard/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPasswords makes getPassword hand out pws in order.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) {
		require.NotEmpty(t, pws, "unexpected password prompt")
		pw := pws[0]
		pws = pws[1:]
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func newTestApp(t *testing.T, s *memory.Store, input string) (*App, *bytes.Buffer) {
	t.Helper()
	capturePrintln(t)

	st, err := state.Load(context.Background(), s)
	require.NoError(t, err)

	var out bytes.Buffer
	cfg := &config.Config{StorageDriver: config.DriverMemory}
	a := newApp(cfg, s, st, identity.Plaintext{}, logging.Discard(), rdr(input), &out, PlainStyles())
	return a, &out
}

func TestApp_RegisterPostAndBrowse(t *testing.T) {
	stubPasswords(t, "pa")
	s := memory.New()

	a, out := newTestApp(t, s, strings.Join([]string{
		"register", "Ann", "ann@example.com",
		"post", "Hello", "", "world", "", "published",
		"home",
		"exit",
	}, "\n")+"\n")

	a.Run(context.Background())

	st, err := state.Load(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, st.Users, 1)
	assert.Equal(t, models.RoleAdmin, st.Users[0].Role)
	require.Len(t, st.Posts, 1)
	assert.Equal(t, "Hello", st.Posts[0].Title)
	assert.Equal(t, "world", st.Posts[0].Content)
	assert.Equal(t, models.StatusPublished, st.Posts[0].Status)
	assert.Equal(t, st.Users[0].ID, st.SessionID())

	rendered := out.String()
	assert.Contains(t, rendered, "Ann (admin) (logout)")
	assert.Contains(t, rendered, "by Ann")
	assert.Equal(t, views.Home, a.svc.State().View)
}

func TestApp_EditProfileKeepsEmptyAnswers(t *testing.T) {
	stubPasswords(t, "pa")
	s := memory.New()

	a, out := newTestApp(t, s, strings.Join([]string{
		"register", "Ann", "ann@example.com",
		"profile-edit", "", "https://img.example.com/a.png", "hello there",
		"exit",
	}, "\n")+"\n")

	a.Run(context.Background())

	u := a.svc.SessionUser()
	require.NotNil(t, u)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "https://img.example.com/a.png", u.Avatar)
	assert.Equal(t, "hello there", u.Bio)
	assert.Contains(t, out.String(), "✓ Profile updated")
}

func TestApp_LoginFailureAlertsAndGuestLike(t *testing.T) {
	stubPasswords(t, "pa", "wrong")
	s := memory.New()

	a, out := newTestApp(t, s, strings.Join([]string{
		"register", "Ann", "ann@example.com",
		"post", "Hello", "", "world", "", "published",
		"logout",
		"login", "ann@example.com",
		"exit",
	}, "\n")+"\n")
	a.Run(context.Background())

	assert.Contains(t, out.String(), "! Incorrect email or password")
	assert.Nil(t, a.svc.SessionUser())

	id := a.svc.State().Posts[0].ID
	require.Error(t, a.LikePost(context.Background(), id))
	assert.Contains(t, out.String(), "! Log in to like posts")
	assert.Empty(t, a.svc.State().Posts[0].Likes)
}

func TestApp_EditAndDeleteOwnPost(t *testing.T) {
	stubPasswords(t, "pa")
	s := memory.New()

	a, _ := newTestApp(t, s, strings.Join([]string{
		"register", "Ann", "ann@example.com",
		"post", "Hello", "", "world", "", "",
	}, "\n")+"\n")
	ctx := context.Background()
	a.Root(ctx)

	require.Len(t, a.svc.State().Posts, 1)
	post := a.svc.State().Posts[0]
	assert.Equal(t, models.StatusDraft, post.Status)

	a.reader = rdr("Hello again\n\n\npublished\n")
	require.NoError(t, a.EditPost(ctx, post.ID))
	assert.Equal(t, "Hello again", post.Title)
	assert.Equal(t, "world", post.Content, "empty content keeps the current text")
	assert.Equal(t, models.StatusPublished, post.Status)

	require.NoError(t, a.EditPost(ctx, "missing"))

	require.NoError(t, a.DeletePost(ctx, post.ID))
	assert.Empty(t, a.svc.State().Posts)
}

func TestApp_NavigateUnknownViewIsIgnored(t *testing.T) {
	a, _ := newTestApp(t, memory.New(), "")
	ctx := context.Background()

	require.NoError(t, a.Navigate(ctx, "nowhere"))
	assert.Equal(t, views.Home, a.svc.State().View)

	require.NoError(t, a.Navigate(ctx, "admin"))
	assert.Equal(t, views.Home, a.svc.State().View, "guests are sent back home on render")
}

func TestGetStatus(t *testing.T) {
	stubPasswords(t, "pa")
	a, _ := newTestApp(t, memory.New(), "Ann\nann@example.com\n")

	assert.Equal(t, "Guest", a.getStatus())
	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "Ann (admin)", a.getStatus())
}

func TestApp_EditProfileClearsOptionalFields(t *testing.T) {
	stubPasswords(t, "pa")

	a, _ := newTestApp(t, memory.New(), strings.Join([]string{
		"register", "Ann", "ann@example.com",
		"profile-edit", "", "https://img.example.com/a.png", "hello",
		"profile-edit", "", ClearToken, ClearToken,
		"exit",
	}, "\n")+"\n")

	a.Run(context.Background())

	u := a.svc.SessionUser()
	require.NotNil(t, u)
	assert.Equal(t, "Ann", u.Name)
	assert.Empty(t, u.Avatar)
	assert.Empty(t, u.Bio)
}

func TestApp_EditPostOpensFormAndClearsImage(t *testing.T) {
	stubPasswords(t, "pa")

	a, _ := newTestApp(t, memory.New(), strings.Join([]string{
		"register", "Ann", "ann@example.com",
		"post", "Hello", "https://img.example.com/x.png", "world", "", "published",
	}, "\n")+"\n")
	ctx := context.Background()
	a.Root(ctx)

	post := a.svc.State().Posts[0]
	require.Equal(t, "https://img.example.com/x.png", post.Image)

	var seen []views.ViewID
	a.svc.Subscribe(func(context.Context) { seen = append(seen, a.svc.State().View) })

	a.reader = rdr("\n" + ClearToken + "\n\n\n")
	require.NoError(t, a.EditPost(ctx, post.ID))

	assert.Empty(t, post.Image)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "world", post.Content)
	assert.Equal(t, models.StatusPublished, post.Status)
	assert.Equal(t, []views.ViewID{views.CreatePost, views.MyPosts}, seen)
}

func TestApp_EditPostAsGuestDoesNotNavigate(t *testing.T) {
	a, _ := newTestApp(t, memory.New(), "")
	ctx := context.Background()

	var seen []views.ViewID
	a.svc.Subscribe(func(context.Context) { seen = append(seen, a.svc.State().View) })

	require.NoError(t, a.EditPost(ctx, "missing"))
	assert.Empty(t, seen)
}
