package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/render"
	"github.com/dmitrijs2005/postboard/internal/views"
	"github.com/stretchr/testify/assert"
)

func present(page render.Page) string {
	var buf bytes.Buffer
	newPresenter(&buf, PlainStyles()).Present(page)
	return buf.String()
}

func sections(active views.ViewID) []render.Section {
	out := make([]render.Section, 0, len(views.Table()))
	for _, d := range views.Table() {
		out = append(out, render.Section{ID: d.ID, Visible: d.ID == active})
	}
	return out
}

func TestPresenter_GuestEmptyFeed(t *testing.T) {
	out := present(render.Page{
		Tabs: []render.Tab{
			{ID: views.Home, Label: "Home", Active: true},
			{ID: views.Auth, Label: "Login/Register"},
		},
		Session:  render.Session{Guest: true},
		View:     views.Home,
		Sections: sections(views.Home),
	})

	assert.Contains(t, out, "[Home] | Login/Register")
	assert.Contains(t, out, "Guest")
	assert.NotContains(t, out, "(logout)")
	assert.Contains(t, out, "No posts yet.")
}

func TestPresenter_FeedShowsOnlyActiveSection(t *testing.T) {
	out := present(render.Page{
		ShowLogout: true,
		Session:    render.Session{Name: "Ann", Role: models.RoleUser},
		View:       views.Home,
		Sections:   sections(views.Home),
		Feed: []render.FeedPost{{
			ID: "p1", Title: "Hello", Author: "Bob", UpdatedAt: "2026-03-01 12:00:00",
			Content: "world", Likes: 2, CanComment: true,
			Comments: []render.CommentView{{By: "Ann", Text: "nice", CreatedAt: "2026-03-01 12:05:00"}},
		}},
		MyPosts: []render.OwnPost{{ID: "mine", Title: "Secret draft"}},
	})

	assert.Contains(t, out, "Ann (user) (logout)")
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "by Bob")
	assert.Contains(t, out, "♥ 2  comments 1")
	assert.Contains(t, out, "Ann: nice")
	assert.Contains(t, out, "comment p1")
	assert.NotContains(t, out, "Secret draft", "hidden sections are not printed")
}

func TestPresenter_MyPosts(t *testing.T) {
	page := render.Page{View: views.MyPosts, Sections: sections(views.MyPosts)}
	assert.Contains(t, present(page), "You have no posts yet.")

	page.MyPosts = []render.OwnPost{{ID: "p2", Title: "Draft", Status: models.StatusDraft, Excerpt: "short..."}}
	out := present(page)
	assert.Contains(t, out, "#p2 Draft [draft]")
	assert.Contains(t, out, "short...")
	assert.Contains(t, out, "edit p2 · delete p2")
}

func TestPresenter_AdminAndProfile(t *testing.T) {
	out := present(render.Page{
		View:     views.Admin,
		Sections: sections(views.Admin),
		Admin: &render.AdminPanel{
			Users:     []render.AdminUser{{Name: "Ann", Email: "ann@example.com", Role: models.RoleAdmin}},
			Posts:     []render.AdminPost{{Title: "Hello", Status: models.StatusPublished, Likes: 2}},
			UserCount: 1, PostCount: 1, TotalLikes: 2,
		},
	})
	assert.Contains(t, out, "Users (1)")
	assert.Contains(t, out, "Posts (1)  likes=2 comments=0")
	assert.Contains(t, out, "ann@example.com")
	assert.Contains(t, out, "likes=2 comments=0")

	out = present(render.Page{
		View:        views.Profile,
		Sections:    sections(views.Profile),
		ProfileForm: render.ProfileForm{Name: "Ann", Bio: "boss"},
	})
	assert.True(t, strings.Contains(out, "Name:   Ann") && strings.Contains(out, "Bio:    boss"))
}
