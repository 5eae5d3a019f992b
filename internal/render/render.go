// Package render turns the domain state into a complete, presentation-free
// description of every UI region. The same state always renders the same
// Page.
package render

import (
	"github.com/dmitrijs2005/postboard/internal/identity"
	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/state"
	"github.com/dmitrijs2005/postboard/internal/views"
)

// ExcerptLength is how many runes of content the own-posts list shows.
const ExcerptLength = 180

// UnknownAuthor labels posts whose owner no longer resolves.
const UnknownAuthor = "Unknown"

type Tab struct {
	ID     views.ViewID
	Label  string
	Active bool
}

type Session struct {
	Guest bool
	Name  string
	Role  models.Role
}

// Label is "Guest" or "name (role)".
func (s Session) Label() string {
	if s.Guest {
		return "Guest"
	}
	return s.Name + " (" + string(s.Role) + ")"
}

type Section struct {
	ID      views.ViewID
	Visible bool
}

type ProfileForm struct {
	Name   string
	Avatar string
	Bio    string
}

type CommentView struct {
	By        string
	Text      string
	CreatedAt string
}

type FeedPost struct {
	ID         string
	Title      string
	Author     string
	UpdatedAt  string
	Image      string
	Content    string
	Likes      int
	Comments   []CommentView
	CanComment bool
}

type OwnPost struct {
	ID        string
	Title     string
	Status    models.Status
	UpdatedAt string
	Excerpt   string
}

type AdminUser struct {
	Name  string
	Email string
	Role  models.Role
}

type AdminPost struct {
	Title    string
	Status   models.Status
	Likes    int
	Comments int
}

// AdminPanel lists every user and post with board-wide totals.
type AdminPanel struct {
	Users []AdminUser
	Posts []AdminPost

	UserCount     int
	PostCount     int
	TotalLikes    int
	TotalComments int
}

// Page is one full render. Admin is nil unless the session user is an
// admin.
type Page struct {
	Tabs        []Tab
	ShowLogout  bool
	Session     Session
	View        views.ViewID
	Sections    []Section
	ProfileForm ProfileForm
	Feed        []FeedPost
	MyPosts     []OwnPost
	Admin       *AdminPanel
}

// Render recomputes the page for st. If st.View is not visible to the
// session user it is reset to home first.
func Render(st *state.State) Page {
	user := identity.SessionUser(st)

	if resolved := views.ResolveView(st.View, user); resolved != st.View {
		st.View = resolved
	}

	return Page{
		Tabs:        renderTabs(st.View, user),
		ShowLogout:  user != nil,
		Session:     renderSession(user),
		View:        st.View,
		Sections:    renderSections(st.View, user),
		ProfileForm: renderProfileForm(user),
		Feed:        renderFeed(st, user),
		MyPosts:     renderMyPosts(st, user),
		Admin:       renderAdmin(st, user),
	}
}

func renderTabs(current views.ViewID, user *models.User) []Tab {
	visible := views.VisibleFor(user)
	tabs := make([]Tab, 0, len(visible))
	for _, d := range visible {
		tabs = append(tabs, Tab{ID: d.ID, Label: d.Label, Active: d.ID == current})
	}
	return tabs
}

func renderSession(user *models.User) Session {
	if user == nil {
		return Session{Guest: true}
	}
	return Session{Name: user.Name, Role: user.Role}
}

func renderSections(current views.ViewID, user *models.User) []Section {
	table := views.Table()
	sections := make([]Section, 0, len(table))
	for _, d := range table {
		sections = append(sections, Section{
			ID:      d.ID,
			Visible: views.Visible(d, user) && d.ID == current,
		})
	}
	return sections
}

func renderProfileForm(user *models.User) ProfileForm {
	if user == nil {
		return ProfileForm{}
	}
	return ProfileForm{Name: user.Name, Avatar: user.Avatar, Bio: user.Bio}
}

func renderFeed(st *state.State, user *models.User) []FeedPost {
	feed := make([]FeedPost, 0)
	for i := len(st.Posts) - 1; i >= 0; i-- {
		p := st.Posts[i]
		if p.Status != models.StatusPublished {
			continue
		}

		author := UnknownAuthor
		if u := st.UserByID(p.UserID); u != nil {
			author = u.Name
		}

		comments := make([]CommentView, 0, len(p.Comments))
		for _, c := range p.Comments {
			comments = append(comments, CommentView{By: c.By, Text: c.Text, CreatedAt: c.CreatedAt})
		}

		feed = append(feed, FeedPost{
			ID:         p.ID,
			Title:      p.Title,
			Author:     author,
			UpdatedAt:  p.UpdatedAt,
			Image:      p.Image,
			Content:    p.Content,
			Likes:      len(p.Likes),
			Comments:   comments,
			CanComment: user != nil,
		})
	}
	return feed
}

func renderMyPosts(st *state.State, user *models.User) []OwnPost {
	own := make([]OwnPost, 0)
	if user == nil {
		return own
	}
	for i := len(st.Posts) - 1; i >= 0; i-- {
		p := st.Posts[i]
		if p.UserID != user.ID {
			continue
		}
		own = append(own, OwnPost{
			ID:        p.ID,
			Title:     p.Title,
			Status:    p.Status,
			UpdatedAt: p.UpdatedAt,
			Excerpt:   Excerpt(p.Content),
		})
	}
	return own
}

func renderAdmin(st *state.State, user *models.User) *AdminPanel {
	if !identity.IsAdmin(user) {
		return nil
	}

	panel := &AdminPanel{
		Users: make([]AdminUser, 0, len(st.Users)),
		Posts: make([]AdminPost, 0, len(st.Posts)),
	}
	for _, u := range st.Users {
		panel.Users = append(panel.Users, AdminUser{Name: u.Name, Email: u.Email, Role: u.Role})
	}
	for i := len(st.Posts) - 1; i >= 0; i-- {
		p := st.Posts[i]
		panel.Posts = append(panel.Posts, AdminPost{
			Title:    p.Title,
			Status:   p.Status,
			Likes:    len(p.Likes),
			Comments: len(p.Comments),
		})
		panel.TotalLikes += len(p.Likes)
		panel.TotalComments += len(p.Comments)
	}
	panel.UserCount = len(panel.Users)
	panel.PostCount = len(panel.Posts)
	return panel
}

// Excerpt keeps the first ExcerptLength runes of content followed by "...".
func Excerpt(content string) string {
	r := []rune(content)
	if len(r) > ExcerptLength {
		r = r[:ExcerptLength]
	}
	return string(r) + "..."
}
