package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/render"
	"github.com/dmitrijs2005/postboard/internal/views"
)

// presenter draws a render.Page. Only the visible section is printed.
type presenter struct {
	w      io.Writer
	styles Styles
}

func newPresenter(w io.Writer, styles Styles) *presenter {
	return &presenter{w: w, styles: styles}
}

func (p *presenter) Present(page render.Page) {
	var b strings.Builder

	b.WriteString(p.header(page))
	b.WriteString("\n\n")

	for _, sec := range page.Sections {
		if !sec.Visible {
			continue
		}
		switch sec.ID {
		case views.Home:
			b.WriteString(p.feed(page.Feed))
		case views.Auth:
			b.WriteString(p.styles.Muted.Render("Type 'login' to sign in or 'register' to create an account."))
		case views.Profile:
			b.WriteString(p.profile(page.ProfileForm))
		case views.CreatePost:
			b.WriteString(p.styles.Muted.Render("Type 'post' to write a new post."))
		case views.MyPosts:
			b.WriteString(p.myPosts(page.MyPosts))
		case views.Admin:
			b.WriteString(p.admin(page.Admin))
		}
		b.WriteString("\n")
	}

	fmt.Fprintln(p.w, b.String())
}

func (p *presenter) header(page render.Page) string {
	tabs := make([]string, 0, len(page.Tabs))
	for _, t := range page.Tabs {
		if t.Active {
			tabs = append(tabs, p.styles.ActiveTab.Render("["+t.Label+"]"))
		} else {
			tabs = append(tabs, p.styles.Tab.Render(t.Label))
		}
	}

	session := p.styles.Session.Render(page.Session.Label())
	if page.ShowLogout {
		session += " " + p.styles.Muted.Render("(logout)")
	}

	return p.styles.Title.Render("postboard") + "  " + strings.Join(tabs, " | ") + "\n" + session
}

func (p *presenter) feed(posts []render.FeedPost) string {
	if len(posts) == 0 {
		return p.styles.Muted.Render("No posts yet.")
	}

	cards := make([]string, 0, len(posts))
	for _, post := range posts {
		var b strings.Builder
		fmt.Fprintf(&b, "%s  %s\n", p.styles.Bold.Render(post.Title), p.styles.Muted.Render("#"+post.ID))
		fmt.Fprintf(&b, "%s\n", p.styles.Muted.Render("by "+post.Author+" · "+post.UpdatedAt))
		if post.Image != "" {
			fmt.Fprintf(&b, "[image] %s\n", post.Image)
		}
		fmt.Fprintf(&b, "%s\n", post.Content)
		fmt.Fprintf(&b, "♥ %d  comments %d", post.Likes, len(post.Comments))
		for _, c := range post.Comments {
			fmt.Fprintf(&b, "\n  %s: %s %s", p.styles.Bold.Render(c.By), c.Text, p.styles.Muted.Render(c.CreatedAt))
		}
		if post.CanComment {
			fmt.Fprintf(&b, "\n%s", p.styles.Muted.Render("like "+post.ID+" · comment "+post.ID))
		}
		cards = append(cards, p.styles.Card.Render(b.String()))
	}
	return strings.Join(cards, "\n")
}

func (p *presenter) profile(form render.ProfileForm) string {
	lines := []string{
		"Name:   " + form.Name,
		"Avatar: " + form.Avatar,
		"Bio:    " + form.Bio,
		p.styles.Muted.Render("Type 'profile-edit' to change."),
	}
	return strings.Join(lines, "\n")
}

func (p *presenter) status(s models.Status) string {
	if s == models.StatusPublished {
		return p.styles.Published.Render(string(s))
	}
	return p.styles.Draft.Render(string(s))
}

func (p *presenter) myPosts(posts []render.OwnPost) string {
	if len(posts) == 0 {
		return p.styles.Muted.Render("You have no posts yet.")
	}

	lines := make([]string, 0, len(posts))
	for _, post := range posts {
		lines = append(lines, fmt.Sprintf("%s %s [%s] %s\n  %s\n  %s",
			p.styles.Muted.Render("#"+post.ID),
			p.styles.Bold.Render(post.Title),
			p.status(post.Status),
			p.styles.Muted.Render(post.UpdatedAt),
			post.Excerpt,
			p.styles.Muted.Render("edit "+post.ID+" · delete "+post.ID),
		))
	}
	return strings.Join(lines, "\n")
}

func (p *presenter) admin(panel *render.AdminPanel) string {
	if panel == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d)\n", p.styles.Bold.Render("Users"), panel.UserCount)
	for _, u := range panel.Users {
		fmt.Fprintf(&b, "  %-20s %-30s %s\n", u.Name, u.Email, u.Role)
	}
	fmt.Fprintf(&b, "%s (%d)  likes=%d comments=%d\n", p.styles.Bold.Render("Posts"),
		panel.PostCount, panel.TotalLikes, panel.TotalComments)
	for _, post := range panel.Posts {
		fmt.Fprintf(&b, "  %-30s %-10s likes=%d comments=%d\n", post.Title, post.Status, post.Likes, post.Comments)
	}
	return strings.TrimRight(b.String(), "\n")
}
