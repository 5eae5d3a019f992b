// Package models defines the postboard domain records and their persisted
// JSON shape.
package models

// Role is the authorization class of a User.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Status is the publication state of a Post.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// User is a registered account. Email is unique across users.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	Role     Role   `json:"role"`
}

// Post is authored by the user referenced by UserID.
//
// Likes holds user ids, each at most once, in the order they liked.
// Comments are kept in insertion order.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Content   string    `json:"content"`
	Status    Status    `json:"status"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	UpdatedAt string    `json:"updatedAt"`
}

// Comment is immutable once appended. By is a snapshot of the author's
// display name at the time of writing.
type Comment struct {
	By        string `json:"by"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// LikedBy reports whether userID is already in the post's likes.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the post.
func (p *Post) Clone() *Post {
	c := *p
	c.Likes = append(make([]string, 0, len(p.Likes)), p.Likes...)
	c.Comments = append(make([]Comment, 0, len(p.Comments)), p.Comments...)
	return &c
}

// Normalize replaces nil slices with empty ones so likes and comments
// always serialize as JSON arrays.
func (p *Post) Normalize() {
	if p.Likes == nil {
		p.Likes = []string{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}
