// Package views is the static view authorization table: which named views
// exist, in what order the tabs appear, and who may see each one.
package views

import (
	"github.com/dmitrijs2005/postboard/internal/identity"
	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/state"
)

type ViewID = state.ViewID

const (
	Home       ViewID = state.DefaultView
	Auth       ViewID = "auth"
	Profile    ViewID = "profile"
	CreatePost ViewID = "create-post"
	MyPosts    ViewID = "my-posts"
	Admin      ViewID = "admin"
)

// AuthRule decides who can see a view.
type AuthRule string

const (
	RuleAll   AuthRule = "all"
	RuleGuest AuthRule = "guest"
	RuleUser  AuthRule = "user"
	RuleAdmin AuthRule = "admin"
)

type Descriptor struct {
	ID    ViewID
	Label string
	Rule  AuthRule
}

var table = [...]Descriptor{
	{ID: Home, Label: "Home", Rule: RuleAll},
	{ID: Auth, Label: "Login/Register", Rule: RuleGuest},
	{ID: Profile, Label: "Profile", Rule: RuleUser},
	{ID: CreatePost, Label: "Create Post", Rule: RuleUser},
	{ID: MyPosts, Label: "My Posts", Rule: RuleUser},
	{ID: Admin, Label: "Admin", Rule: RuleAdmin},
}

// Table returns a copy of the descriptors in tab order.
func Table() []Descriptor {
	out := make([]Descriptor, len(table))
	copy(out, table[:])
	return out
}

// Lookup finds the descriptor for id.
func Lookup(id ViewID) (Descriptor, bool) {
	for _, d := range table {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Visible evaluates d's rule for u (nil means guest). Unknown rules are
// never visible.
func Visible(d Descriptor, u *models.User) bool {
	switch d.Rule {
	case RuleAll:
		return true
	case RuleGuest:
		return u == nil
	case RuleUser:
		return u != nil
	case RuleAdmin:
		return identity.IsAdmin(u)
	default:
		return false
	}
}

// VisibleFor lists the descriptors u can see, in tab order.
func VisibleFor(u *models.User) []Descriptor {
	out := make([]Descriptor, 0, len(table))
	for _, d := range table {
		if Visible(d, u) {
			out = append(out, d)
		}
	}
	return out
}

// ResolveView returns current when u may see it and Home otherwise.
func ResolveView(current ViewID, u *models.User) ViewID {
	if d, ok := Lookup(current); ok && Visible(d, u) {
		return current
	}
	return Home
}
