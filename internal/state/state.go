// Package state holds the single authoritative in-memory snapshot of
// postboard: users, posts, the session and the selected view. It is rebuilt
// from a store.Store at startup and mirrored back by Persist.
package state

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/store"
)

// Store keys of the persisted layout.
const (
	KeyUsers         = "users"
	KeyPosts         = "posts"
	KeySessionUserID = "sessionUserId"
)

// ViewID names one of the fixed UI views. See package views.
type ViewID string

// DefaultView is selected at startup and whenever the current view becomes
// inaccessible.
const DefaultView ViewID = "home"

// State is owned by exactly one services.Service. Users and Posts are kept
// in creation order. View is never persisted.
type State struct {
	Users         []*models.User
	Posts         []*models.Post
	SessionUserID *string
	View          ViewID
}

// New returns an empty state on the default view.
func New() *State {
	return &State{
		Users: []*models.User{},
		Posts: []*models.Post{},
		View:  DefaultView,
	}
}

// Load rebuilds the state from s. Missing keys default to empty lists and a
// null session; undecodable values fail with common.ErrCorruptedData.
func Load(ctx context.Context, s store.Store) (*State, error) {
	users, err := store.GetJSON(ctx, s, KeyUsers, []*models.User{})
	if err != nil {
		return nil, err
	}
	posts, err := store.GetJSON(ctx, s, KeyPosts, []*models.Post{})
	if err != nil {
		return nil, err
	}
	session, err := store.GetJSON[*string](ctx, s, KeySessionUserID, nil)
	if err != nil {
		return nil, err
	}

	st := New()
	for _, u := range users {
		if u != nil {
			st.Users = append(st.Users, u)
		}
	}
	for _, p := range posts {
		if p != nil {
			p.Normalize()
			st.Posts = append(st.Posts, p)
		}
	}
	st.SessionUserID = session
	return st, nil
}

// Persist writes users, posts and sessionUserId to s in that order,
// overwriting whatever was there.
func (st *State) Persist(ctx context.Context, s store.Store) error {
	users, err := store.JSONEntry(KeyUsers, st.Users)
	if err != nil {
		return err
	}
	posts, err := store.JSONEntry(KeyPosts, st.Posts)
	if err != nil {
		return err
	}
	session, err := store.JSONEntry(KeySessionUserID, st.SessionUserID)
	if err != nil {
		return err
	}

	if err := store.Persist(ctx, s, users, posts, session); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}

// SetSession points the session at id; an empty id clears it.
func (st *State) SetSession(id string) {
	if id == "" {
		st.SessionUserID = nil
		return
	}
	st.SessionUserID = &id
}

// SessionID returns the session user id or "".
func (st *State) SessionID() string {
	if st.SessionUserID == nil {
		return ""
	}
	return *st.SessionUserID
}

func (st *State) UserByID(id string) *models.User {
	for _, u := range st.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UserByEmail matches email exactly, case included.
func (st *State) UserByEmail(email string) *models.User {
	for _, u := range st.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (st *State) PostByID(id string) *models.Post {
	for _, p := range st.Posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// OwnedPost returns the post only when userID owns it.
func (st *State) OwnedPost(id, userID string) *models.Post {
	p := st.PostByID(id)
	if p == nil || p.UserID != userID {
		return nil
	}
	return p
}

// RemovePost drops the post with id and reports whether it existed.
func (st *State) RemovePost(id string) bool {
	for i, p := range st.Posts {
		if p.ID == id {
			st.Posts = append(st.Posts[:i], st.Posts[i+1:]...)
			return true
		}
	}
	return false
}
