package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/postboard/internal/common"
	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/views"
)

// Register creates an account and logs it in. The very first account is
// the admin. A taken email (exact match) is rejected before anything
// changes.
func (s *Service) Register(ctx context.Context, form RegisterForm) error {
	form.normalize()
	if err := s.validateForm(ctx, form); err != nil {
		return err
	}

	if s.st.UserByEmail(form.Email) != nil {
		s.notifier.Alert(ctx, "This email is already registered")
		return common.ErrDuplicateEmail
	}

	sealed, err := s.creds.Seal(form.Password)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	role := models.RoleUser
	if len(s.st.Users) == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		ID:       s.newID(),
		Name:     form.Name,
		Email:    form.Email,
		Password: sealed,
		Role:     role,
	}
	s.st.Users = append(s.st.Users, user)
	s.st.SetSession(user.ID)
	s.st.View = views.Profile

	return s.commit(ctx, "register", "user_id", user.ID, "role", role)
}

// Login starts a session for the user whose email and password match.
func (s *Service) Login(ctx context.Context, form LoginForm) error {
	form.normalize()
	if err := s.validateForm(ctx, form); err != nil {
		return err
	}

	user := s.st.UserByEmail(form.Email)
	if user == nil || !s.creds.Match(user.Password, form.Password) {
		s.notifier.Alert(ctx, "Incorrect email or password")
		return common.ErrInvalidCredentials
	}

	s.st.SetSession(user.ID)
	s.st.View = views.Home

	return s.commit(ctx, "login", "user_id", user.ID)
}

// Logout clears the session. It is safe to call without one.
func (s *Service) Logout(ctx context.Context) error {
	prev := s.st.SessionID()
	s.st.SetSession("")
	s.st.View = views.Home

	return s.commit(ctx, "logout", "user_id", prev)
}

// UpdateProfile overwrites the session user's name, avatar and bio. It
// does nothing without a session.
func (s *Service) UpdateProfile(ctx context.Context, form ProfileForm) error {
	user := s.SessionUser()
	if user == nil {
		return nil
	}

	form.normalize()
	if err := s.validateForm(ctx, form); err != nil {
		return err
	}

	user.Name = form.Name
	user.Avatar = form.Avatar
	user.Bio = form.Bio

	if err := s.commit(ctx, "update_profile", "user_id", user.ID); err != nil {
		return err
	}
	s.notifier.Confirm(ctx, "Profile updated")
	return nil
}
