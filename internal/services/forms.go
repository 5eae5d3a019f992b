package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/postboard/internal/common"
	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/go-playground/validator/v10"
)

// Form structs carry user-entered fields. The form tag is the field name
// shown to the user.

type RegisterForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type ProfileForm struct {
	Name   string `form:"name" validate:"required"`
	Avatar string `form:"avatar" validate:"omitempty,url"`
	Bio    string `form:"bio"`
}

// PostForm creates a post when PostID is empty and edits it otherwise.
type PostForm struct {
	PostID  string        `form:"postId"`
	Title   string        `form:"title" validate:"required"`
	Image   string        `form:"image" validate:"omitempty,url"`
	Content string        `form:"content" validate:"required"`
	Status  models.Status `form:"status" validate:"oneof=draft published"`
}

type CommentForm struct {
	Text string `form:"comment" validate:"required"`
}

// Passwords are never trimmed.

func (f *RegisterForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
}

func (f *LoginForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

func (f *ProfileForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Avatar = strings.TrimSpace(f.Avatar)
	f.Bio = strings.TrimSpace(f.Bio)
}

func (f *PostForm) normalize() {
	f.PostID = strings.TrimSpace(f.PostID)
	f.Title = strings.TrimSpace(f.Title)
	f.Image = strings.TrimSpace(f.Image)
	f.Content = strings.TrimSpace(f.Content)
	f.Status = models.Status(strings.TrimSpace(string(f.Status)))
	if f.Status == "" {
		f.Status = models.StatusDraft
	}
}

func (f *CommentForm) normalize() {
	f.Text = strings.TrimSpace(f.Text)
}

var formValidate *validator.Validate

func init() {
	formValidate = validator.New(validator.WithRequiredStructEnabled())
	formValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
}

// validateForm alerts and returns an ErrValidation-wrapped error when form
// breaks its rules.
func (s *Service) validateForm(ctx context.Context, form any) error {
	err := formValidate.Struct(form)
	if err == nil {
		return nil
	}

	msg := describe(err)
	s.notifier.Alert(ctx, msg)
	return fmt.Errorf("%w: %s", common.ErrValidation, msg)
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email")
		case "url":
			parts = append(parts, fe.Field()+" must be a URL")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
