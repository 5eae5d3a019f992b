package cli

import (
	"context"

	"github.com/dmitrijs2005/postboard/internal/services"
)

// The get* variables are indirections over the input helpers so tests can
// script answers.
var (
	getSimpleText   = GetSimpleText
	getDefaultText  = GetDefaultText
	getOptionalText = GetOptionalText
	getPassword     = GetPassword
	getMultiline    = GetMultiline
)

// Register prompts for name, email and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	return a.svc.Register(ctx, services.RegisterForm{Name: name, Email: email, Password: string(password)})
}

// Login prompts for email and password.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	return a.svc.Login(ctx, services.LoginForm{Email: email, Password: string(password)})
}

func (a *App) Logout(ctx context.Context) error {
	return a.svc.Logout(ctx)
}

// EditProfile prompts with the current values. Empty answers keep them,
// ClearToken empties avatar or bio.
func (a *App) EditProfile(ctx context.Context) error {
	user := a.svc.SessionUser()
	if user == nil {
		printlnFn("Log in to edit your profile")
		return nil
	}

	name, err := getDefaultText(a.reader, "Name", user.Name, a.out)
	if err != nil {
		return err
	}
	avatar, err := getOptionalText(a.reader, "Avatar URL", user.Avatar, a.out)
	if err != nil {
		return err
	}
	bio, err := getOptionalText(a.reader, "Bio", user.Bio, a.out)
	if err != nil {
		return err
	}

	return a.svc.UpdateProfile(ctx, services.ProfileForm{Name: name, Avatar: avatar, Bio: bio})
}
