package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/postboard/internal/common"

	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/services"
	"github.com/dmitrijs2005/postboard/internal/views"
)

func (a *App) Show(ctx context.Context) error {
	a.svc.Refresh(ctx)
	return nil
}

// Navigate switches to the named view. Views hidden from the session fall
// back to home on render.
func (a *App) Navigate(ctx context.Context, view string) error {
	d, ok := views.Lookup(views.ViewID(view))
	if !ok {
		printlnFn("Unknown view:", view)
		return nil
	}
	a.svc.Navigate(ctx, d.ID)
	return nil
}

// CreatePost switches to the post form and prompts for a new post.
func (a *App) CreatePost(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in to write posts")
		return nil
	}
	a.svc.Navigate(ctx, views.CreatePost)

	form, err := a.promptPost(&models.Post{Status: models.StatusDraft})
	if err != nil {
		return err
	}
	return a.svc.SavePost(ctx, form)
}

// EditPost switches to the post form and prompts with the post's current
// values. Empty answers keep them, ClearToken empties an optional field.
func (a *App) EditPost(ctx context.Context, id string) error {
	post, err := a.svc.EditablePost(id)
	switch {
	case errors.Is(err, common.ErrNotFound):
		printlnFn("You have no post", id)
		return nil
	case errors.Is(err, common.ErrUnauthorized):
		printlnFn("Log in to edit posts")
		return nil
	case err != nil:
		return err
	}
	a.svc.Navigate(ctx, views.CreatePost)

	form, err := a.promptPost(post)
	if err != nil {
		return err
	}
	form.PostID = post.ID
	return a.svc.SavePost(ctx, form)
}

func (a *App) promptPost(current *models.Post) (services.PostForm, error) {
	var form services.PostForm

	title, err := getDefaultText(a.reader, "Title", current.Title, a.out)
	if err != nil {
		return form, err
	}
	image, err := getOptionalText(a.reader, "Image URL", current.Image, a.out)
	if err != nil {
		return form, err
	}

	prompt := "Content"
	if current.Content != "" {
		prompt = "Content (leave empty to keep the current text)"
	}
	content, err := getMultiline(a.reader, prompt, a.out)
	if err != nil {
		return form, err
	}
	if content == "" {
		content = current.Content
	}

	status, err := getDefaultText(a.reader, "Status (draft or published)", string(current.Status), a.out)
	if err != nil {
		return form, err
	}

	form.Title = title
	form.Image = image
	form.Content = content
	form.Status = models.Status(status)
	return form, nil
}

func (a *App) DeletePost(ctx context.Context, id string) error {
	return a.svc.DeletePost(ctx, id)
}

func (a *App) LikePost(ctx context.Context, id string) error {
	return a.svc.Like(ctx, id)
}

// CommentPost prompts for the comment text.
func (a *App) CommentPost(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		printlnFn("Log in to comment")
		return nil
	}

	text, err := getSimpleText(a.reader, "Enter comment", a.out)
	if err != nil {
		return err
	}
	return a.svc.Comment(ctx, id, services.CommentForm{Text: text})
}
