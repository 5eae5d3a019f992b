package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/postboard/internal/common"
	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/views"
)

// SavePost creates a post for the session user, or edits one of their own
// posts when form.PostID is set. An id that is missing or owned by someone
// else is a no-op.
func (s *Service) SavePost(ctx context.Context, form PostForm) error {
	user := s.SessionUser()
	if user == nil {
		return nil
	}

	form.normalize()
	if err := s.validateForm(ctx, form); err != nil {
		return err
	}

	if form.PostID != "" {
		post := s.st.OwnedPost(form.PostID, user.ID)
		if post == nil {
			s.log.Warn(ctx, "edit target not found", "op", "save_post", "post_id", form.PostID, "user_id", user.ID)
			return nil
		}

		post.Title = form.Title
		post.Image = form.Image
		post.Content = form.Content
		post.Status = form.Status
		post.UpdatedAt = s.stamp()
		s.st.View = views.MyPosts

		return s.commit(ctx, "edit_post", "post_id", post.ID)
	}

	post := &models.Post{
		ID:        s.newID(),
		UserID:    user.ID,
		Title:     form.Title,
		Image:     form.Image,
		Content:   form.Content,
		Status:    form.Status,
		Likes:     []string{},
		Comments:  []models.Comment{},
		UpdatedAt: s.stamp(),
	}
	s.st.Posts = append(s.st.Posts, post)
	s.st.View = views.MyPosts

	return s.commit(ctx, "create_post", "post_id", post.ID)
}

// EditablePost returns a copy of the session user's own post for
// pre-filling an edit form. Guests get ErrUnauthorized; a missing or
// foreign post is ErrNotFound.
func (s *Service) EditablePost(id string) (*models.Post, error) {
	user := s.SessionUser()
	if user == nil {
		return nil, common.ErrUnauthorized
	}
	post := s.st.OwnedPost(id, user.ID)
	if post == nil {
		return nil, fmt.Errorf("post %s: %w", id, common.ErrNotFound)
	}
	return post.Clone(), nil
}

// DeletePost removes one of the session user's own posts.
func (s *Service) DeletePost(ctx context.Context, id string) error {
	user := s.SessionUser()
	if user == nil {
		return nil
	}

	if s.st.OwnedPost(id, user.ID) == nil {
		s.log.Warn(ctx, "delete target not found", "op", "delete_post", "post_id", id, "user_id", user.ID)
		return nil
	}
	s.st.RemovePost(id)

	return s.commit(ctx, "delete_post", "post_id", id)
}

// feedPost returns the post only when it is published, i.e. reachable from
// the feed.
func (s *Service) feedPost(id string) *models.Post {
	post := s.st.PostByID(id)
	if post == nil || post.Status != models.StatusPublished {
		return nil
	}
	return post
}

// Like records the session user's like at most once on a published post.
// Guests are asked to log in.
func (s *Service) Like(ctx context.Context, postID string) error {
	user := s.SessionUser()
	if user == nil {
		s.notifier.Alert(ctx, "Log in to like posts")
		return common.ErrUnauthorized
	}

	post := s.feedPost(postID)
	if post == nil {
		s.log.Warn(ctx, "like target not found", "op", "like", "post_id", postID)
		return nil
	}

	if !post.LikedBy(user.ID) {
		post.Likes = append(post.Likes, user.ID)
	}
	post.UpdatedAt = s.stamp()

	return s.commit(ctx, "like", "post_id", post.ID, "user_id", user.ID)
}

// Comment appends a comment to a published post, signed with the session
// user's current name.
func (s *Service) Comment(ctx context.Context, postID string, form CommentForm) error {
	user := s.SessionUser()
	if user == nil {
		return nil
	}

	post := s.feedPost(postID)
	if post == nil {
		s.log.Warn(ctx, "comment target not found", "op", "comment", "post_id", postID)
		return nil
	}

	form.normalize()
	if err := s.validateForm(ctx, form); err != nil {
		return err
	}

	now := s.stamp()
	post.Comments = append(post.Comments, models.Comment{
		By:        user.Name,
		Text:      form.Text,
		CreatedAt: now,
	})
	post.UpdatedAt = now

	return s.commit(ctx, "comment", "post_id", post.ID, "user_id", user.ID)
}

// Navigate selects a view. Views the session cannot see fall back to home
// on the next render.
func (s *Service) Navigate(ctx context.Context, view views.ViewID) {
	s.st.View = view
	s.publish(ctx)
}
