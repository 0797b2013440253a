package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/transfer"
)

type PostService interface {
	List(ctx context.Context, userID string) ([]*models.Post, error)
	Recent(ctx context.Context, userID string, limit int) ([]*models.Post, error)
	Scheduled(ctx context.Context, userID string) ([]*models.Post, error)
	Create(ctx context.Context, userID string, req transfer.CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, userID, id string, req transfer.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, userID, id string) error
}

type postService struct {
	pr  repository.PostRepository
	now func() time.Time
}

func NewPostService(pr repository.PostRepository) PostService {
	return &postService{pr: pr, now: time.Now}
}

func (s *postService) owned(ctx context.Context, userID, id string) (*models.Post, error) {
	post, exists, err := s.pr.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists || post.UserID != userID {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postService) List(ctx context.Context, userID string) ([]*models.Post, error) {
	return s.pr.ListPosts(ctx, userID)
}

func (s *postService) Recent(ctx context.Context, userID string, limit int) ([]*models.Post, error) {
	return s.pr.GetRecentPosts(ctx, userID, limit)
}

func (s *postService) Scheduled(ctx context.Context, userID string) ([]*models.Post, error) {
	return s.pr.GetScheduledPosts(ctx, userID)
}

// Create stores a new post. Without scheduledAt the post is published
// immediately; with one it must lie in the future and the post is scheduled.
func (s *postService) Create(ctx context.Context, userID string, req transfer.CreatePostRequest) (*models.Post, error) {
	post := req.ToModel(userID)
	now := s.now().UTC()

	if post.ScheduledAt == nil {
		post.Status = models.PostStatusPublished
		post.PublishedAt = &now
	} else {
		if !post.ScheduledAt.After(now) {
			slog.Info("rejected post scheduled in the past", "user_id", userID)
			return nil, NewValidationError("Scheduled time must be in the future")
		}
		at := post.ScheduledAt.UTC()
		post.ScheduledAt = &at
		post.Status = models.PostStatusScheduled
	}

	return s.pr.CreatePost(ctx, post)
}

func (s *postService) Update(ctx context.Context, userID, id string, req transfer.UpdatePostRequest) (*models.Post, error) {
	existing, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	update := req.ToUpdate()
	now := s.now().UTC()

	status := existing.Status
	if update.Status != nil {
		status = *update.Status
	}
	scheduledAt := existing.ScheduledAt
	if update.ScheduledAt != nil {
		at := update.ScheduledAt.UTC()
		update.ScheduledAt = &at
		scheduledAt = &at
	}

	switch status {
	case models.PostStatusScheduled:
		if scheduledAt == nil {
			return nil, NewValidationError("scheduledAt is required for scheduled posts")
		}
		if update.ScheduledAt != nil && !scheduledAt.After(now) {
			return nil, NewValidationError("Scheduled time must be in the future")
		}
	case models.PostStatusPublished:
		if existing.PublishedAt == nil {
			update.PublishedAt = &now
		}
	}
	if status != models.PostStatusPublished && existing.PublishedAt != nil {
		update.ClearPublishedAt = true
	}

	updated, exists, err := s.pr.UpdatePost(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}
	return updated, nil
}

func (s *postService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	deleted, err := s.pr.DeletePost(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}
	return nil
}
