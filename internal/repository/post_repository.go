package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/maheshrc27/nexus/internal/models"
)

var postColumns = []string{
	"id", "user_id", "content", "media_urls", "platforms", "status",
	"scheduled_at", "published_at", "error_message", "created_at",
}

func (s *postgresStorage) selectPosts() sq.SelectBuilder {
	return s.sb.Select(postColumns...).From("posts")
}

func (s *postgresStorage) ListPosts(ctx context.Context, userID string) ([]*models.Post, error) {
	posts := []*models.Post{}
	q := s.selectPosts().Where(sq.Eq{"user_id": userID}).OrderBy("created_at DESC")
	if err := s.selectRows(ctx, &posts, q, "list", "posts"); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postgresStorage) GetPost(ctx context.Context, id string) (*models.Post, bool, error) {
	var post models.Post
	found, err := s.get(ctx, &post, s.selectPosts().Where(sq.Eq{"id": id}), "get", "posts")
	if err != nil || !found {
		return nil, false, err
	}
	return &post, true, nil
}

func (s *postgresStorage) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	p := *post
	p.ID = uuid.NewString()
	p.CreatedAt = now()
	if p.Status == "" {
		p.Status = models.PostStatusDraft
	}
	if p.MediaURLs == nil {
		p.MediaURLs = models.StringList{}
	}

	q := s.sb.Insert("posts").Columns(postColumns...).Values(
		p.ID, p.UserID, p.Content, p.MediaURLs, p.Platforms, p.Status,
		p.ScheduledAt, p.PublishedAt, p.ErrorMessage, p.CreatedAt,
	)
	if _, err := s.exec(ctx, q, "insert", "posts"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *postgresStorage) UpdatePost(ctx context.Context, id string, update models.PostUpdate) (*models.Post, bool, error) {
	if update.IsEmpty() {
		return s.GetPost(ctx, id)
	}

	var post models.Post
	q := s.sb.Update("posts").
		SetMap(update.Columns()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(postColumns, ", "))
	found, err := s.get(ctx, &post, q, "update", "posts")
	if err != nil || !found {
		return nil, false, err
	}
	return &post, true, nil
}

func (s *postgresStorage) DeletePost(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "posts", id)
}

func (s *postgresStorage) GetScheduledPosts(ctx context.Context, userID string) ([]*models.Post, error) {
	posts := []*models.Post{}
	q := s.selectPosts().
		Where(sq.Eq{"user_id": userID, "status": models.PostStatusScheduled}).
		OrderBy("scheduled_at ASC")
	if err := s.selectRows(ctx, &posts, q, "list scheduled", "posts"); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postgresStorage) GetRecentPosts(ctx context.Context, userID string, limit int) ([]*models.Post, error) {
	posts := []*models.Post{}
	q := s.selectPosts().
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(recentLimit(limit)))
	if err := s.selectRows(ctx, &posts, q, "list recent", "posts"); err != nil {
		return nil, err
	}
	return posts, nil
}
