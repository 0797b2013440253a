package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/maheshrc27/nexus/internal/models"
)

var analyticsColumns = []string{
	"id", "user_id", "post_id", "platform", "likes", "comments", "shares", "views",
	"engagement_rate", "recorded_at",
}

func (s *postgresStorage) listAnalytics(ctx context.Context, where sq.Sqlizer, op string) ([]*models.Analytics, error) {
	rows := []*models.Analytics{}
	q := s.sb.Select(analyticsColumns...).From("analytics").Where(where).OrderBy("recorded_at DESC")
	if err := s.selectRows(ctx, &rows, q, op, "analytics"); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *postgresStorage) ListAnalytics(ctx context.Context, userID string) ([]*models.Analytics, error) {
	return s.listAnalytics(ctx, sq.Eq{"user_id": userID}, "list")
}

func (s *postgresStorage) ListAnalyticsForPost(ctx context.Context, postID string) ([]*models.Analytics, error) {
	return s.listAnalytics(ctx, sq.Eq{"post_id": postID}, "list by post")
}

func (s *postgresStorage) GetAnalyticsByPlatform(ctx context.Context, userID, platform string) ([]*models.Analytics, error) {
	return s.listAnalytics(ctx, sq.Eq{"user_id": userID, "platform": platform}, "list by platform")
}

func (s *postgresStorage) CreateAnalytics(ctx context.Context, a *models.Analytics) (*models.Analytics, error) {
	row := *a
	row.ID = uuid.NewString()
	row.RecordedAt = now()

	q := s.sb.Insert("analytics").Columns(analyticsColumns...).Values(
		row.ID, row.UserID, row.PostID, row.Platform, row.Likes, row.Comments, row.Shares, row.Views,
		row.EngagementRate, row.RecordedAt,
	)
	if _, err := s.exec(ctx, q, "insert", "analytics"); err != nil {
		return nil, err
	}
	return &row, nil
}
