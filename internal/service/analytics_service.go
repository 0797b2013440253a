package service

import (
	"context"

	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/transfer"
)

type AnalyticsService interface {
	List(ctx context.Context, userID string) ([]*models.Analytics, error)
	ByPlatform(ctx context.Context, userID, platform string) ([]*models.Analytics, error)
	ForPost(ctx context.Context, userID, postID string) ([]*models.Analytics, error)
	Record(ctx context.Context, userID string, req transfer.CreateAnalyticsRequest) (*models.Analytics, error)
}

type analyticsService struct {
	ar repository.AnalyticsRepository
	pr repository.PostRepository
}

func NewAnalyticsService(ar repository.AnalyticsRepository, pr repository.PostRepository) AnalyticsService {
	return &analyticsService{ar: ar, pr: pr}
}

func (s *analyticsService) checkPost(ctx context.Context, userID, postID string) error {
	post, exists, err := s.pr.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if !exists || post.UserID != userID {
		return ErrPostNotFound
	}
	return nil
}

func (s *analyticsService) List(ctx context.Context, userID string) ([]*models.Analytics, error) {
	return s.ar.ListAnalytics(ctx, userID)
}

func (s *analyticsService) ByPlatform(ctx context.Context, userID, platform string) ([]*models.Analytics, error) {
	if !models.IsPlatform(platform) {
		return nil, NewValidationError("Invalid platform %q", platform)
	}
	return s.ar.GetAnalyticsByPlatform(ctx, userID, platform)
}

func (s *analyticsService) ForPost(ctx context.Context, userID, postID string) ([]*models.Analytics, error) {
	if err := s.checkPost(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.ar.ListAnalyticsForPost(ctx, postID)
}

func (s *analyticsService) Record(ctx context.Context, userID string, req transfer.CreateAnalyticsRequest) (*models.Analytics, error) {
	if req.PostID != nil {
		if err := s.checkPost(ctx, userID, *req.PostID); err != nil {
			return nil, err
		}
	}
	return s.ar.CreateAnalytics(ctx, req.ToModel(userID))
}
