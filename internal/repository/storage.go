package repository

import (
	"context"
	"errors"
	"time"

	"github.com/maheshrc27/nexus/internal/models"
)

const DefaultRecentLimit = 10

var (
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrForeignKey     = errors.New("referenced row does not exist")
)

type UserRepository interface {
	GetUser(ctx context.Context, id string) (*models.User, bool, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, bool, error)
	CreateUser(ctx context.Context, user *models.NewUser) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

type SocialProfileRepository interface {
	ListSocialProfiles(ctx context.Context, userID string) ([]*models.SocialProfile, error)
	GetSocialProfile(ctx context.Context, id string) (*models.SocialProfile, bool, error)
	CreateSocialProfile(ctx context.Context, profile *models.SocialProfile) (*models.SocialProfile, error)
	UpdateSocialProfile(ctx context.Context, id string, update models.SocialProfileUpdate) (*models.SocialProfile, bool, error)
	DeleteSocialProfile(ctx context.Context, id string) (bool, error)
	// ListExpiredSocialProfiles returns connected profiles whose token expired before the given time.
	ListExpiredSocialProfiles(ctx context.Context, before time.Time) ([]*models.SocialProfile, error)
}

type PostRepository interface {
	ListPosts(ctx context.Context, userID string) ([]*models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, bool, error)
	CreatePost(ctx context.Context, post *models.Post) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, update models.PostUpdate) (*models.Post, bool, error)
	DeletePost(ctx context.Context, id string) (bool, error)
	GetScheduledPosts(ctx context.Context, userID string) ([]*models.Post, error)
	GetRecentPosts(ctx context.Context, userID string, limit int) ([]*models.Post, error)
}

type ContentLibraryRepository interface {
	ListContentLibrary(ctx context.Context, userID string) ([]*models.ContentLibraryItem, error)
	GetContentLibraryItem(ctx context.Context, id string) (*models.ContentLibraryItem, bool, error)
	CreateContentLibraryItem(ctx context.Context, item *models.ContentLibraryItem) (*models.ContentLibraryItem, error)
	DeleteContentLibraryItem(ctx context.Context, id string) (bool, error)
}

type AnalyticsRepository interface {
	ListAnalytics(ctx context.Context, userID string) ([]*models.Analytics, error)
	ListAnalyticsForPost(ctx context.Context, postID string) ([]*models.Analytics, error)
	CreateAnalytics(ctx context.Context, a *models.Analytics) (*models.Analytics, error)
	GetAnalyticsByPlatform(ctx context.Context, userID, platform string) ([]*models.Analytics, error)
}

type AiGenerationRepository interface {
	CreateAiGeneration(ctx context.Context, g *models.AiGeneration) (*models.AiGeneration, error)
	ListAiGenerations(ctx context.Context, userID string) ([]*models.AiGeneration, error)
}

// Storage is the full persistence contract. The in-memory and Postgres
// backends both implement it and must behave identically.
type Storage interface {
	UserRepository
	SocialProfileRepository
	PostRepository
	ContentLibraryRepository
	AnalyticsRepository
	AiGenerationRepository
}

func recentLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	return limit
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
