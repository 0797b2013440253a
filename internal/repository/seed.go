package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/nexus/internal/models"
)

const (
	DemoEmail    = "demo@projectnexus.com"
	DemoPassword = "password123"
)

// SeedDemo loads the demo account with a few connected profiles, posts and
// analytics rows. It does nothing if the demo user already exists.
func SeedDemo(ctx context.Context, s Storage) error {
	_, exists, err := s.GetUserByEmail(ctx, DemoEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	user, err := s.CreateUser(ctx, &models.NewUser{
		Email:        DemoEmail,
		Password:     DemoPassword,
		FullName:     "Demo User",
		AuthProvider: models.AuthProviderCustom,
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	expires := time.Now().Add(time.Hour).UTC()
	profiles := []models.SocialProfile{
		{Platform: models.PlatformInstagram, Username: "@brandname", AccessToken: strPtr("mock-instagram-token"), RefreshToken: strPtr("mock-instagram-refresh"), TokenExpiresAt: &expires, IsConnected: 1, Followers: 12500},
		{Platform: models.PlatformFacebook, Username: "Brand Page", AccessToken: strPtr("mock-facebook-token"), RefreshToken: strPtr("mock-facebook-refresh"), TokenExpiresAt: &expires, IsConnected: 1, Followers: 8200},
		{Platform: models.PlatformTwitter, Username: "@company", IsConnected: 0, Followers: 5800},
		{Platform: models.PlatformLinkedIn, Username: "Company LinkedIn", AccessToken: strPtr("mock-linkedin-token"), RefreshToken: strPtr("mock-linkedin-refresh"), TokenExpiresAt: &expires, IsConnected: 1, Followers: 6400},
	}
	for i := range profiles {
		profiles[i].UserID = user.ID
		if _, err := s.CreateSocialProfile(ctx, &profiles[i]); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
	}

	publishedAt := time.Now().Add(-2 * time.Hour).UTC()
	published, err := s.CreatePost(ctx, &models.Post{
		UserID:      user.ID,
		Content:     "🚀 Excited to share our latest product update! New features that will revolutionize your workflow. Stay tuned for more details! #ProductUpdate #Innovation #TechNews",
		Platforms:   models.StringList{models.PlatformInstagram, models.PlatformFacebook, models.PlatformLinkedIn},
		Status:      models.PostStatusPublished,
		PublishedAt: &publishedAt,
	})
	if err != nil {
		return fmt.Errorf("seed post: %w", err)
	}

	scheduledAt := time.Now().Add(24 * time.Hour).UTC()
	if _, err := s.CreatePost(ctx, &models.Post{
		UserID:      user.ID,
		Content:     "Team collaboration is the key to success! Here's how we've improved our processes to deliver better results for our clients. What strategies work best for your team? #Teamwork #Productivity #Business",
		Platforms:   models.StringList{models.PlatformLinkedIn, models.PlatformFacebook},
		Status:      models.PostStatusScheduled,
		ScheduledAt: &scheduledAt,
	}); err != nil {
		return fmt.Errorf("seed post: %w", err)
	}

	rows := []models.Analytics{
		{Platform: models.PlatformInstagram, Likes: 245, Comments: 18, Shares: 12, Views: 1850, EngagementRate: 1485},
		{Platform: models.PlatformFacebook, Likes: 156, Comments: 24, Shares: 8, Views: 1200, EngagementRate: 1567},
	}
	for i := range rows {
		rows[i].UserID = user.ID
		rows[i].PostID = &published.ID
		if _, err := s.CreateAnalytics(ctx, &rows[i]); err != nil {
			return fmt.Errorf("seed analytics: %w", err)
		}
	}

	slog.Info("seeded demo account", "email", DemoEmail)
	return nil
}

func strPtr(s string) *string {
	return &s
}
