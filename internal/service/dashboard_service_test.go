package service

import (
	"context"
	"testing"

	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFollowers(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, "0"},
		{900, "900"},
		{1000, "1000"},
		{1250, "1.3K"},
		{2000, "2K"},
		{32900, "32.9K"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFollowers(tt.total), "total %d", tt.total)
	}
}

func TestAverageEngagement(t *testing.T) {
	assert.Equal(t, 0.0, AverageEngagement(nil))

	rows := []*models.Analytics{{EngagementRate: 1485}, {EngagementRate: 1567}}
	assert.Equal(t, 15.3, AverageEngagement(rows))

	assert.Equal(t, 2.5, AverageEngagement([]*models.Analytics{{EngagementRate: 245}}))
}

func TestDashboardStatsForDemoAccount(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	require.NoError(t, repository.SeedDemo(ctx, store))

	demo, ok, err := store.GetUserByEmail(ctx, repository.DemoEmail)
	require.NoError(t, err)
	require.True(t, ok)

	stats, err := NewDashboardService(store).Stats(ctx, demo.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalPosts)
	assert.Equal(t, 1, stats.Scheduled)
	assert.Equal(t, 15.3, stats.Engagement)
	assert.Equal(t, "32.9K", stats.Followers)
}

func TestDashboardStatsEmptyAccount(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "empty@example.com")

	stats, err := NewDashboardService(store).Stats(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{Followers: "0"}, stats)
}

func TestAnalyticsRecordChecksPostOwner(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	owner := newUser(t, store, "owner@example.com")
	other := newUser(t, store, "other@example.com")

	post, err := NewPostService(store).Create(ctx, owner.ID, transfer.CreatePostRequest{Content: "hi", Platforms: []string{"twitter"}})
	require.NoError(t, err)

	s := NewAnalyticsService(store, store)
	_, err = s.Record(ctx, other.ID, transfer.CreateAnalyticsRequest{PostID: &post.ID, Platform: "twitter", Likes: 1})
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = s.ForPost(ctx, other.ID, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	row, err := s.Record(ctx, owner.ID, transfer.CreateAnalyticsRequest{PostID: &post.ID, Platform: "twitter", Likes: 3, EngagementRate: 500})
	require.NoError(t, err)
	assert.Equal(t, 3, row.Likes)

	rows, err := s.ForPost(ctx, owner.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = s.ByPlatform(ctx, owner.ID, "twitter")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = s.ByPlatform(ctx, owner.ID, "instagram")
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = s.ByPlatform(ctx, owner.ID, "myspace")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, `Invalid platform "myspace"`, verr.Message)
}
