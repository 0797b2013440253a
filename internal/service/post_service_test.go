package service

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, store repository.Storage, email string) *models.User {
	t.Helper()
	u, err := store.CreateUser(context.Background(), &models.NewUser{Email: email, Password: "secret1", FullName: "Test User"})
	require.NoError(t, err)
	return u
}

func newFixedPostService(store repository.Storage, now time.Time) PostService {
	return &postService{pr: store, now: func() time.Time { return now }}
}

func TestPostCreateWithoutScheduleIsPublished(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "p@example.com")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newFixedPostService(store, now)

	post, err := s.Create(ctx, u.ID, transfer.CreatePostRequest{
		Content:   "hello",
		Platforms: []string{"twitter", "twitter", "linkedin"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.PostStatusPublished, post.Status)
	require.NotNil(t, post.PublishedAt)
	assert.True(t, post.PublishedAt.Equal(now))
	assert.Nil(t, post.ScheduledAt)
	assert.Equal(t, models.StringList{"twitter", "linkedin"}, post.Platforms)
	assert.Equal(t, models.StringList{}, post.MediaURLs)
}

func TestPostCreateScheduled(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "p@example.com")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newFixedPostService(store, now)

	at := now.Add(2 * time.Hour)
	post, err := s.Create(ctx, u.ID, transfer.CreatePostRequest{
		Content:     "later",
		Platforms:   []string{"instagram"},
		ScheduledAt: &at,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusScheduled, post.Status)
	assert.Nil(t, post.PublishedAt)

	scheduled, err := s.Scheduled(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, post.ID, scheduled[0].ID)
}

func TestPostCreateRejectsPastSchedule(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "p@example.com")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newFixedPostService(store, now)

	past := now.Add(-time.Minute)
	_, err := s.Create(ctx, u.ID, transfer.CreatePostRequest{
		Content:     "too late",
		Platforms:   []string{"instagram"},
		ScheduledAt: &past,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Scheduled time must be in the future", verr.Message)

	posts, err := s.List(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostUpdate(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "p@example.com")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newFixedPostService(store, now)

	at := now.Add(time.Hour)
	post, err := s.Create(ctx, u.ID, transfer.CreatePostRequest{Content: "draft", Platforms: []string{"facebook"}, ScheduledAt: &at})
	require.NoError(t, err)

	content := "edited"
	updated, err := s.Update(ctx, u.ID, post.ID, transfer.UpdatePostRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, models.PostStatusScheduled, updated.Status)
	assert.Equal(t, models.StringList{"facebook"}, updated.Platforms)

	published := models.PostStatusPublished
	updated, err = s.Update(ctx, u.ID, post.ID, transfer.UpdatePostRequest{Status: &published})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, updated.Status)
	require.NotNil(t, updated.PublishedAt)
	assert.True(t, updated.PublishedAt.Equal(now))
}

func TestPostUpdateScheduleRules(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "p@example.com")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newFixedPostService(store, now)

	post, err := s.Create(ctx, u.ID, transfer.CreatePostRequest{Content: "now", Platforms: []string{"facebook"}})
	require.NoError(t, err)

	scheduled := models.PostStatusScheduled
	_, err = s.Update(ctx, u.ID, post.ID, transfer.UpdatePostRequest{Status: &scheduled})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	past := now.Add(-time.Hour)
	_, err = s.Update(ctx, u.ID, post.ID, transfer.UpdatePostRequest{Status: &scheduled, ScheduledAt: &past})
	assert.ErrorAs(t, err, &verr)

	future := now.Add(time.Hour)
	updated, err := s.Update(ctx, u.ID, post.ID, transfer.UpdatePostRequest{Status: &scheduled, ScheduledAt: &future})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusScheduled, updated.Status)
}

func TestPostLeavingPublishedClearsPublishedAt(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "p@example.com")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newFixedPostService(store, now)

	post, err := s.Create(ctx, u.ID, transfer.CreatePostRequest{Content: "live", Platforms: []string{"facebook"}})
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)

	scheduled := models.PostStatusScheduled
	future := now.Add(time.Hour)
	updated, err := s.Update(ctx, u.ID, post.ID, transfer.UpdatePostRequest{Status: &scheduled, ScheduledAt: &future})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusScheduled, updated.Status)
	assert.Nil(t, updated.PublishedAt)

	stored, _, err := store.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.PublishedAt)

	published := models.PostStatusPublished
	updated, err = s.Update(ctx, u.ID, post.ID, transfer.UpdatePostRequest{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)

	draft := models.PostStatusDraft
	updated, err = s.Update(ctx, u.ID, post.ID, transfer.UpdatePostRequest{Status: &draft})
	require.NoError(t, err)
	assert.Nil(t, updated.PublishedAt)
}

func TestPostOwnership(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	owner := newUser(t, store, "owner@example.com")
	other := newUser(t, store, "other@example.com")
	s := NewPostService(store)

	post, err := s.Create(ctx, owner.ID, transfer.CreatePostRequest{Content: "mine", Platforms: []string{"twitter"}})
	require.NoError(t, err)

	content := "stolen"
	_, err = s.Update(ctx, other.ID, post.ID, transfer.UpdatePostRequest{Content: &content})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, s.Delete(ctx, other.ID, post.ID), ErrPostNotFound)
	assert.ErrorIs(t, s.Delete(ctx, owner.ID, "missing"), ErrPostNotFound)

	require.NoError(t, s.Delete(ctx, owner.ID, post.ID))
	assert.ErrorIs(t, s.Delete(ctx, owner.ID, post.ID), ErrPostNotFound)
}

func TestPostRecentLimit(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "p@example.com")
	s := NewPostService(store)

	for _, c := range []string{"one", "two", "three"} {
		_, err := s.Create(ctx, u.ID, transfer.CreatePostRequest{Content: c, Platforms: []string{"twitter"}})
		require.NoError(t, err)
	}

	recent, err := s.Recent(ctx, u.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "three", recent[0].Content)
	assert.Equal(t, "two", recent[1].Content)
}
