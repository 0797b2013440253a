package service

import (
	"context"
	"testing"

	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/transfer"
	"github.com/maheshrc27/nexus/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestSocialProfileTokensEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "p@example.com")
	cipher, err := utils.NewTokenCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	s := NewSocialProfileService(store, cipher)

	created, err := s.Create(ctx, u.ID, transfer.CreateSocialProfileRequest{
		Platform:     "instagram",
		Username:     "@brand",
		AccessToken:  strPtr("access-1"),
		RefreshToken: strPtr("refresh-1"),
		IsConnected:  intPtr(1),
		Followers:    intPtr(120),
	})
	require.NoError(t, err)
	require.NotNil(t, created.AccessToken)
	assert.Equal(t, "access-1", *created.AccessToken)
	assert.Equal(t, 1, created.IsConnected)
	assert.Equal(t, 120, created.Followers)

	stored, ok, err := store.GetSocialProfile(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, "access-1", *stored.AccessToken)
	assert.NotEqual(t, "refresh-1", *stored.RefreshToken)

	updated, err := s.Update(ctx, u.ID, created.ID, transfer.UpdateSocialProfileRequest{AccessToken: strPtr("access-2")})
	require.NoError(t, err)
	assert.Equal(t, "access-2", *updated.AccessToken)
	assert.Equal(t, "refresh-1", *updated.RefreshToken)
	assert.Equal(t, "@brand", updated.Username)

	list, err := s.List(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "access-2", *list[0].AccessToken)
}

func TestSocialProfilePlaintextTokensPassThrough(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	require.NoError(t, repository.SeedDemo(ctx, store))
	demo, _, err := store.GetUserByEmail(ctx, repository.DemoEmail)
	require.NoError(t, err)

	cipher, err := utils.NewTokenCipher([]byte("0123456789abcdef"))
	require.NoError(t, err)

	list, err := NewSocialProfileService(store, cipher).List(ctx, demo.ID)
	require.NoError(t, err)
	require.Len(t, list, 4)
	require.NotNil(t, list[0].AccessToken)
	assert.Equal(t, "mock-instagram-token", *list[0].AccessToken)
	assert.Nil(t, list[2].AccessToken)
}

func TestSocialProfileOwnership(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	owner := newUser(t, store, "owner@example.com")
	other := newUser(t, store, "other@example.com")
	s := NewSocialProfileService(store, nil)

	p, err := s.Create(ctx, owner.ID, transfer.CreateSocialProfileRequest{Platform: "twitter", Username: "@me"})
	require.NoError(t, err)
	assert.Equal(t, 0, p.IsConnected)
	assert.Equal(t, 0, p.Followers)

	_, err = s.Update(ctx, other.ID, p.ID, transfer.UpdateSocialProfileRequest{Followers: intPtr(9)})
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.ErrorIs(t, s.Delete(ctx, other.ID, p.ID), ErrProfileNotFound)

	list, err := s.List(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, s.Delete(ctx, owner.ID, p.ID))
	assert.ErrorIs(t, s.Delete(ctx, owner.ID, p.ID), ErrProfileNotFound)
}
