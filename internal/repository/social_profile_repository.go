package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/maheshrc27/nexus/internal/models"
)

var socialProfileColumns = []string{
	"id", "user_id", "platform", "username", "access_token", "refresh_token",
	"token_expires_at", "is_connected", "followers", "created_at",
}

func (s *postgresStorage) ListSocialProfiles(ctx context.Context, userID string) ([]*models.SocialProfile, error) {
	profiles := []*models.SocialProfile{}
	q := s.sb.Select(socialProfileColumns...).From("social_profiles").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC")
	if err := s.selectRows(ctx, &profiles, q, "list", "social_profiles"); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *postgresStorage) GetSocialProfile(ctx context.Context, id string) (*models.SocialProfile, bool, error) {
	var p models.SocialProfile
	q := s.sb.Select(socialProfileColumns...).From("social_profiles").Where(sq.Eq{"id": id})
	found, err := s.get(ctx, &p, q, "get", "social_profiles")
	if err != nil || !found {
		return nil, false, err
	}
	return &p, true, nil
}

func (s *postgresStorage) CreateSocialProfile(ctx context.Context, profile *models.SocialProfile) (*models.SocialProfile, error) {
	p := *profile
	p.ID = uuid.NewString()
	p.CreatedAt = now()

	q := s.sb.Insert("social_profiles").Columns(socialProfileColumns...).Values(
		p.ID, p.UserID, p.Platform, p.Username, p.AccessToken, p.RefreshToken,
		p.TokenExpiresAt, p.IsConnected, p.Followers, p.CreatedAt,
	)
	if _, err := s.exec(ctx, q, "insert", "social_profiles"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *postgresStorage) UpdateSocialProfile(ctx context.Context, id string, update models.SocialProfileUpdate) (*models.SocialProfile, bool, error) {
	if update.IsEmpty() {
		return s.GetSocialProfile(ctx, id)
	}

	var p models.SocialProfile
	q := s.sb.Update("social_profiles").
		SetMap(update.Columns()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(socialProfileColumns, ", "))
	found, err := s.get(ctx, &p, q, "update", "social_profiles")
	if err != nil || !found {
		return nil, false, err
	}
	return &p, true, nil
}

func (s *postgresStorage) DeleteSocialProfile(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "social_profiles", id)
}

func (s *postgresStorage) ListExpiredSocialProfiles(ctx context.Context, before time.Time) ([]*models.SocialProfile, error) {
	profiles := []*models.SocialProfile{}
	q := s.sb.Select(socialProfileColumns...).From("social_profiles").
		Where(sq.And{
			sq.Eq{"is_connected": 1},
			sq.Lt{"token_expires_at": before},
		}).
		OrderBy("token_expires_at ASC")
	if err := s.selectRows(ctx, &profiles, q, "list expired", "social_profiles"); err != nil {
		return nil, err
	}
	return profiles, nil
}
