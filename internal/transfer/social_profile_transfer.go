package transfer

import (
	"time"

	"github.com/maheshrc27/nexus/internal/models"
)

type CreateSocialProfileRequest struct {
	Platform       string     `json:"platform" validate:"platform"`
	Username       string     `json:"username" validate:"required"`
	AccessToken    *string    `json:"accessToken"`
	RefreshToken   *string    `json:"refreshToken"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt"`
	IsConnected    *int       `json:"isConnected" validate:"omitempty,oneof=0 1"`
	Followers      *int       `json:"followers" validate:"omitempty,min=0"`
}

func (r CreateSocialProfileRequest) ToModel(userID string) *models.SocialProfile {
	p := &models.SocialProfile{
		UserID:         userID,
		Platform:       r.Platform,
		Username:       r.Username,
		AccessToken:    r.AccessToken,
		RefreshToken:   r.RefreshToken,
		TokenExpiresAt: r.TokenExpiresAt,
	}
	if r.IsConnected != nil {
		p.IsConnected = *r.IsConnected
	}
	if r.Followers != nil {
		p.Followers = *r.Followers
	}
	return p
}

type UpdateSocialProfileRequest struct {
	Platform       *string    `json:"platform" validate:"omitnil,platform"`
	Username       *string    `json:"username" validate:"omitnil,min=1"`
	AccessToken    *string    `json:"accessToken"`
	RefreshToken   *string    `json:"refreshToken"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt"`
	IsConnected    *int       `json:"isConnected" validate:"omitempty,oneof=0 1"`
	Followers      *int       `json:"followers" validate:"omitempty,min=0"`
}

func (r UpdateSocialProfileRequest) ToUpdate() models.SocialProfileUpdate {
	return models.SocialProfileUpdate{
		Platform:       r.Platform,
		Username:       r.Username,
		AccessToken:    r.AccessToken,
		RefreshToken:   r.RefreshToken,
		TokenExpiresAt: r.TokenExpiresAt,
		IsConnected:    r.IsConnected,
		Followers:      r.Followers,
	}
}
