package models

import (
	"time"
)

const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformLinkedIn  = "linkedin"
	PlatformTikTok    = "tiktok"
)

var Platforms = []string{PlatformInstagram, PlatformFacebook, PlatformTwitter, PlatformLinkedIn, PlatformTikTok}

func IsPlatform(p string) bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

type SocialProfile struct {
	ID             string     `db:"id" json:"id"`
	UserID         string     `db:"user_id" json:"userId"`
	Platform       string     `db:"platform" json:"platform"`
	Username       string     `db:"username" json:"username"`
	AccessToken    *string    `db:"access_token" json:"accessToken"`
	RefreshToken   *string    `db:"refresh_token" json:"refreshToken"`
	TokenExpiresAt *time.Time `db:"token_expires_at" json:"tokenExpiresAt"`
	IsConnected    int        `db:"is_connected" json:"isConnected"` // 1 = connected, 0 = pending
	Followers      int        `db:"followers" json:"followers"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

// SocialProfileUpdate is a partial update. Nil fields leave the stored value unchanged.
type SocialProfileUpdate struct {
	Platform       *string
	Username       *string
	AccessToken    *string
	RefreshToken   *string
	TokenExpiresAt *time.Time
	IsConnected    *int
	Followers      *int
}

func (u SocialProfileUpdate) IsEmpty() bool {
	return u.Platform == nil && u.Username == nil && u.AccessToken == nil && u.RefreshToken == nil &&
		u.TokenExpiresAt == nil && u.IsConnected == nil && u.Followers == nil
}

// Apply merges the supplied fields into p.
func (u SocialProfileUpdate) Apply(p *SocialProfile) {
	if u.Platform != nil {
		p.Platform = *u.Platform
	}
	if u.Username != nil {
		p.Username = *u.Username
	}
	if u.AccessToken != nil {
		v := *u.AccessToken
		p.AccessToken = &v
	}
	if u.RefreshToken != nil {
		v := *u.RefreshToken
		p.RefreshToken = &v
	}
	if u.TokenExpiresAt != nil {
		t := *u.TokenExpiresAt
		p.TokenExpiresAt = &t
	}
	if u.IsConnected != nil {
		p.IsConnected = *u.IsConnected
	}
	if u.Followers != nil {
		p.Followers = *u.Followers
	}
}

// Columns returns the supplied fields keyed by column name.
func (u SocialProfileUpdate) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.Platform != nil {
		cols["platform"] = *u.Platform
	}
	if u.Username != nil {
		cols["username"] = *u.Username
	}
	if u.AccessToken != nil {
		cols["access_token"] = *u.AccessToken
	}
	if u.RefreshToken != nil {
		cols["refresh_token"] = *u.RefreshToken
	}
	if u.TokenExpiresAt != nil {
		cols["token_expires_at"] = *u.TokenExpiresAt
	}
	if u.IsConnected != nil {
		cols["is_connected"] = *u.IsConnected
	}
	if u.Followers != nil {
		cols["followers"] = *u.Followers
	}
	return cols
}
