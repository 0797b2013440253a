package service

import (
	"context"
	"log/slog"

	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/transfer"
	"github.com/maheshrc27/nexus/pkg/utils"
)

type SocialProfileService interface {
	List(ctx context.Context, userID string) ([]*models.SocialProfile, error)
	Create(ctx context.Context, userID string, req transfer.CreateSocialProfileRequest) (*models.SocialProfile, error)
	Update(ctx context.Context, userID, id string, req transfer.UpdateSocialProfileRequest) (*models.SocialProfile, error)
	Delete(ctx context.Context, userID, id string) error
}

type socialProfileService struct {
	sp     repository.SocialProfileRepository
	cipher *utils.TokenCipher
}

// NewSocialProfileService returns the profile service. When cipher is non-nil,
// platform tokens are encrypted before they reach storage.
func NewSocialProfileService(sp repository.SocialProfileRepository, cipher *utils.TokenCipher) SocialProfileService {
	return &socialProfileService{sp: sp, cipher: cipher}
}

func (s *socialProfileService) seal(v *string) (*string, error) {
	if v == nil || s.cipher == nil {
		return v, nil
	}
	sealed, err := s.cipher.Encrypt(*v)
	if err != nil {
		return nil, err
	}
	return &sealed, nil
}

// open decrypts a stored token. Values written before encryption was enabled
// are returned unchanged.
func (s *socialProfileService) open(v *string) *string {
	if v == nil || s.cipher == nil {
		return v
	}
	plain, err := s.cipher.Decrypt(*v)
	if err != nil {
		return v
	}
	return &plain
}

func (s *socialProfileService) reveal(p *models.SocialProfile) *models.SocialProfile {
	p.AccessToken = s.open(p.AccessToken)
	p.RefreshToken = s.open(p.RefreshToken)
	return p
}

func (s *socialProfileService) owned(ctx context.Context, userID, id string) (*models.SocialProfile, error) {
	p, exists, err := s.sp.GetSocialProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists || p.UserID != userID {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (s *socialProfileService) List(ctx context.Context, userID string) ([]*models.SocialProfile, error) {
	profiles, err := s.sp.ListSocialProfiles(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		s.reveal(p)
	}
	return profiles, nil
}

func (s *socialProfileService) Create(ctx context.Context, userID string, req transfer.CreateSocialProfileRequest) (*models.SocialProfile, error) {
	profile := req.ToModel(userID)

	var err error
	if profile.AccessToken, err = s.seal(profile.AccessToken); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	if profile.RefreshToken, err = s.seal(profile.RefreshToken); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	created, err := s.sp.CreateSocialProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	return s.reveal(created), nil
}

func (s *socialProfileService) Update(ctx context.Context, userID, id string, req transfer.UpdateSocialProfileRequest) (*models.SocialProfile, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return nil, err
	}

	update := req.ToUpdate()
	var err error
	if update.AccessToken, err = s.seal(update.AccessToken); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	if update.RefreshToken, err = s.seal(update.RefreshToken); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	updated, exists, err := s.sp.UpdateSocialProfile(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProfileNotFound
	}
	return s.reveal(updated), nil
}

func (s *socialProfileService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	deleted, err := s.sp.DeleteSocialProfile(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProfileNotFound
	}
	return nil
}
