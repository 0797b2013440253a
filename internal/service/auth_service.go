package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	config "github.com/maheshrc27/nexus/configs"
	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/transfer"
	"github.com/maheshrc27/nexus/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

const (
	AccessTokenTTL = 7 * 24 * time.Hour
	oauthStateTTL  = 10 * time.Minute
)

// GoogleIdentity is the subset of the Google profile used to sign a user in.
type GoogleIdentity struct {
	ID    string
	Email string
	Name  string
}

// GoogleExchanger turns an OAuth authorization code into a Google identity.
type GoogleExchanger func(ctx context.Context, code string) (*GoogleIdentity, error)

type AuthService interface {
	Register(ctx context.Context, req transfer.RegisterRequest) (*transfer.AuthResponse, error)
	Login(ctx context.Context, req transfer.LoginRequest) (*transfer.AuthResponse, error)
	// Authenticate resolves a bearer token to its user. A bad token yields
	// utils.ErrInvalidToken, a valid token for a missing user ErrUserNotFound.
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GoogleAuthURL() (string, error)
	GoogleCallback(ctx context.Context, code, state string) (string, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type authService struct {
	cfg      config.Config
	u        repository.UserRepository
	oauth    *oauth2.Config
	exchange GoogleExchanger
}

func NewAuthService(cfg config.Config, u repository.UserRepository) AuthService {
	s := &authService{cfg: cfg, u: u}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" && cfg.GoogleRedirectURI != "" {
		s.oauth = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       []string{googleoauth.UserinfoEmailScope, googleoauth.UserinfoProfileScope},
			Endpoint:     google.Endpoint,
		}
		s.exchange = s.exchangeGoogleCode
	}
	return s
}

// NewAuthServiceWithExchanger is NewAuthService with a custom Google code exchange.
func NewAuthServiceWithExchanger(cfg config.Config, u repository.UserRepository, exchange GoogleExchanger) AuthService {
	s := NewAuthService(cfg, u).(*authService)
	s.exchange = exchange
	if s.oauth == nil {
		s.oauth = &oauth2.Config{ClientID: cfg.GoogleClientID, RedirectURL: cfg.GoogleRedirectURI, Endpoint: google.Endpoint}
	}
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func PublicUser(u *models.User) models.PublicUser {
	var pu models.PublicUser
	if err := copier.Copy(&pu, u); err != nil {
		slog.Info(err.Error())
	}
	return pu
}

func (s *authService) issue(user *models.User) (*transfer.AuthResponse, error) {
	token, err := utils.GenerateToken(s.cfg.SecretKey, user.ID, utils.PurposeAccess, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &transfer.AuthResponse{User: PublicUser(user), Token: token}, nil
}

func (s *authService) Register(ctx context.Context, req transfer.RegisterRequest) (*transfer.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	_, exists, err := s.u.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		slog.Info("registration with existing email", "email", email)
		return nil, ErrUserExists
	}

	user, err := s.u.CreateUser(ctx, &models.NewUser{
		Email:        email,
		Password:     req.Password,
		FullName:     req.FullName,
		AuthProvider: models.AuthProviderCustom,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, NewValidationError("Password must be at most %d bytes", utils.MaxPasswordBytes)
		}
		return nil, err
	}

	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req transfer.LoginRequest) (*transfer.AuthResponse, error) {
	user, exists, err := s.u.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if !exists || user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := utils.CheckPassword(req.Password, *user.PasswordHash); err != nil {
		slog.Info(err.Error())
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := utils.ValidateToken(s.cfg.SecretKey, token, utils.PurposeAccess)
	if err != nil {
		return nil, err
	}

	user, exists, err := s.u.GetUser(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *authService) GoogleAuthURL() (string, error) {
	if s.oauth == nil {
		return "", ErrOAuthNotConfigured
	}

	nonce, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	state, err := utils.GenerateToken(s.cfg.SecretKey, nonce, utils.PurposeOAuthState, oauthStateTTL)
	if err != nil {
		return "", err
	}
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// GoogleCallback signs in the Google account behind code, creating a user on
// first login, and returns an access token.
func (s *authService) GoogleCallback(ctx context.Context, code, state string) (string, error) {
	if s.oauth == nil || s.exchange == nil {
		return "", ErrOAuthNotConfigured
	}
	if code == "" {
		return "", NewValidationError("code is required")
	}
	if _, err := utils.ValidateToken(s.cfg.SecretKey, state, utils.PurposeOAuthState); err != nil {
		slog.Info(err.Error())
		return "", ErrInvalidOAuthState
	}

	identity, err := s.exchange(ctx, code)
	if err != nil {
		return "", &ExternalServiceError{Service: "google", Err: err}
	}
	if identity.Email == "" {
		return "", &ExternalServiceError{Service: "google", Err: errors.New("account has no email")}
	}

	email := normalizeEmail(identity.Email)
	user, exists, err := s.u.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !exists {
		providerID := identity.ID
		user, err = s.u.CreateUser(ctx, &models.NewUser{
			Email:        email,
			FullName:     identity.Name,
			AuthProvider: models.AuthProviderGoogle,
			ProviderID:   &providerID,
		})
		if err != nil {
			return "", err
		}
	}

	resp, err := s.issue(user)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (s *authService) exchangeGoogleCode(ctx context.Context, code string) (*GoogleIdentity, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	svc, err := googleoauth.NewService(ctx, option.WithHTTPClient(s.oauth.Client(ctx, token)))
	if err != nil {
		return nil, err
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return &GoogleIdentity{ID: info.Id, Email: info.Email, Name: info.Name}, nil
}

func (s *authService) DeleteAccount(ctx context.Context, userID string) error {
	deleted, err := s.u.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
