package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	config "github.com/maheshrc27/nexus/configs"
	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/transfer"
	"github.com/maheshrc27/nexus/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func testConfig() config.Config {
	return config.Config{
		SecretKey:         testSecret,
		GoogleClientID:    "client-id",
		GoogleRedirectURI: "http://localhost:3000/api/auth/google/callback",
	}
}

func register(t *testing.T, s AuthService, email string) *transfer.AuthResponse {
	t.Helper()
	resp, err := s.Register(context.Background(), transfer.RegisterRequest{
		Email:           email,
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FullName:        "Jane Doe",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	s := NewAuthService(testConfig(), repository.NewMemoryStorage())

	resp := register(t, s, "  Jane@Example.com ")
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, "Jane Doe", resp.User.FullName)
	assert.NotEmpty(t, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	user, err := s.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)

	login, err := s.Login(ctx, transfer.LoginRequest{Email: "JANE@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := NewAuthService(testConfig(), repository.NewMemoryStorage())
	register(t, s, "dup@example.com")

	_, err := s.Register(context.Background(), transfer.RegisterRequest{
		Email: "DUP@example.com", Password: "secret1", ConfirmPassword: "secret1", FullName: "Again",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterPasswordTooLong(t *testing.T) {
	s := NewAuthService(testConfig(), repository.NewMemoryStorage())

	// 40 characters pass the length rule but encode to 80 bytes.
	long := strings.Repeat("é", 40)
	_, err := s.Register(context.Background(), transfer.RegisterRequest{
		Email: "long@example.com", Password: long, ConfirmPassword: long, FullName: "Long",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Password must be at most 72 bytes", verr.Message)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	s := NewAuthService(testConfig(), repository.NewMemoryStorage())
	register(t, s, "jane@example.com")

	_, err := s.Login(ctx, transfer.LoginRequest{Email: "jane@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, transfer.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateErrors(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	s := NewAuthService(testConfig(), store)

	_, err := s.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)

	expired, err := utils.GenerateToken(testSecret, "someone", utils.PurposeAccess, -time.Minute)
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, expired)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)

	orphan, err := utils.GenerateToken(testSecret, "deleted-user", utils.PurposeAccess, time.Hour)
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, orphan)
	assert.ErrorIs(t, err, ErrUserNotFound)

	state, err := utils.GenerateToken(testSecret, "nonce", utils.PurposeOAuthState, time.Hour)
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, state)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	s := NewAuthService(testConfig(), repository.NewMemoryStorage())
	resp := register(t, s, "gone@example.com")

	require.NoError(t, s.DeleteAccount(ctx, resp.User.ID))
	assert.ErrorIs(t, s.DeleteAccount(ctx, resp.User.ID), ErrUserNotFound)

	_, err := s.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGoogleNotConfigured(t *testing.T) {
	s := NewAuthService(config.Config{SecretKey: testSecret}, repository.NewMemoryStorage())

	_, err := s.GoogleAuthURL()
	assert.ErrorIs(t, err, ErrOAuthNotConfigured)

	_, err = s.GoogleCallback(context.Background(), "code", "state")
	assert.ErrorIs(t, err, ErrOAuthNotConfigured)
}

func googleState(t *testing.T, s AuthService) string {
	t.Helper()
	raw, err := s.GoogleAuthURL()
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "client-id", u.Query().Get("client_id"))
	return u.Query().Get("state")
}

func TestGoogleCallbackCreatesUserOnce(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	calls := 0
	s := NewAuthServiceWithExchanger(testConfig(), store, func(ctx context.Context, code string) (*GoogleIdentity, error) {
		calls++
		assert.Equal(t, "auth-code", code)
		return &GoogleIdentity{ID: "g-123", Email: "G.User@gmail.com", Name: "G User"}, nil
	})

	token, err := s.GoogleCallback(ctx, "auth-code", googleState(t, s))
	require.NoError(t, err)

	user, err := s.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "g.user@gmail.com", user.Email)
	assert.Equal(t, models.AuthProviderGoogle, user.AuthProvider)
	require.NotNil(t, user.ProviderID)
	assert.Equal(t, "g-123", *user.ProviderID)
	assert.Nil(t, user.PasswordHash)

	token, err = s.GoogleCallback(ctx, "auth-code", googleState(t, s))
	require.NoError(t, err)
	again, err := s.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, 2, calls)

	_, err = s.Login(ctx, transfer.LoginRequest{Email: "g.user@gmail.com", Password: "anything"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGoogleCallbackErrors(t *testing.T) {
	ctx := context.Background()
	s := NewAuthServiceWithExchanger(testConfig(), repository.NewMemoryStorage(), func(ctx context.Context, code string) (*GoogleIdentity, error) {
		return nil, errors.New("exchange failed")
	})

	_, err := s.GoogleCallback(ctx, "code", "forged-state")
	assert.ErrorIs(t, err, ErrInvalidOAuthState)

	_, err = s.GoogleCallback(ctx, "", googleState(t, s))
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = s.GoogleCallback(ctx, "code", googleState(t, s))
	var extErr *ExternalServiceError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "google", extErr.Service)
}
