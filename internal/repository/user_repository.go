package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/pkg/utils"
)

var userColumns = []string{"id", "email", "password", "full_name", "auth_provider", "provider_id", "created_at"}

func (s *postgresStorage) GetUser(ctx context.Context, id string) (*models.User, bool, error) {
	var user models.User
	found, err := s.get(ctx, &user, s.sb.Select(userColumns...).From("users").Where(sq.Eq{"id": id}), "get", "users")
	if err != nil || !found {
		return nil, false, err
	}
	return &user, true, nil
}

func (s *postgresStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	var user models.User
	found, err := s.get(ctx, &user, s.sb.Select(userColumns...).From("users").Where(sq.Eq{"email": email}), "get", "users")
	if err != nil || !found {
		return nil, false, err
	}
	return &user, true, nil
}

func (s *postgresStorage) CreateUser(ctx context.Context, nu *models.NewUser) (*models.User, error) {
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        nu.Email,
		FullName:     nu.FullName,
		AuthProvider: nu.AuthProvider,
		ProviderID:   nu.ProviderID,
		CreatedAt:    now(),
	}
	if user.AuthProvider == "" {
		user.AuthProvider = models.AuthProviderCustom
	}
	if nu.Password != "" {
		hash, err := utils.HashPassword(nu.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = &hash
	}

	q := s.sb.Insert("users").Columns(userColumns...).Values(
		user.ID, user.Email, user.PasswordHash, user.FullName, user.AuthProvider, user.ProviderID, user.CreatedAt,
	)
	if _, err := s.exec(ctx, q, "insert", "users"); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *postgresStorage) DeleteUser(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "users", id)
}
