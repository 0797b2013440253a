package transfer

import "github.com/maheshrc27/nexus/internal/models"

type RegisterRequest struct {
	Email           string `json:"email" validate:"email"`
	Password        string `json:"password" validate:"min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"min=6,max=72,eqfield=Password"`
	FullName        string `json:"fullName" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=6"`
}

type AuthResponse struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}
