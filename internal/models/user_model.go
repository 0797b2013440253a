package models

import "time"

const (
	AuthProviderCustom = "custom"
	AuthProviderGoogle = "google"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash *string   `db:"password" json:"-"`
	FullName     string    `db:"full_name" json:"fullName"`
	AuthProvider string    `db:"auth_provider" json:"authProvider"`
	ProviderID   *string   `db:"provider_id" json:"providerId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// NewUser carries the fields of a user to insert. Password is always the
// plaintext; storage implementations hash it before persisting.
type NewUser struct {
	Email        string
	Password     string
	FullName     string
	AuthProvider string
	ProviderID   *string
}

// PublicUser is the view of a user returned by the auth endpoints.
type PublicUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}
