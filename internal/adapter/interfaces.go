package adapter

import (
	"context"

	"github.com/vaultlocker/vaultlocker/models"
)

// RegisterRequest is the payload of an account registration.
type RegisterRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of a login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is what the account service returns on successful
// registration or login. Deployments disagree on the token field name, so
// both are accepted.
type AuthResponse struct {
	AccessToken string             `json:"accessToken,omitempty"`
	Token       string             `json:"token,omitempty"`
	User        models.SessionUser `json:"user"`
}

// SessionToken returns whichever token field the service populated.
func (r AuthResponse) SessionToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

// RemoteService is the remote account service boundary: consumed, never
// implemented, by this system. Credential records travel plaintext over the
// secured transport; the envelope never leaves the local vault.
type RemoteService interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, token string) (models.SessionUser, error)
	RecoverPassword(ctx context.Context, email string) error
	VerifyMasterPin(ctx context.Context, masterPin, token string) error

	FetchCredentials(ctx context.Context, token string) ([]models.DecryptedCredential, error)
	DeleteCredential(ctx context.Context, id, token string) error
}
