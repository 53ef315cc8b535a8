package dto

import (
	"time"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
)

// LoginResponse represents an issued bearer token in API responses.
// The plain token appears here exactly once; only its hash is stored.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MapLoginOutputToResponse converts a login result to an API response.
func MapLoginOutputToResponse(output *authDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		AccessToken: output.PlainToken,
		TokenType:   "Bearer",
		ExpiresAt:   output.ExpiresAt,
	}
}
