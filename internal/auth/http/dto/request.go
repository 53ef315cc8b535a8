// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	appvalidation "github.com/xapps/user-management-service/internal/validation"
)

// LoginRequest contains the credentials submitted to obtain a bearer token.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Validate checks if the login request is valid. Password strength is not
// checked here: existing accounts may predate the current policy.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, appvalidation.NotBlank, appvalidation.Email),
		validation.Field(&r.Password, validation.Required, appvalidation.NotBlank),
	)
}
