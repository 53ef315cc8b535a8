package domain

import (
	validation "github.com/jellydator/validation"

	appvalidation "github.com/xapps/user-management-service/internal/validation"
)

// passwordPolicy only enforces a minimum length; composition rules are left to
// the deployment to layer on.
var passwordPolicy = appvalidation.PasswordStrength{
	MinLength: 8,
}

// CreateUserInput contains the fields accepted when registering a user.
// Roles holds role names; an empty slice means the default role is assigned.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Roles     []string
}

// Validate checks structural validity of the input. Authorization and role
// existence are checked separately by the use case.
func (i *CreateUserInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Email, validation.Required, appvalidation.NotBlank, appvalidation.Email),
		validation.Field(&i.FirstName, validation.Required, appvalidation.NotBlank, validation.Length(1, 100)),
		validation.Field(&i.LastName, validation.Required, appvalidation.NotBlank, validation.Length(1, 100)),
		validation.Field(&i.Password, validation.Required, passwordPolicy),
		validation.Field(&i.Roles, validation.Each(appvalidation.NotBlank)),
	)
}

// UpdateUserInput contains the fields accepted when editing a user.
// Password left blank keeps the current password; an empty Roles slice keeps
// the current role assignments.
type UpdateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Roles     []string
}

// Validate checks structural validity of the input.
func (i *UpdateUserInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Email, validation.Required, appvalidation.NotBlank, appvalidation.Email),
		validation.Field(&i.FirstName, validation.Required, appvalidation.NotBlank, validation.Length(1, 100)),
		validation.Field(&i.LastName, validation.Required, appvalidation.NotBlank, validation.Length(1, 100)),
		validation.Field(&i.Password, validation.When(i.Password != "", passwordPolicy)),
		validation.Field(&i.Roles, validation.Each(appvalidation.NotBlank)),
	)
}
