// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// CreateUserRequest contains the fields accepted when registering a user.
type CreateUserRequest struct {
	Email     string   `json:"email"      binding:"required"`
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name"  binding:"required"`
	Password  string   `json:"password"   binding:"required"`
	Roles     []string `json:"roles"`
}

// ToInput converts the request to the domain input. Field validation happens
// on the domain input inside the use case.
func (r *CreateUserRequest) ToInput() *userDomain.CreateUserInput {
	return &userDomain.CreateUserInput{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  r.Password,
		Roles:     r.Roles,
	}
}

// UpdateUserRequest contains the fields accepted when editing a user.
// Password left blank keeps the current password; empty roles keep the
// current assignments.
type UpdateUserRequest struct {
	Email     string   `json:"email"      binding:"required"`
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name"  binding:"required"`
	Password  string   `json:"password"`
	Roles     []string `json:"roles"`
}

// ToInput converts the request to the domain input.
func (r *UpdateUserRequest) ToInput() *userDomain.UpdateUserInput {
	return &userDomain.UpdateUserInput{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  r.Password,
		Roles:     r.Roles,
	}
}
