package dto

import (
	"time"

	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// UserResponse represents a user in API responses. The password hash is never
// exposed in any external representation.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *userDomain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     user.RoleNames(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ListUsersResponse represents a paginated list of users in API responses.
type ListUsersResponse struct {
	Data []UserResponse `json:"data"`
}

// MapUsersToListResponse converts a slice of domain users to a list response.
func MapUsersToListResponse(users []*userDomain.User) ListUsersResponse {
	data := make([]UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, MapUserToResponse(user))
	}

	return ListUsersResponse{
		Data: data,
	}
}

// RoleResponse represents a catalog role in API responses.
type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListRolesResponse represents the role catalog in API responses.
type ListRolesResponse struct {
	Data []RoleResponse `json:"data"`
}

// MapRolesToListResponse converts a slice of domain roles to a list response.
func MapRolesToListResponse(roles []*userDomain.Role) ListRolesResponse {
	data := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		data = append(data, RoleResponse{
			ID:   role.ID.String(),
			Name: role.Name,
		})
	}

	return ListRolesResponse{
		Data: data,
	}
}
