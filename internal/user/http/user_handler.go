// Package http provides HTTP handlers for user lifecycle operations.
// Handlers resolve the acting principal from the request context and pass it
// to the use case, which makes every authorization decision.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/xapps/user-management-service/internal/auth/http"
	"github.com/xapps/user-management-service/internal/httputil"
	"github.com/xapps/user-management-service/internal/user/http/dto"
	userUseCase "github.com/xapps/user-management-service/internal/user/usecase"
)

// UserHandler handles HTTP requests for user lifecycle operations.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateHandler registers a new user account.
// POST /v1/users - Public; requesting the Administrator role requires an
// administrator caller.
// Returns 201 Created with the new user.
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	principal := authHTTP.GetPrincipal(c.Request.Context())

	user, err := h.userUseCase.Create(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// GetHandler retrieves a single user record.
// GET /v1/users/:id - Administrators or the record's owner.
// Returns 200 OK with the user.
func (h *UserHandler) GetHandler(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.GetPrincipal(c.Request.Context())

	user, err := h.userUseCase.Get(c.Request.Context(), principal, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// ListHandler retrieves users with pagination support.
// GET /v1/users?offset=0&limit=50 - Administrators only.
// Returns 200 OK with the user list.
func (h *UserHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.GetPrincipal(c.Request.Context())

	users, err := h.userUseCase.List(c.Request.Context(), principal, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// UpdateHandler replaces the mutable fields of a user record.
// PUT /v1/users/:id - Administrators or the record's owner; granting the
// Administrator role requires an administrator caller.
// Returns 200 OK with the updated user.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	principal := authHTTP.GetPrincipal(c.Request.Context())

	user, err := h.userUseCase.Update(c.Request.Context(), principal, id, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// DeleteHandler removes a user record.
// DELETE /v1/users/:id - Administrators or the record's owner.
// Returns 204 No Content.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	principal := authHTTP.GetPrincipal(c.Request.Context())

	if err := h.userUseCase.Delete(c.Request.Context(), principal, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseUserID extracts and parses the :id path parameter.
func parseUserID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id: must be a valid UUID")
	}
	return id, nil
}
