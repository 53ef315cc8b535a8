package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xapps/user-management-service/internal/httputil"
	"github.com/xapps/user-management-service/internal/user/http/dto"
	userUseCase "github.com/xapps/user-management-service/internal/user/usecase"
)

// RoleHandler handles HTTP requests for the role catalog.
type RoleHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewRoleHandler creates a new role handler with required dependencies.
func NewRoleHandler(userUseCase userUseCase.UserUseCase, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// ListHandler retrieves the role catalog.
// GET /v1/roles - Public; the catalog names no principals.
// Returns 200 OK with the roles.
func (h *RoleHandler) ListHandler(c *gin.Context) {
	roles, err := h.userUseCase.ListRoles(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRolesToListResponse(roles))
}
