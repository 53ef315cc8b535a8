package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
	authService "github.com/xapps/user-management-service/internal/auth/service"
	authUseCase "github.com/xapps/user-management-service/internal/auth/usecase"
	"github.com/xapps/user-management-service/internal/httputil"
)

// AuthenticationMiddleware resolves the acting principal from a Bearer token in
// the Authorization header and stores it in the request context.
//
// Requests without an Authorization header proceed as anonymous: authorization
// decisions belong to the guard use case, which receives the (possibly nil)
// principal explicitly and decides per operation whether identity is required.
// A header that is present but malformed, unknown, or expired is rejected with
// 401 so a caller never silently falls back to anonymous with a bad token.
func AuthenticationMiddleware(
	tokenUseCase authUseCase.TokenUseCase,
	tokenService authService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrInvalidCredentials, logger)
			c.Abort()
			return
		}

		plainToken := authHeader[len(bearerPrefix):]
		if plainToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, authDomain.ErrInvalidCredentials, logger)
			c.Abort()
			return
		}

		tokenHash := tokenService.HashToken(plainToken)

		principal, err := tokenUseCase.Authenticate(c.Request.Context(), tokenHash)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		logger.Debug("authentication successful",
			slog.String("principal_id", principal.ID.String()))

		c.Next()
	}
}
