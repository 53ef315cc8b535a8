package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// mockTokenService is a mock implementation of authService.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) HashToken(plainToken string) string {
	args := m.Called(plainToken)
	return args.String(0)
}

// setupMiddlewareRouter builds a router with the authentication middleware and
// a probe route that reports the resolved principal.
func setupMiddlewareRouter(useCase *mockTokenUseCase, tokenSvc *mockTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(AuthenticationMiddleware(useCase, tokenSvc, testLogger()))
	router.GET("/probe", func(c *gin.Context) {
		principal := GetPrincipal(c.Request.Context())
		if principal == nil {
			c.JSON(http.StatusOK, gin.H{"principal": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"principal": principal.Email})
	})
	return router
}

func TestAuthenticationMiddleware(t *testing.T) {
	t.Run("NoHeader_ProceedsAnonymous", func(t *testing.T) {
		useCase := &mockTokenUseCase{}
		tokenSvc := &mockTokenService{}
		router := setupMiddlewareRouter(useCase, tokenSvc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"principal":null`)
		useCase.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("ValidToken_SetsPrincipal", func(t *testing.T) {
		useCase := &mockTokenUseCase{}
		tokenSvc := &mockTokenService{}
		router := setupMiddlewareRouter(useCase, tokenSvc)

		principal := &authDomain.Principal{
			ID:    uuid.Must(uuid.NewV7()),
			Email: "jane@example.com",
			Roles: []string{userDomain.RoleUser},
		}
		tokenSvc.On("HashToken", "plain-token").Return("token-hash").Once()
		useCase.On("Authenticate", mock.Anything, "token-hash").Return(principal, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer plain-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jane@example.com")
	})

	t.Run("LowercaseBearerPrefix_Accepted", func(t *testing.T) {
		useCase := &mockTokenUseCase{}
		tokenSvc := &mockTokenService{}
		router := setupMiddlewareRouter(useCase, tokenSvc)

		principal := &authDomain.Principal{
			ID:    uuid.Must(uuid.NewV7()),
			Email: "jane@example.com",
		}
		tokenSvc.On("HashToken", "plain-token").Return("token-hash").Once()
		useCase.On("Authenticate", mock.Anything, "token-hash").Return(principal, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "bearer plain-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UnknownToken_Returns401", func(t *testing.T) {
		useCase := &mockTokenUseCase{}
		tokenSvc := &mockTokenService{}
		router := setupMiddlewareRouter(useCase, tokenSvc)

		tokenSvc.On("HashToken", "bad-token").Return("bad-hash").Once()
		useCase.On("Authenticate", mock.Anything, "bad-hash").
			Return(nil, authDomain.ErrInvalidCredentials).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeader_Returns401", func(t *testing.T) {
		useCase := &mockTokenUseCase{}
		tokenSvc := &mockTokenService{}
		router := setupMiddlewareRouter(useCase, tokenSvc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		useCase.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("EmptyBearerToken_Returns401", func(t *testing.T) {
		useCase := &mockTokenUseCase{}
		tokenSvc := &mockTokenService{}
		router := setupMiddlewareRouter(useCase, tokenSvc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer ")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
