package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
	"github.com/xapps/user-management-service/internal/auth/http/dto"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// mockTokenUseCase is a mock implementation of authUseCase.TokenUseCase.
type mockTokenUseCase struct {
	mock.Mock
}

func (m *mockTokenUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func (m *mockTokenUseCase) Authenticate(
	ctx context.Context,
	tokenHash string,
) (*authDomain.Principal, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

func (m *mockTokenUseCase) CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error) {
	args := m.Called(ctx, days, dryRun)
	return args.Get(0).(int64), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createJSONContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestTokenHandler_LoginHandler(t *testing.T) {
	t.Run("Success_ReturnsToken", func(t *testing.T) {
		useCase := &mockTokenUseCase{}
		handler := NewTokenHandler(useCase, testLogger())

		expiresAt := time.Now().UTC().Add(time.Hour)
		output := &authDomain.LoginOutput{
			PlainToken: "plain-token",
			ExpiresAt:  expiresAt,
			Principal: &authDomain.Principal{
				ID:    uuid.Must(uuid.NewV7()),
				Email: "jane@example.com",
				Roles: []string{userDomain.RoleUser},
			},
		}

		useCase.On("Login", mock.Anything, mock.MatchedBy(func(input *authDomain.LoginInput) bool {
			return input.Email == "jane@example.com" && input.Password == "Passw0rd"
		})).Return(output, nil).Once()

		c, w := createJSONContext(http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "Passw0rd",
		})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "plain-token", response.AccessToken)
		assert.Equal(t, "Bearer", response.TokenType)
		useCase.AssertExpectations(t)
	})

	t.Run("Error_BadCredentials_Returns401", func(t *testing.T) {
		useCase := &mockTokenUseCase{}
		handler := NewTokenHandler(useCase, testLogger())

		useCase.On("Login", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrInvalidCredentials).Once()

		c, w := createJSONContext(http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_InvalidEmail_Returns422", func(t *testing.T) {
		useCase := &mockTokenUseCase{}
		handler := NewTokenHandler(useCase, testLogger())

		c, w := createJSONContext(http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    "not-an-email",
			Password: "Passw0rd",
		})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidJSON_Returns400", func(t *testing.T) {
		useCase := &mockTokenUseCase{}
		handler := NewTokenHandler(useCase, testLogger())

		c, w := createJSONContext(http.MethodPost, "/v1/auth/login", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("not json")))
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
