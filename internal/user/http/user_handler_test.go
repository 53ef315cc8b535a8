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
	authHTTP "github.com/xapps/user-management-service/internal/auth/http"
	apperrors "github.com/xapps/user-management-service/internal/errors"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
	"github.com/xapps/user-management-service/internal/user/http/dto"
)

// mockUserUseCase is a mock implementation of userUseCase.UserUseCase.
type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *userDomain.CreateUserInput,
) (*userDomain.User, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Get(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
) (*userDomain.User, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) List(
	ctx context.Context,
	principal *authDomain.Principal,
	offset, limit int,
) ([]*userDomain.User, error) {
	args := m.Called(ctx, principal, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
	input *userDomain.UpdateUserInput,
) (*userDomain.User, error) {
	args := m.Called(ctx, principal, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func (m *mockUserUseCase) ListRoles(ctx context.Context) ([]*userDomain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.Role), args.Error(1)
}

// setupTestHandler creates a test handler with mocked dependencies.
func setupTestHandler(t *testing.T) (*UserHandler, *mockUserUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	useCase := &mockUserUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserHandler(useCase, logger), useCase
}

// createTestContext builds a gin context with an optional JSON body and an
// optional authenticated principal.
func createTestContext(
	method, target string,
	body any,
	principal *authDomain.Principal,
) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	if principal != nil {
		req = req.WithContext(authHTTP.WithPrincipal(req.Context(), principal))
	}

	c.Request = req
	return c, w
}

func testDomainUser() *userDomain.User {
	now := time.Now().UTC()
	return &userDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "hashed-password",
		Roles: []userDomain.Role{
			{ID: uuid.Must(uuid.NewV7()), Name: userDomain.RoleUser},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func adminPrincipal() *authDomain.Principal {
	return &authDomain.Principal{
		ID:    uuid.Must(uuid.NewV7()),
		Email: "admin@example.com",
		Roles: []string{userDomain.RoleAdministrator},
	}
}

func TestUserHandler_CreateHandler(t *testing.T) {
	t.Run("Success_AnonymousSignup", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		user := testDomainUser()
		request := dto.CreateUserRequest{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Password:  "Passw0rd",
		}

		useCase.On("Create", mock.Anything, (*authDomain.Principal)(nil), mock.MatchedBy(
			func(input *userDomain.CreateUserInput) bool {
				return input.Email == user.Email && input.Password == "Passw0rd"
			},
		)).Return(user, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/users", request, nil)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, user.ID.String(), response.ID)
		assert.Equal(t, []string{userDomain.RoleUser}, response.Roles)
		assert.NotContains(t, w.Body.String(), "hashed-password")
		useCase.AssertExpectations(t)
	})

	t.Run("Error_EscalationByAnonymous_Returns401", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		request := dto.CreateUserRequest{
			Email:     "x@example.com",
			FirstName: "X",
			LastName:  "Y",
			Password:  "Passw0rd",
			Roles:     []string{userDomain.RoleAdministrator},
		}

		useCase.On("Create", mock.Anything, (*authDomain.Principal)(nil), mock.Anything).
			Return(nil, apperrors.ErrUnauthorized).Once()

		c, w := createTestContext(http.MethodPost, "/v1/users", request, nil)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_DuplicateEmail_Returns409", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		request := dto.CreateUserRequest{
			Email:     "x@example.com",
			FirstName: "X",
			LastName:  "Y",
			Password:  "Passw0rd",
		}

		useCase.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, userDomain.ErrUserAlreadyExists).Once()

		c, w := createTestContext(http.MethodPost, "/v1/users", request, nil)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_InvalidJSON_Returns400", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/users", nil, nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("not json")))
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		user := testDomainUser()
		principal := adminPrincipal()

		useCase.On("Get", mock.Anything, principal, user.ID).Return(user, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/users/"+user.ID.String(), nil, principal)
		c.Params = gin.Params{{Key: "id", Value: user.ID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, user.Email, response.Email)
	})

	t.Run("Error_Forbidden_Returns403", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		targetID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:    uuid.Must(uuid.NewV7()),
			Roles: []string{userDomain.RoleUser},
		}

		useCase.On("Get", mock.Anything, principal, targetID).
			Return(nil, apperrors.ErrForbidden).Once()

		c, w := createTestContext(http.MethodGet, "/v1/users/"+targetID.String(), nil, principal)
		c.Params = gin.Params{{Key: "id", Value: targetID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_Anonymous_Returns401", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		targetID := uuid.Must(uuid.NewV7())
		useCase.On("Get", mock.Anything, (*authDomain.Principal)(nil), targetID).
			Return(nil, apperrors.ErrUnauthorized).Once()

		c, w := createTestContext(http.MethodGet, "/v1/users/"+targetID.String(), nil, nil)
		c.Params = gin.Params{{Key: "id", Value: targetID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_NotFound_Returns404", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		targetID := uuid.Must(uuid.NewV7())
		principal := adminPrincipal()
		useCase.On("Get", mock.Anything, principal, targetID).
			Return(nil, userDomain.ErrUserNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/v1/users/"+targetID.String(), nil, principal)
		c.Params = gin.Params{{Key: "id", Value: targetID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidUUID_Returns422", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/users/not-a-uuid", nil, adminPrincipal())
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUserHandler_ListHandler(t *testing.T) {
	t.Run("Success_DefaultPagination", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		principal := adminPrincipal()
		users := []*userDomain.User{testDomainUser(), testDomainUser()}

		useCase.On("List", mock.Anything, principal, 0, 50).Return(users, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/users", nil, principal)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListUsersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 2)
	})

	t.Run("Error_Forbidden_Returns403", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		principal := &authDomain.Principal{
			ID:    uuid.Must(uuid.NewV7()),
			Roles: []string{userDomain.RoleUser},
		}
		useCase.On("List", mock.Anything, principal, 0, 50).
			Return(nil, apperrors.ErrForbidden).Once()

		c, w := createTestContext(http.MethodGet, "/v1/users", nil, principal)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_InvalidPagination_Returns422", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/users?offset=-1", nil, adminPrincipal())
		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUserHandler_UpdateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		user := testDomainUser()
		principal := adminPrincipal()
		request := dto.UpdateUserRequest{
			Email:     user.Email,
			FirstName: "Updated",
			LastName:  user.LastName,
		}

		useCase.On("Update", mock.Anything, principal, user.ID, mock.MatchedBy(
			func(input *userDomain.UpdateUserInput) bool {
				return input.FirstName == "Updated" && input.Password == ""
			},
		)).Return(user, nil).Once()

		c, w := createTestContext(http.MethodPut, "/v1/users/"+user.ID.String(), request, principal)
		c.Params = gin.Params{{Key: "id", Value: user.ID.String()}}
		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_Escalation_Returns403", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		targetID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{ID: targetID, Roles: []string{userDomain.RoleUser}}
		request := dto.UpdateUserRequest{
			Email:     "x@example.com",
			FirstName: "X",
			LastName:  "Y",
			Roles:     []string{userDomain.RoleAdministrator},
		}

		useCase.On("Update", mock.Anything, principal, targetID, mock.Anything).
			Return(nil, apperrors.ErrForbidden).Once()

		c, w := createTestContext(http.MethodPut, "/v1/users/"+targetID.String(), request, principal)
		c.Params = gin.Params{{Key: "id", Value: targetID.String()}}
		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUserHandler_DeleteHandler(t *testing.T) {
	t.Run("Success_Returns204", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		targetID := uuid.Must(uuid.NewV7())
		principal := adminPrincipal()

		useCase.On("Delete", mock.Anything, principal, targetID).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/users/"+targetID.String(), nil, principal)
		c.Params = gin.Params{{Key: "id", Value: targetID.String()}}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("Error_NotFound_Returns404", func(t *testing.T) {
		handler, useCase := setupTestHandler(t)

		targetID := uuid.Must(uuid.NewV7())
		principal := adminPrincipal()

		useCase.On("Delete", mock.Anything, principal, targetID).
			Return(userDomain.ErrUserNotFound).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/users/"+targetID.String(), nil, principal)
		c.Params = gin.Params{{Key: "id", Value: targetID.String()}}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRoleHandler_ListHandler(t *testing.T) {
	t.Run("Success_Public", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		useCase := &mockUserUseCase{}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		handler := NewRoleHandler(useCase, logger)

		roles := []*userDomain.Role{
			{ID: uuid.Must(uuid.NewV7()), Name: userDomain.RoleAdministrator},
			{ID: uuid.Must(uuid.NewV7()), Name: userDomain.RoleUser},
		}
		useCase.On("ListRoles", mock.Anything).Return(roles, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/roles", nil, nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListRolesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 2)
	})
}
