package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
	authService "github.com/xapps/user-management-service/internal/auth/service"
	"github.com/xapps/user-management-service/internal/config"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// tokenUseCase implements TokenUseCase for managing authentication tokens.
type tokenUseCase struct {
	config        *config.Config
	userRepo      UserRepository
	tokenRepo     TokenRepository
	secretService authService.SecretService
	tokenService  authService.TokenService
}

// Login verifies the submitted credentials and issues a new bearer token.
//
// Security notes:
//   - Returns ErrInvalidCredentials for both unknown emails and wrong passwords
//     to prevent account enumeration.
//   - The plain token is only returned once; the database stores its SHA-256 hash.
//   - Token expiration is set from Config.AuthTokenExpiration.
func (t *tokenUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := t.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !t.secretService.CompareSecret(input.Password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	plainToken, tokenHash, err := t.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	token := &authDomain.Token{
		ID:        uuid.Must(uuid.NewV7()),
		TokenHash: tokenHash,
		UserID:    user.ID,
		ExpiresAt: now.Add(t.config.AuthTokenExpiration),
		CreatedAt: now,
	}

	if err := t.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		PlainToken: plainToken,
		ExpiresAt:  token.ExpiresAt,
		Principal: &authDomain.Principal{
			ID:    user.ID,
			Email: user.Email,
			Roles: user.RoleNames(),
		},
	}, nil
}

// Authenticate validates a token hash and returns the acting principal.
//
// The principal carries the user's current role set, so a role change takes
// effect on the next request without re-issuing tokens.
func (t *tokenUseCase) Authenticate(ctx context.Context, tokenHash string) (*authDomain.Principal, error) {
	token, err := t.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, authDomain.ErrTokenNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if token.IsExpired(time.Now().UTC()) {
		return nil, authDomain.ErrInvalidCredentials
	}

	user, err := t.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		// The user may have been deleted after the token was issued.
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	return &authDomain.Principal{
		ID:    user.ID,
		Email: user.Email,
		Roles: user.RoleNames(),
	}, nil
}

// CleanupExpired removes tokens that expired more than days ago.
func (t *tokenUseCase) CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error) {
	before := time.Now().UTC().AddDate(0, 0, -days)

	if dryRun {
		return t.tokenRepo.CountExpiredBefore(ctx, before)
	}
	return t.tokenRepo.DeleteExpiredBefore(ctx, before)
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(
	config *config.Config,
	userRepo UserRepository,
	tokenRepo TokenRepository,
	secretService authService.SecretService,
	tokenService authService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		config:        config,
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		secretService: secretService,
		tokenService:  tokenService,
	}
}
