package admin

import (
	"context"
	"errors"
	"time"

	contentRepo "serviciohogar/database/repository/content"
	"serviciohogar/models"
	"serviciohogar/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// AuthCachePrefix namespaces pinned session hashes in the auth cache.
	AuthCachePrefix = "admin:auth:"
	// SessionTTL bounds how long an issued token stays valid.
	SessionTTL = 12 * time.Hour
)

var (
	// ErrInvalidCredentials is returned on a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionRevoked is returned for a token whose session hash is no
	// longer pinned in the cache.
	ErrSessionRevoked = errors.New("session has been revoked")
	// ErrWeakPassword is returned when a new password fails the minimum
	// length requirement.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
)

// AuthResponse is the login result handed to the admin UI.
type AuthResponse struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthService authenticates the admin user and manages the session
// lifecycle. A session is valid only while its token hash stays pinned in
// the auth cache, so logout takes effect immediately.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Logout(ctx context.Context, token string) error
	VerifySession(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

// DefaultAuthService implements AuthService over the content repository
// and the redis auth cache.
type DefaultAuthService struct {
	Repo  contentRepo.ContentRepository
	Cache *redis.Client
}

// Login verifies the stored credentials and issues a JWT pinned in the
// auth cache.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	creds, err := s.Repo.Credentials(ctx)
	if err != nil {
		return nil, err
	}
	if email != creds.Email {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken("admin", email, SessionTTL)
	if err != nil {
		return nil, err
	}
	cacheKey := AuthCachePrefix + utils.HashToken(token)
	if err := s.Cache.Set(ctx, cacheKey, "1", SessionTTL).Err(); err != nil {
		return nil, err
	}

	zap.L().Info("admin login", zap.String("email", email))
	return &AuthResponse{
		Token:     token,
		Email:     email,
		ExpiresAt: time.Now().Add(SessionTTL),
	}, nil
}

// Logout revokes the session by dropping its pinned hash.
func (s *DefaultAuthService) Logout(ctx context.Context, token string) error {
	return s.Cache.Del(ctx, AuthCachePrefix+utils.HashToken(token)).Err()
}

// VerifySession checks both the JWT signature and the cache pin.
func (s *DefaultAuthService) VerifySession(ctx context.Context, token string) error {
	parsed, err := utils.ValidateToken(token)
	if err != nil || !parsed.Valid {
		return ErrInvalidCredentials
	}
	exists, err := s.Cache.Exists(ctx, AuthCachePrefix+utils.HashToken(token)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrSessionRevoked
	}
	return nil
}

// ChangePassword re-hashes and saves the credentials after verifying the
// current password. Existing sessions stay valid until they expire or log
// out.
func (s *DefaultAuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrWeakPassword
	}
	creds, err := s.Repo.Credentials(ctx)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Repo.SaveCredentials(ctx, models.AdminCredentials{
		Email:        creds.Email,
		PasswordHash: string(hash),
	})
}
