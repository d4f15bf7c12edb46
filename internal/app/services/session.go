package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// TokenIssuer signs session tokens
type TokenIssuer interface {
	GenerateToken(subject auth.Subject) (string, time.Time, error)
}

// TokenRevoker records revoked session token ids
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// issueSession signs a token for subject and wraps it with the account record
func issueSession(tokens TokenIssuer, subject auth.Subject, user interface{}) (*dto.LoginResponse, error) {
	token, expiresAt, err := tokens.GenerateToken(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &dto.LoginResponse{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// unknownAccountHash is compared against when no account matches, so that
// unknown identifiers cost the same bcrypt work as wrong passwords
func unknownAccountHash() string {
	dummyHashOnce.Do(func() {
		dummyHash, _ = auth.HashPassword("karmachari-unknown-account")
	})
	return dummyHash
}

// verifyLogin collapses lookup and password failures into one generic error
func verifyLogin(lookupErr error, passwordHash, password string) error {
	if lookupErr != nil {
		if apperrors.Is(lookupErr, apperrors.ErrResourceNotFound) {
			auth.CheckPassword(unknownAccountHash(), password)
			return apperrors.ErrInvalidCredentials
		}
		return lookupErr
	}
	if !auth.CheckPassword(passwordHash, password) {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

// AuthService defines session inspection and logout
type AuthService interface {
	Session(claims *auth.Claims) *dto.SessionResponse
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authServiceImpl struct {
	revoker TokenRevoker
	now     func() time.Time
	logger  zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(revoker TokenRevoker, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		revoker: revoker,
		now:     time.Now,
		logger:  logger,
	}
}

// Session describes the account behind claims
func (s *authServiceImpl) Session(claims *auth.Claims) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		Kind:       claims.Kind,
		ID:         claims.RecordID,
		Identifier: claims.Identifier,
		Role:       claims.Role,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	return resp
}

// Logout revokes the token id until the token would have expired anyway
func (s *authServiceImpl) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims.ID == "" {
		return apperrors.ErrTokenInvalid
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}

	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	s.logger.Info().
		Str("kind", claims.Kind).
		Int64("recordId", claims.RecordID).
		Msg("Session revoked")
	return nil
}
