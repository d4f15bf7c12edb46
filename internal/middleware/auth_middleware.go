package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/karmachari/portal/internal/pkg/logger"
)

const claimsKey = "sessionClaims"

// TokenValidator verifies session tokens
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// RevocationChecker reports whether a token id was revoked by logout
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	tokens      TokenValidator
	revocations RevocationChecker
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator, revocations RevocationChecker) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:      tokens,
		revocations: revocations,
	}
}

// JWTAuth requires a valid, unrevoked session token
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		revoked, err := m.revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to check session revocation")
			AbortWithError(c, err)
			return
		}
		if revoked {
			AbortWithError(c, apperrors.ErrTokenRevoked)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireKinds admits only sessions of the listed account kinds
func (m *AuthMiddleware) RequireKinds(kinds ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		allowed[kind] = true
	}

	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if !allowed[claims.Kind] {
			AbortWithError(c, apperrors.NewForbiddenError("You don't have sufficient permissions for this operation"))
			return
		}

		c.Next()
	}
}

// GetClaims returns the session claims stored by JWTAuth
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
