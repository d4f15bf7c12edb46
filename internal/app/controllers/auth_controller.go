package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/app/services"
	"github.com/karmachari/portal/internal/middleware"
	"github.com/karmachari/portal/internal/pkg/apperrors"
)

// AuthController exposes the current session
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Session describes the account behind the bearer token
func (c *AuthController) Session(ctx *gin.Context) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.authService.Session(claims)))
}

// Logout revokes the bearer token for the rest of its lifetime
func (c *AuthController) Logout(ctx *gin.Context) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	if err := c.authService.Logout(ctx, claims); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out successfully", nil))
}
