package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/app/services"
	"github.com/karmachari/portal/internal/middleware"
)

// OfficialController handles official accounts
type OfficialController struct {
	officialService services.OfficialService
}

// NewOfficialController creates a new OfficialController
func NewOfficialController(officialService services.OfficialService) *OfficialController {
	return &OfficialController{officialService: officialService}
}

func (c *OfficialController) ListOfficials(ctx *gin.Context) {
	officials, err := c.officialService.ListOfficials(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(officials))
}

func (c *OfficialController) CreateOfficial(ctx *gin.Context) {
	var req dto.CreateOfficialRequest
	if !bindRequest(ctx, &req) {
		return
	}

	official, err := c.officialService.CreateOfficial(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(official))
}

// Login authenticates an official by email, password and role
func (c *OfficialController) Login(ctx *gin.Context) {
	var req dto.OfficialLoginRequest
	if !bindRequest(ctx, &req) {
		return
	}

	resp, err := c.officialService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Login successful", resp))
}
