package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/app/services"
	"github.com/karmachari/portal/internal/middleware"
)

// ApplicationController handles job applications
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// Apply records an application; a repeated pair answers 200 without a new row
func (c *ApplicationController) Apply(ctx *gin.Context) {
	var req dto.ApplicationPairRequest
	if !bindRequest(ctx, &req) {
		return
	}

	application, created, err := c.applicationService.Apply(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("Already applied", nil))
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Applied successfully", application))
}

// ConfirmInterview marks the interview confirmed, creating the application when missing
func (c *ApplicationController) ConfirmInterview(ctx *gin.Context) {
	var req dto.ApplicationPairRequest
	if !bindRequest(ctx, &req) {
		return
	}

	application, err := c.applicationService.ConfirmInterview(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Interview confirmed", application))
}

// ListRoster returns every application joined with its student and vacancy
func (c *ApplicationController) ListRoster(ctx *gin.Context) {
	roster, err := c.applicationService.ListRoster(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(roster))
}

func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !bindRequest(ctx, &req) {
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}
