package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/app/services"
	"github.com/karmachari/portal/internal/middleware"
)

// EmployerController handles employer registration and review
type EmployerController struct {
	employerService services.EmployerService
}

// NewEmployerController creates a new EmployerController
func NewEmployerController(employerService services.EmployerService) *EmployerController {
	return &EmployerController{employerService: employerService}
}

func (c *EmployerController) ListEmployers(ctx *gin.Context) {
	employers, err := c.employerService.ListEmployers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(employers))
}

func (c *EmployerController) CreateEmployer(ctx *gin.Context) {
	var req dto.CreateEmployerRequest
	if !bindRequest(ctx, &req) {
		return
	}

	employer, err := c.employerService.CreateEmployer(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(employer))
}

// Resubmit handles PUT /employers with the employer id in the body
func (c *EmployerController) Resubmit(ctx *gin.Context) {
	var req dto.ResubmitEmployerRequest
	if !bindRequest(ctx, &req) {
		return
	}

	employer, err := c.employerService.ResubmitEmployer(ctx, req.ID, &req.EmployerFields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Employer resubmitted successfully!", employer))
}

// GetEmployer serves both GET /employers/:id and GET /employers/:id/reason
func (c *EmployerController) GetEmployer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	employer, err := c.employerService.GetEmployer(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(employer))
}

// UpdateEmployer applies an administrative partial update
func (c *EmployerController) UpdateEmployer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEmployerRequest
	if !bindRequest(ctx, &req) {
		return
	}

	employer, err := c.employerService.UpdateEmployer(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(employer))
}

// ResubmitByID handles PUT /employers/:id/reason
func (c *EmployerController) ResubmitByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EmployerFields
	if !bindRequest(ctx, &req) {
		return
	}

	employer, err := c.employerService.ResubmitEmployer(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(employer))
}

func (c *EmployerController) Login(ctx *gin.Context) {
	var req dto.EmployerLoginRequest
	if !bindRequest(ctx, &req) {
		return
	}

	resp, err := c.employerService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Login successful", resp))
}

// Profile looks the employer up by enrollment; the route keeps the :id name
func (c *EmployerController) Profile(ctx *gin.Context) {
	employer, err := c.employerService.GetEmployerByEnrollment(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(employer))
}
