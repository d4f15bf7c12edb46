package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/app/services"
	"github.com/karmachari/portal/internal/middleware"
)

// RegistrationController handles officer, company and commission registrations
type RegistrationController struct {
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{registrationService: registrationService}
}

// ListOfficers returns a handler listing officers of kind
func (c *RegistrationController) ListOfficers(kind models.OfficerKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		officers, err := c.registrationService.ListOfficers(ctx, kind)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(officers))
	}
}

// CreateOfficer returns a handler registering an officer of kind
func (c *RegistrationController) CreateOfficer(kind models.OfficerKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req dto.CreateOfficerRequest
		if !bindRequest(ctx, &req) {
			return
		}

		officer, err := c.registrationService.CreateOfficer(ctx, kind, &req)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, dto.NewAPIResponse(officer))
	}
}

func (c *RegistrationController) ListCompanies(ctx *gin.Context) {
	companies, err := c.registrationService.ListCompanies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(companies))
}

func (c *RegistrationController) CreateCompany(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if !bindRequest(ctx, &req) {
		return
	}

	company, err := c.registrationService.CreateCompany(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(company))
}

func (c *RegistrationController) ListCommissions(ctx *gin.Context) {
	commissions, err := c.registrationService.ListCommissions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(commissions))
}

func (c *RegistrationController) CreateCommission(ctx *gin.Context) {
	var req dto.CreateCommissionRequest
	if !bindRequest(ctx, &req) {
		return
	}

	commission, err := c.registrationService.CreateCommission(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(commission))
}

func (c *RegistrationController) UpdateCommission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommissionRequest
	if !bindRequest(ctx, &req) {
		return
	}

	commission, err := c.registrationService.UpdateCommission(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(commission))
}
