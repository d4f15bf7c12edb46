package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/app/services"
	"github.com/karmachari/portal/internal/middleware"
)

// SchoolController handles school registration and review
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{schoolService: schoolService}
}

func (c *SchoolController) ListSchools(ctx *gin.Context) {
	schools, err := c.schoolService.ListSchools(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schools))
}

func (c *SchoolController) CreateSchool(ctx *gin.Context) {
	var req dto.CreateSchoolRequest
	if !bindRequest(ctx, &req) {
		return
	}

	school, err := c.schoolService.CreateSchool(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("School registered successfully!", school))
}

// Resubmit handles PUT /schools with the school id in the body
func (c *SchoolController) Resubmit(ctx *gin.Context) {
	var req dto.ResubmitSchoolRequest
	if !bindRequest(ctx, &req) {
		return
	}

	school, err := c.schoolService.ResubmitSchool(ctx, req.ID, &req.SchoolFields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("School resubmitted successfully!", school))
}

// GetSchool serves both GET /schools/:id and GET /schools/:id/reason
func (c *SchoolController) GetSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	school, err := c.schoolService.GetSchool(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(school))
}

func (c *SchoolController) UpdateSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSchoolRequest
	if !bindRequest(ctx, &req) {
		return
	}

	school, err := c.schoolService.UpdateSchool(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(school))
}

// ResubmitByID handles PUT /schools/:id/reason
func (c *SchoolController) ResubmitByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SchoolFields
	if !bindRequest(ctx, &req) {
		return
	}

	school, err := c.schoolService.ResubmitSchool(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(school))
}

func (c *SchoolController) Login(ctx *gin.Context) {
	var req dto.SchoolLoginRequest
	if !bindRequest(ctx, &req) {
		return
	}

	resp, err := c.schoolService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Login successful", resp))
}

// Profile looks the school up by email
func (c *SchoolController) Profile(ctx *gin.Context) {
	school, err := c.schoolService.GetSchoolByEmail(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(school))
}
