package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/app/services"
	"github.com/karmachari/portal/internal/middleware"
)

// VacancyController handles vacancy postings
type VacancyController struct {
	vacancyService services.VacancyService
}

// NewVacancyController creates a new VacancyController
func NewVacancyController(vacancyService services.VacancyService) *VacancyController {
	return &VacancyController{vacancyService: vacancyService}
}

func (c *VacancyController) ListVacancies(ctx *gin.Context) {
	vacancies, err := c.vacancyService.ListVacancies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(vacancies))
}

func (c *VacancyController) CreateVacancy(ctx *gin.Context) {
	var req dto.VacancyRequest
	if !bindRequest(ctx, &req) {
		return
	}

	vacancy, err := c.vacancyService.CreateVacancy(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(vacancy))
}

func (c *VacancyController) GetVacancy(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	vacancy, err := c.vacancyService.GetVacancy(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(vacancy))
}

// ReplaceVacancy overwrites every field of the vacancy
func (c *VacancyController) ReplaceVacancy(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.VacancyRequest
	if !bindRequest(ctx, &req) {
		return
	}

	vacancy, err := c.vacancyService.ReplaceVacancy(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(vacancy))
}

func (c *VacancyController) DeleteVacancy(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.vacancyService.DeleteVacancy(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
