package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/app/services"
	"github.com/karmachari/portal/internal/middleware"
)

// StudentController handles student registration and profiles
type StudentController struct {
	studentService     services.StudentService
	applicationService services.ApplicationService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, applicationService services.ApplicationService) *StudentController {
	return &StudentController{
		studentService:     studentService,
		applicationService: applicationService,
	}
}

// ListStudents returns every registered student
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// CreateStudent registers a student from a JSON or multipart body
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !bindRequest(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// GetStudent returns the student with the enrollment in the path
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("enrollment"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// UpdateStudent merges the provided fields into the student profile
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if !bindRequest(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("enrollment"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// ListBySchool returns the students whose school name matches the path exactly
func (c *StudentController) ListBySchool(ctx *gin.Context) {
	students, err := c.studentService.ListBySchool(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if !bindRequest(ctx, &req) {
		return
	}

	resp, err := c.studentService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Login successful", resp))
}

// ListApplications returns the applications of the student in the path
func (c *StudentController) ListApplications(ctx *gin.Context) {
	applications, err := c.applicationService.ListForStudent(ctx, ctx.Param("enrollment"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}
