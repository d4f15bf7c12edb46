package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/controllers"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/middleware"
	"github.com/karmachari/portal/internal/pkg/auth"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	Student      *controllers.StudentController
	Official     *controllers.OfficialController
	Employer     *controllers.EmployerController
	Vacancy      *controllers.VacancyController
	School       *controllers.SchoolController
	Application  *controllers.ApplicationController
	Registration *controllers.RegistrationController
	Auth         *controllers.AuthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	dto.SetupValidator()

	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", ctrl.Student.ListStudents)
		students.POST("", ctrl.Student.CreateStudent)
		students.POST("/login", ctrl.Student.Login)
		students.GET("/by-school/:name", ctrl.Student.ListBySchool)
		students.GET("/:enrollment", ctrl.Student.GetStudent)
		students.PUT("/:enrollment", ctrl.Student.UpdateStudent)
		students.GET("/:enrollment/profile", ctrl.Student.GetStudent)
		students.GET("/:enrollment/applications", ctrl.Student.ListApplications)
	}

	officials := v1.Group("/officials")
	{
		officials.GET("", ctrl.Official.ListOfficials)
		officials.POST("", ctrl.Official.CreateOfficial)
		officials.POST("/login", ctrl.Official.Login)
	}

	employers := v1.Group("/employers")
	{
		employers.GET("", ctrl.Employer.ListEmployers)
		employers.POST("", ctrl.Employer.CreateEmployer)
		employers.PUT("", ctrl.Employer.Resubmit)
		employers.POST("/login", ctrl.Employer.Login)
		employers.GET("/:id", ctrl.Employer.GetEmployer)
		employers.PUT("/:id", ctrl.Employer.UpdateEmployer)
		employers.GET("/:id/reason", ctrl.Employer.GetEmployer)
		employers.PUT("/:id/reason", ctrl.Employer.ResubmitByID)
		employers.GET("/:id/profile", ctrl.Employer.Profile)
	}

	vacancies := v1.Group("/vacancies")
	{
		vacancies.GET("", ctrl.Vacancy.ListVacancies)
		vacancies.POST("", ctrl.Vacancy.CreateVacancy)
		vacancies.GET("/:id", ctrl.Vacancy.GetVacancy)
		vacancies.PUT("/:id", ctrl.Vacancy.ReplaceVacancy)
		vacancies.DELETE("/:id", ctrl.Vacancy.DeleteVacancy)
	}

	schools := v1.Group("/schools")
	{
		schools.GET("", ctrl.School.ListSchools)
		schools.POST("", ctrl.School.CreateSchool)
		schools.PUT("", ctrl.School.Resubmit)
		schools.POST("/login", ctrl.School.Login)
		schools.GET("/profile/:email", ctrl.School.Profile)
		schools.GET("/:id", ctrl.School.GetSchool)
		schools.PUT("/:id", ctrl.School.UpdateSchool)
		schools.GET("/:id/reason", ctrl.School.GetSchool)
		schools.PUT("/:id/reason", ctrl.School.ResubmitByID)
	}

	applications := v1.Group("/applications")
	{
		applications.GET("", ctrl.Application.ListRoster)
		applications.POST("/apply", ctrl.Application.Apply)
		applications.POST("/confirm", ctrl.Application.ConfirmInterview)

		// Reviewing an application needs an official or school session
		applications.PATCH("/:id/status",
			authMiddleware.JWTAuth(),
			authMiddleware.RequireKinds(auth.KindOfficial, auth.KindSchool),
			ctrl.Application.UpdateStatus,
		)
	}

	v1.GET("/companies", ctrl.Registration.ListCompanies)
	v1.POST("/companies", ctrl.Registration.CreateCompany)
	v1.GET("/commissions", ctrl.Registration.ListCommissions)
	v1.POST("/commissions", ctrl.Registration.CreateCommission)
	v1.PUT("/commissions/:id", ctrl.Registration.UpdateCommission)
	v1.GET("/alo", ctrl.Registration.ListOfficers(models.OfficerALO))
	v1.POST("/alo", ctrl.Registration.CreateOfficer(models.OfficerALO))
	v1.GET("/dlo", ctrl.Registration.ListOfficers(models.OfficerDLO))
	v1.POST("/dlo", ctrl.Registration.CreateOfficer(models.OfficerDLO))

	// --- Authenticated session routes ---
	session := v1.Group("/auth")
	session.Use(authMiddleware.JWTAuth())
	{
		session.GET("/session", ctrl.Auth.Session)
		session.POST("/logout", ctrl.Auth.Logout)
	}
}
