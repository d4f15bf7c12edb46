package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/controllers"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/app/services"
	"github.com/karmachari/portal/internal/middleware"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notRevoked struct{}

func (notRevoked) IsRevoked(context.Context, string) (bool, error) { return false, nil }

type statusOnlyService struct {
	services.ApplicationService
}

func (statusOnlyService) UpdateStatus(_ context.Context, id int64, status models.ApplicationStatus) (*models.JobApplication, error) {
	return &models.JobApplication{ID: id, Status: status}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "karmachari.test",
	})

	router := gin.New()
	SetupRouter(router, Controllers{
		Student:      controllers.NewStudentController(nil, nil),
		Official:     controllers.NewOfficialController(nil),
		Employer:     controllers.NewEmployerController(nil),
		Vacancy:      controllers.NewVacancyController(nil),
		School:       controllers.NewSchoolController(nil),
		Application:  controllers.NewApplicationController(statusOnlyService{}),
		Registration: controllers.NewRegistrationController(nil),
		Auth:         controllers.NewAuthController(nil),
	}, middleware.NewAuthMiddleware(jwtService, notRevoked{}))

	return router, jwtService
}

func TestSetupRouter_RegistersRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /api/v1/students/login",
		"GET /api/v1/students/:enrollment/applications",
		"PUT /api/v1/employers",
		"PUT /api/v1/employers/:id/reason",
		"GET /api/v1/schools/profile/:email",
		"DELETE /api/v1/vacancies/:id",
		"PATCH /api/v1/applications/:id/status",
		"PUT /api/v1/commissions/:id",
		"POST /api/v1/dlo",
		"POST /api/v1/auth/logout",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestApplicationStatusRequiresReviewer(t *testing.T) {
	router, jwtService := newTestRouter(t)

	tokenFor := func(kind string) string {
		token, _, err := jwtService.GenerateToken(auth.Subject{Kind: kind, ID: 1, Identifier: "x"})
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"no session", "", http.StatusUnauthorized},
		{"student session", tokenFor(auth.KindStudent), http.StatusForbidden},
		{"official session", tokenFor(auth.KindOfficial), http.StatusOK},
		{"school session", tokenFor(auth.KindSchool), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/9/status", strings.NewReader(`{"status":"Rejected"}`))
			req.Header.Set("Content-Type", "application/json")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
