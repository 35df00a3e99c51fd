package routes

import (
	"net/http/httptest"
	"testing"
	"time"

	"Tracer-Study-Portal/src/controllers"
	"Tracer-Study-Portal/src/middleware"
	"Tracer-Study-Portal/src/models"
	"Tracer-Study-Portal/src/services/drafts"
	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	draftService := drafts.NewService(drafts.NewMemoryStore(time.Hour), nil, nil, nil)
	app := fiber.New()
	InitRoutes(app, Handlers{
		Auth:           &controllers.AuthController{Drafts: draftService},
		Surveys:        &controllers.SurveyController{},
		Drafts:         &controllers.DraftController{Drafts: draftService},
		Responses:      &controllers.ResponseController{},
		ProgramStudies: &controllers.ProgramStudyController{},
	}, middleware.DefaultMatcherConfig())
	return app
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateJWT("u-1", "user@univ.ac.id", role)
	require.NoError(t, err)
	return token
}

func TestPageRoutesAreGuarded(t *testing.T) {
	app := newTestApp()
	admin := tokenFor(t, models.RoleAdmin)
	alumni := tokenFor(t, models.RoleAlumni)

	tests := []struct {
		name     string
		path     string
		cookie   string
		status   int
		location string
	}{
		{"landing is public", "/", "", fiber.StatusOK, ""},
		{"dashboard needs login", "/dashboard", "", fiber.StatusFound, "/login?redirect=%2Fdashboard"},
		{"dashboard with token", "/dashboard", "access_token=" + admin, fiber.StatusOK, ""},
		{"login with token", "/login", "access_token=" + admin, fiber.StatusFound, "/dashboard"},
		{"login without token", "/login", "", fiber.StatusOK, ""},
		{"supervisor survey is public", "/survey/42/supervisor", "", fiber.StatusOK, ""},
		{"survey needs login", "/survey/42", "", fiber.StatusFound, "/login?redirect=%2Fsurvey%2F42"},
		{"employee is admin only", "/employee", "access_token=" + alumni + "; user_role=alumni", fiber.StatusFound, "/dashboard"},
		{"employee for admin", "/employee", "access_token=" + admin + "; user_role=ADMIN", fiber.StatusOK, ""},
		{"forged token counts as none", "/profile", "access_token=not.a.jwt", fiber.StatusFound, "/login?redirect=%2Fprofile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.cookie != "" {
				req.Header.Set("Cookie", tt.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.location, resp.Header.Get("Location"))
		})
	}
}

func TestAPIRoutesRequireToken(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/surveys", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("POST", "/api/surveys/64b7f0c2a1b2c3d4e5f60718/draft", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAlumni))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/surveys/42/tabs/responses", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAlumni))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
