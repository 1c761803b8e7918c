package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/domain/fiber/handler"
	"github.com/hafizhramadhan/company-profile-api/internal/middleware"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/hafizhramadhan/company-profile-api/internal/repository"
	"github.com/hafizhramadhan/company-profile-api/internal/usecase"
	"github.com/hafizhramadhan/company-profile-api/internal/util"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "uploads")
	if err != nil {
		panic(err)
	}
	os.Setenv("APP_ENV", "test")
	os.Setenv("UPLOAD_DIR", dir)

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	tokens *util.TokenManager

	jobs         *repository.JobRepository
	applications *repository.ApplicationRepository
	projects     *repository.ProjectRepository
	services     *repository.ServiceRepository
	contacts     *repository.ContactRepository
	admins       *repository.AdminRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Admin{},
		&model.Job{},
		&model.Application{},
		&model.Project{},
		&model.Service{},
		&model.Contact{},
	))

	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return ctx.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})

	env := &testEnv{
		app:          app,
		db:           db,
		tokens:       util.NewTokenManager(testSecret, time.Hour),
		admins:       repository.NewAdminRepository(db),
		jobs:         repository.NewJobRepository(db),
		applications: repository.NewApplicationRepository(db),
		projects:     repository.NewProjectRepository(db),
		services:     repository.NewServiceRepository(db),
		contacts:     repository.NewContactRepository(db),
	}

	auth := middleware.NewAuthMiddleware(env.tokens, env.admins)
	dashboard := usecase.NewDashboardUsecase(env.jobs, env.applications, env.projects, env.services, env.contacts)

	api := app.Group("/api")
	handler.NewAdminHandler(env.admins, env.tokens, auth).RegisterRoutes(api)
	handler.NewJobHandler(env.jobs, auth).RegisterRoutes(api)
	handler.NewApplicationHandler(env.applications, env.jobs, auth).RegisterRoutes(api)
	handler.NewProjectHandler(env.projects, auth).RegisterRoutes(api)
	handler.NewServiceHandler(env.services, auth).RegisterRoutes(api)
	handler.NewContactHandler(env.contacts, auth).RegisterRoutes(api)
	handler.NewDashboardHandler(dashboard, auth).RegisterRoutes(api)

	return env
}

// seedAdmin inserts an admin row directly and returns it with a
// session token signed by the test manager.
func (env *testEnv) seedAdmin(t *testing.T, role string, active bool) (*model.Admin, string) {
	t.Helper()

	hash, err := util.HashPassword("secret123")
	require.NoError(t, err)
	admin := model.Admin{
		Username: role + "-user",
		Email:    role + "@example.com",
		Password: hash,
		Role:     role,
		IsActive: active,
	}
	require.NoError(t, env.admins.Create(&admin))

	token, err := env.tokens.Generate(admin.ID, admin.Email, admin.Role)
	require.NoError(t, err)
	return &admin, token
}

func (env *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, "http://example.com"+path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func parseBody(t *testing.T, resp *http.Response) gjson.Result {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return gjson.ParseBytes(raw)
}
