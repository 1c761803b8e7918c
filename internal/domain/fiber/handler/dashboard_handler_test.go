package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, model.RoleAdmin, true)

	job := model.Job{Title: "Engineer", Type: "Full-time", Location: "Remote", Description: "d", Status: model.JobStatusOpen}
	require.NoError(t, env.jobs.Create(&job))
	require.NoError(t, env.projects.Create(&model.Project{Title: "Site", Description: "d", Image: "/uploads/a.png", Link: "https://example.com"}))
	require.NoError(t, env.contacts.Create(&model.Contact{Name: "Bob", Email: "bob@example.com", Message: "hi"}))

	resp := env.request(t, fiber.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := parseBody(t, resp)

	assert.Equal(t, int64(1), body.Get("counts.jobs").Int())
	assert.Equal(t, int64(0), body.Get("counts.applications").Int())
	assert.Equal(t, int64(1), body.Get("counts.projects").Int())
	assert.Equal(t, int64(0), body.Get("counts.services").Int())
	assert.Equal(t, int64(1), body.Get("counts.contacts").Int())

	monthly := body.Get("monthly").Array()
	require.Len(t, monthly, 6)
	// everything was just created, so it lands in the current month
	assert.Equal(t, int64(1), monthly[5].Get("jobs").Int())
	assert.Equal(t, int64(1), monthly[5].Get("projects").Int())
}

func TestDashboardStats_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, fiber.MethodGet, "/api/dashboard/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
