package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, model.RoleAdmin, true)

	resp := env.request(t, fiber.MethodPost, "/api/jobs", token, map[string]string{
		"title":       "Engineer",
		"type":        "Full-time",
		"location":    "Remote",
		"description": "Build things",
		"status":      "Open",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	jobID := parseBody(t, resp).Get("id").String()
	require.NotEmpty(t, jobID)

	// the careers form posts without credentials
	resp = env.request(t, fiber.MethodPost, "/api/applications", "", map[string]string{
		"name":        "Jane Doe",
		"email":       "jane@example.com",
		"phone":       "+123456789",
		"resume":      "https://example.com/jane.pdf",
		"coverLetter": "Hello",
		"jobId":       jobID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := parseBody(t, resp)
	applicationID := created.Get("id").String()
	assert.Equal(t, "Pending", created.Get("status").String())

	resp = env.request(t, fiber.MethodGet, "/api/applications/"+applicationID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := parseBody(t, resp)
	assert.Equal(t, "Pending", fetched.Get("status").String())
	assert.Equal(t, "Engineer", fetched.Get("job.title").String())

	resp = env.request(t, fiber.MethodPut, "/api/applications/"+applicationID+"/status", token, map[string]string{
		"status": "Accepted",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, fiber.MethodGet, "/api/applications/"+applicationID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := parseBody(t, resp)
	assert.Equal(t, "Accepted", updated.Get("status").String())
	// status is the only field that moved
	assert.Equal(t, fetched.Get("name").String(), updated.Get("name").String())
	assert.Equal(t, fetched.Get("email").String(), updated.Get("email").String())
	assert.Equal(t, fetched.Get("phone").String(), updated.Get("phone").String())
	assert.Equal(t, fetched.Get("resume").String(), updated.Get("resume").String())
	assert.Equal(t, fetched.Get("coverLetter").String(), updated.Get("coverLetter").String())
	assert.Equal(t, fetched.Get("jobId").String(), updated.Get("jobId").String())
}

func TestApplicationCreate_UnknownJob(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, fiber.MethodPost, "/api/applications", "", map[string]string{
		"name":  "Jane Doe",
		"email": "jane@example.com",
		"phone": "+123456789",
		"jobId": "00000000-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApplicationCreate_Validation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, fiber.MethodPost, "/api/applications", "", map[string]string{
		"name": "Jane Doe",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	message := parseBody(t, resp).Get("message").String()
	assert.Contains(t, message, "email")
	assert.Contains(t, message, "jobId")
}

func TestApplicationStatus_InvalidValue(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, model.RoleAdmin, true)

	job := model.Job{Title: "Engineer", Type: "Full-time", Location: "Remote", Description: "d", Status: model.JobStatusOpen}
	require.NoError(t, env.jobs.Create(&job))
	application := model.Application{Name: "Jane", Email: "jane@example.com", Phone: "1", JobID: job.ID, Status: model.ApplicationStatusPending}
	require.NoError(t, env.applications.Create(&application))

	resp := env.request(t, fiber.MethodPut, "/api/applications/"+application.ID.String()+"/status", token, map[string]string{
		"status": "Archived",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApplicationList_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, fiber.MethodGet, "/api/applications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
