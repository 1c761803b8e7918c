package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCRUD(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, model.RoleAdmin, true)

	resp := env.request(t, fiber.MethodPost, "/api/services", token, map[string]string{
		"title":       "Web Development",
		"description": "Websites and web apps",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := parseBody(t, resp)
	id := created.Get("id").String()
	assert.Equal(t, "code", created.Get("icon").String(), "icon defaults to code")

	resp = env.request(t, fiber.MethodPut, "/api/services/"+id, token, map[string]string{
		"icon": "design",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := parseBody(t, resp)
	assert.Equal(t, "design", updated.Get("icon").String())
	assert.Equal(t, "Web Development", updated.Get("title").String())

	// services are public reads
	resp = env.request(t, fiber.MethodGet, "/api/services/"+id, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, fiber.MethodDelete, "/api/services/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, fiber.MethodGet, "/api/services/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
