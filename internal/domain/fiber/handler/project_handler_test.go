package handler_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProjects(t *testing.T, env *testEnv, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		project := model.Project{
			Title:       fmt.Sprintf("Project %02d", i),
			Description: "description",
			Image:       "/uploads/sample.png",
			Link:        "https://example.com",
		}
		require.NoError(t, env.projects.Create(&project))
	}
}

func TestProjectList_Pagination(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env, 12)

	resp := env.request(t, fiber.MethodGet, "/api/projects?page=2&limit=5", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := parseBody(t, resp)
	assert.Equal(t, int64(12), body.Get("total").Int())
	assert.Equal(t, int64(2), body.Get("page").Int())
	assert.Equal(t, int64(5), body.Get("limit").Int())
	assert.Equal(t, int64(3), body.Get("totalPages").Int())
	assert.Len(t, body.Get("data").Array(), 5)
	assert.Equal(t, "Project 05", body.Get("data.0.title").String())
}

func TestProjectList_DefaultsOnBadParams(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env, 3)

	resp := env.request(t, fiber.MethodGet, "/api/projects?page=abc&limit=-4", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := parseBody(t, resp)
	assert.Equal(t, int64(1), body.Get("page").Int())
	assert.Equal(t, int64(10), body.Get("limit").Int())
	assert.Len(t, body.Get("data").Array(), 3)
}

func TestProjectList_EmptyKeepsEnvelope(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, fiber.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := parseBody(t, resp)
	require.True(t, body.Get("data").IsArray())
	assert.Len(t, body.Get("data").Array(), 0)
	assert.Equal(t, int64(0), body.Get("total").Int())
	assert.Equal(t, int64(0), body.Get("totalPages").Int())
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func (env *testEnv) multipartRequest(t *testing.T, method, path, token string, body *bytes.Buffer, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, "http://example.com"+path, body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProjectUpload(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, model.RoleAdmin, true)

	body, contentType := multipartBody(t, nil, "image", "cover.png", []byte("fake-png-bytes"))
	resp := env.multipartRequest(t, fiber.MethodPost, "/api/projects/upload", token, body, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	imageURL := parseBody(t, resp).Get("imageUrl").String()
	assert.True(t, strings.HasPrefix(imageURL, "http://example.com/uploads/"), "got %q", imageURL)
	assert.True(t, strings.HasSuffix(imageURL, ".png"))
}

func TestProjectUpload_RejectsNonImage(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, model.RoleAdmin, true)

	body, contentType := multipartBody(t, nil, "image", "notes.txt", []byte("hello"))
	resp := env.multipartRequest(t, fiber.MethodPost, "/api/projects/upload", token, body, contentType)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProjectUpload_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, nil, "image", "cover.png", []byte("fake"))
	resp := env.multipartRequest(t, fiber.MethodPost, "/api/projects/upload", "", body, contentType)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProjectCreate_Multipart(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, model.RoleAdmin, true)

	fields := map[string]string{
		"title":       "Corporate site",
		"description": "Marketing site relaunch",
		"link":        "https://example.com/work",
	}
	body, contentType := multipartBody(t, fields, "image", "cover.jpg", []byte("fake-jpg"))
	resp := env.multipartRequest(t, fiber.MethodPost, "/api/projects", token, body, contentType)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := parseBody(t, resp)
	assert.Equal(t, "Corporate site", created.Get("title").String())
	assert.True(t, strings.HasPrefix(created.Get("image").String(), "/uploads/"))
}

func TestProjectCreate_MultipartImageURL(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, model.RoleAdmin, true)

	fields := map[string]string{
		"title":       "Hosted shot",
		"description": "Image already hosted elsewhere",
		"image":       "https://cdn.example.com/shot.png",
		"link":        "https://example.com/work",
	}
	body, contentType := multipartBody(t, fields, "", "", nil)
	resp := env.multipartRequest(t, fiber.MethodPost, "/api/projects", token, body, contentType)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "https://cdn.example.com/shot.png", parseBody(t, resp).Get("image").String())
}

func TestProjectUpdate_PartialMultipart(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedAdmin(t, model.RoleAdmin, true)
	seedProjects(t, env, 1)

	listResp := env.request(t, fiber.MethodGet, "/api/projects", "", nil)
	id := parseBody(t, listResp).Get("data.0.id").String()
	require.NotEmpty(t, id)

	body, contentType := multipartBody(t, map[string]string{"title": "Renamed"}, "", "", nil)
	resp := env.multipartRequest(t, fiber.MethodPut, "/api/projects/"+id, token, body, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := parseBody(t, resp)
	assert.Equal(t, "Renamed", updated.Get("title").String())
	assert.Equal(t, "description", updated.Get("description").String())
	assert.Equal(t, "/uploads/sample.png", updated.Get("image").String())
}

func TestProjectMutations_RequireAuth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, fiber.MethodPost, "/api/projects", "", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, fiber.MethodDelete, "/api/projects/some-id", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
