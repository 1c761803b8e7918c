package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListJobs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/jobs", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [{"id": "j-1", "title": "Engineer", "status": "Open"}],
			"total": 6, "page": 2, "limit": 5, "totalPages": 2
		}`))
	}))
	defer server.Close()

	c := New(server.URL)
	page, err := c.ListJobs(2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(6), page.Total)
	assert.Equal(t, int64(2), page.TotalPages)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Engineer", page.Data[0].Title)
}

func TestClientSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"admin": {"id": "a-1", "email": "root@example.com", "role": "superadmin"}}`))
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("my-token")
	admin, err := c.Profile()
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", admin.Email)
}

func TestClientKeepsSessionCookie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/admin/login":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-jwt", Path: "/"})
			w.Write([]byte(`{"message": "Login successful", "token": "session-jwt", "admin": {"id": "a-1"}}`))
		case "/api/admin/profile":
			cookie, err := r.Cookie("token")
			require.NoError(t, err)
			require.Equal(t, "session-jwt", cookie.Value)
			w.Write([]byte(`{"admin": {"id": "a-1", "email": "root@example.com"}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.Login("root@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "session-jwt", result.Token)

	admin, err := c.Profile()
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", admin.Email)
}

func TestClientSurfacesAPIErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Invalid credentials"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login("root@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}
