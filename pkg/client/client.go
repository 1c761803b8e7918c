// Package client is a Go client for the company-profile API. It
// plays the role the axios instance plays in the admin frontend: one
// configured HTTP client carrying the session cookie against the API
// base path.
package client

import (
	"fmt"
	"net/http/cookiejar"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/api").
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json")
	return &Client{http: httpClient}
}

// SetToken switches the client to Bearer-header auth instead of the
// session cookie.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

func apiError(resp *resty.Response) error {
	message := gjson.GetBytes(resp.Body(), "message").String()
	if message == "" {
		message = resp.Status()
	}
	return fmt.Errorf("api: %s", message)
}

// --- auth ---

func (c *Client) Setup(username, email, password string) (*LoginResult, error) {
	var out LoginResult
	resp, err := c.http.R().
		SetBody(map[string]string{"username": username, "email": email, "password": password}).
		SetResult(&out).
		Post("/admin/setup")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

func (c *Client) Login(email, password string) (*LoginResult, error) {
	var out LoginResult
	resp, err := c.http.R().
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/admin/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

func (c *Client) Logout() error {
	resp, err := c.http.R().Post("/admin/logout")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

func (c *Client) Profile() (*Admin, error) {
	var out struct {
		Admin Admin `json:"admin"`
	}
	resp, err := c.http.R().SetResult(&out).Get("/admin/profile")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out.Admin, nil
}

// --- generic helpers ---

func list[T any](c *Client, path string, page, limit int) (*Page[T], error) {
	var out Page[T]
	resp, err := c.http.R().
		SetQueryParam("page", fmt.Sprint(page)).
		SetQueryParam("limit", fmt.Sprint(limit)).
		SetResult(&out).
		Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

func get[T any](c *Client, path string) (*T, error) {
	var out T
	resp, err := c.http.R().SetResult(&out).Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

func create[T any](c *Client, path string, body any) (*T, error) {
	var out T
	resp, err := c.http.R().SetBody(body).SetResult(&out).Post(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

func update[T any](c *Client, path string, body any) (*T, error) {
	var out T
	resp, err := c.http.R().SetBody(body).SetResult(&out).Put(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

func (c *Client) delete(path string) error {
	resp, err := c.http.R().Delete(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// --- jobs ---

func (c *Client) ListJobs(page, limit int) (*Page[Job], error) {
	return list[Job](c, "/jobs", page, limit)
}

func (c *Client) GetJob(id string) (*Job, error) {
	return get[Job](c, "/jobs/"+id)
}

func (c *Client) CreateJob(body any) (*Job, error) {
	return create[Job](c, "/jobs", body)
}

func (c *Client) UpdateJob(id string, body any) (*Job, error) {
	return update[Job](c, "/jobs/"+id, body)
}

func (c *Client) DeleteJob(id string) error {
	return c.delete("/jobs/" + id)
}

// --- applications ---

func (c *Client) ListApplications(page, limit int) (*Page[Application], error) {
	return list[Application](c, "/applications", page, limit)
}

func (c *Client) GetApplication(id string) (*Application, error) {
	return get[Application](c, "/applications/"+id)
}

func (c *Client) CreateApplication(body any) (*Application, error) {
	return create[Application](c, "/applications", body)
}

func (c *Client) UpdateApplicationStatus(id, status string) (*Application, error) {
	return update[Application](c, "/applications/"+id+"/status", map[string]string{"status": status})
}

func (c *Client) DeleteApplication(id string) error {
	return c.delete("/applications/" + id)
}

// --- projects ---

func (c *Client) ListProjects(page, limit int) (*Page[Project], error) {
	return list[Project](c, "/projects", page, limit)
}

func (c *Client) GetProject(id string) (*Project, error) {
	return get[Project](c, "/projects/"+id)
}

func (c *Client) CreateProject(body any) (*Project, error) {
	return create[Project](c, "/projects", body)
}

func (c *Client) UpdateProject(id string, body any) (*Project, error) {
	return update[Project](c, "/projects/"+id, body)
}

func (c *Client) DeleteProject(id string) error {
	return c.delete("/projects/" + id)
}

// UploadImage sends the file as multipart form data and returns the
// absolute URL the server stored it under.
func (c *Client) UploadImage(path string) (string, error) {
	resp, err := c.http.R().SetFile("image", path).Post("/projects/upload")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", apiError(resp)
	}
	return gjson.GetBytes(resp.Body(), "imageUrl").String(), nil
}

// --- services ---

func (c *Client) ListServices(page, limit int) (*Page[Service], error) {
	return list[Service](c, "/services", page, limit)
}

func (c *Client) GetService(id string) (*Service, error) {
	return get[Service](c, "/services/"+id)
}

func (c *Client) CreateService(body any) (*Service, error) {
	return create[Service](c, "/services", body)
}

func (c *Client) UpdateService(id string, body any) (*Service, error) {
	return update[Service](c, "/services/"+id, body)
}

func (c *Client) DeleteService(id string) error {
	return c.delete("/services/" + id)
}

// --- contacts ---

func (c *Client) ListContacts(page, limit int) (*Page[Contact], error) {
	return list[Contact](c, "/contacts", page, limit)
}

func (c *Client) GetContact(id string) (*Contact, error) {
	return get[Contact](c, "/contacts/"+id)
}

func (c *Client) CreateContact(body any) (*Contact, error) {
	return create[Contact](c, "/contacts", body)
}

func (c *Client) UpdateContact(id string, body any) (*Contact, error) {
	return update[Contact](c, "/contacts/"+id, body)
}

func (c *Client) DeleteContact(id string) error {
	return c.delete("/contacts/" + id)
}

// --- dashboard ---

func (c *Client) DashboardStats() (*DashboardStats, error) {
	return get[DashboardStats](c, "/dashboard/stats")
}
