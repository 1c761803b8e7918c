package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/dto"
	"github.com/hafizhramadhan/company-profile-api/internal/middleware"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/hafizhramadhan/company-profile-api/internal/repository"
	"github.com/hafizhramadhan/company-profile-api/internal/response"
	"github.com/hafizhramadhan/company-profile-api/internal/util"
	"github.com/hafizhramadhan/company-profile-api/internal/validation"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projects *repository.ProjectRepository
	auth     *middleware.AuthMiddleware
}

func NewProjectHandler(projects *repository.ProjectRepository, auth *middleware.AuthMiddleware) *ProjectHandler {
	return &ProjectHandler{projects: projects, auth: auth}
}

func (h *ProjectHandler) RegisterRoutes(api fiber.Router) {
	projects := api.Group("/projects")
	projects.Get("/", h.List)
	projects.Post("/upload", h.auth.Protect(), h.Upload)
	projects.Get("/:id", h.Get)
	projects.Post("/", h.auth.Protect(), h.Create)
	projects.Put("/:id", h.auth.Protect(), h.Update)
	projects.Delete("/:id", h.auth.Protect(), h.Delete)
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	page, limit := util.PageParams(c)
	projects, total, err := h.projects.List(page, limit)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(response.NewPaginated(projects, total, page, limit))
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	project, err := h.projects.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Project not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(project)
}

// Create accepts JSON or multipart form data. With multipart, an
// uploaded image file takes precedence over an image URL field.
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectInput
	if isMultipart(c) {
		in = dto.CreateProjectInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Image:       c.FormValue("image"),
			Link:        c.FormValue("link"),
		}
		if hasFile(c, "image") {
			path, err := util.SaveImage(c, "image")
			if err != nil {
				return err
			}
			in.Image = path
		}
	} else if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	project := model.Project{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Link:        in.Link,
	}
	if err := h.projects.Create(&project); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Could not create project", err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	updates := map[string]any{}
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		for _, field := range []string{"title", "description", "image", "link"} {
			if values, ok := form.Value[field]; ok && len(values) > 0 {
				updates[field] = values[0]
			}
		}
		if hasFile(c, "image") {
			path, err := util.SaveImage(c, "image")
			if err != nil {
				return err
			}
			updates["image"] = path
		}
	} else {
		var in dto.UpdateProjectInput
		if err := c.BodyParser(&in); err != nil {
			return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		if in.Title != nil {
			updates["title"] = *in.Title
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if in.Image != nil {
			updates["image"] = *in.Image
		}
		if in.Link != nil {
			updates["link"] = *in.Link
		}
	}

	project, err := h.projects.Update(c.Params("id"), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Project not found")
		}
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Could not update project", err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.projects.Delete(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Project not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return util.MessageResponse(c, fiber.StatusOK, "Project deleted")
}

// Upload stores a standalone image and returns its absolute URL so
// clients can load it directly.
func (h *ProjectHandler) Upload(c *fiber.Ctx) error {
	path, err := util.SaveImage(c, "image")
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":  "Image uploaded successfully",
		"imageUrl": util.AbsoluteURL(c, path),
	})
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

func hasFile(c *fiber.Ctx, field string) bool {
	file, err := c.FormFile(field)
	return err == nil && file != nil
}
