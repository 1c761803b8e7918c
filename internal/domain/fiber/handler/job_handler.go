package handler

import (
	"errors"

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

type JobHandler struct {
	jobs *repository.JobRepository
	auth *middleware.AuthMiddleware
}

func NewJobHandler(jobs *repository.JobRepository, auth *middleware.AuthMiddleware) *JobHandler {
	return &JobHandler{jobs: jobs, auth: auth}
}

func (h *JobHandler) RegisterRoutes(api fiber.Router) {
	jobs := api.Group("/jobs")
	jobs.Get("/", h.List)
	jobs.Get("/:id", h.Get)
	jobs.Post("/", h.auth.Protect(), h.Create)
	jobs.Put("/:id", h.auth.Protect(), h.Update)
	jobs.Delete("/:id", h.auth.Protect(), h.Delete)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	page, limit := util.PageParams(c)
	jobs, total, err := h.jobs.List(page, limit)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(response.NewPaginated(jobs, total, page, limit))
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobs.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Job not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(job)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	status := in.Status
	if status == "" {
		status = model.JobStatusOpen
	}
	job := model.Job{
		Title:       in.Title,
		Type:        in.Type,
		Location:    in.Location,
		Description: in.Description,
		Status:      status,
	}
	if err := h.jobs.Create(&job); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Could not create job", err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateJobInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]any{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Type != nil {
		updates["type"] = *in.Type
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}

	job, err := h.jobs.Update(c.Params("id"), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Job not found")
		}
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Could not update job", err)
	}
	return c.JSON(job)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.jobs.Delete(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Job not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return util.MessageResponse(c, fiber.StatusOK, "Job deleted")
}
