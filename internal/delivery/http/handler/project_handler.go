package handler

import (
	"errors"

	"staffing-tool/internal/delivery/http/dto"
	"staffing-tool/internal/delivery/http/middleware"
	"staffing-tool/internal/pkg/response"
	"staffing-tool/internal/repository"
	"staffing-tool/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Catalog)
	r.Post("/", h.Create)
}

func (h *ProjectHandler) Catalog(c fiber.Ctx) error {
	filter := repository.ProjectFilter{
		Search: c.Query("search"),
		Client: c.Query("client"),
		Tag:    c.Query("tag"),
	}

	catalog, err := h.uc.Catalog(c.Context(), filter)
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, catalog)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), req.ToInput())
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, created)
}

func mapProjectUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProjectNameTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Project name already in use", nil, err)
	case errors.Is(err, usecase.ErrNameRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Name is required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
