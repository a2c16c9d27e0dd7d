package handler

import (
	"errors"

	"staffing-tool/internal/delivery/http/dto"
	"staffing-tool/internal/delivery/http/middleware"
	"staffing-tool/internal/pkg/response"
	"staffing-tool/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ConsultantHandler struct {
	uc usecase.ConsultantUsecase
}

func NewConsultantHandler(uc usecase.ConsultantUsecase) *ConsultantHandler {
	return &ConsultantHandler{uc: uc}
}

func (h *ConsultantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Save)
	r.Get("/:id", h.Profile)
	r.Delete("/:id", h.Delete)
	r.Post("/:id/experiences", h.AddExperience)
}

func (h *ConsultantHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return mapConsultantUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ConsultantHandler) Save(c fiber.Ctx) error {
	var req dto.SaveConsultantRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	profile, err := h.uc.Save(c.Context(), req.ToInput())
	if err != nil {
		return mapConsultantUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profile)
}

func (h *ConsultantHandler) Profile(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid consultant id", nil, err)
	}

	profile, err := h.uc.Profile(c.Context(), id)
	if err != nil {
		return mapConsultantUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profile)
}

func (h *ConsultantHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid consultant id", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapConsultantUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ConsultantHandler) AddExperience(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid consultant id", nil, err)
	}

	var req dto.ExperienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddExperience(c.Context(), id, req.ToInput())
	if err != nil {
		return mapConsultantUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, created)
}

func mapConsultantUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrConsultantNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Consultant not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrNameRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Name is required", nil, err)
	case errors.Is(err, usecase.ErrUnknownSkill):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown skill", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
