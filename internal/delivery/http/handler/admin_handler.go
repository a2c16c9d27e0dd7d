package handler

import (
	"staffing-tool/internal/delivery/http/middleware"
	"staffing-tool/internal/pkg/response"
	"staffing-tool/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc usecase.AdminUsecase
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/reset", h.Reset)
}

func (h *AdminHandler) Reset(c fiber.Ctx) error {
	if err := h.uc.ResetStaffingData(c.Context()); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, "staffing data reset", nil)
}
