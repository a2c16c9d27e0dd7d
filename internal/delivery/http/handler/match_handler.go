package handler

import (
	"errors"
	"time"

	"staffing-tool/internal/delivery/http/dto"
	"staffing-tool/internal/delivery/http/middleware"
	"staffing-tool/internal/pkg/response"
	"staffing-tool/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc  usecase.MatchUsecase
	now func() time.Time
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc, now: time.Now}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.Match(c.Context(), h.now(), req.ToParams())
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownSkill) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unknown skill", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
