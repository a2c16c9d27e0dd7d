package handler

import (
	"time"

	"staffing-tool/internal/delivery/http/middleware"
	"staffing-tool/internal/domain/scoring"
	"staffing-tool/internal/pkg/response"
	"staffing-tool/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type OverviewHandler struct {
	uc  usecase.OverviewUsecase
	now func() time.Time
}

func NewOverviewHandler(uc usecase.OverviewUsecase) *OverviewHandler {
	return &OverviewHandler{uc: uc, now: time.Now}
}

func (h *OverviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/overview", h.Overview)
}

func (h *OverviewHandler) Overview(c fiber.Ctx) error {
	params := usecase.OverviewParams{
		Month:    scoring.ParseIntOr(c.Query("month"), 0),
		Search:   c.Query("search"),
		MinLevel: scoring.ParseIntOr(c.Query("min_level"), 0),
		Client:   c.Query("client"),
		Tag:      c.Query("tag"),
	}

	if raw := c.Query("skill_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
		}
		params.SkillID = id
	}
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
		}
		params.ProjectID = id
	}

	out, err := h.uc.Overview(c.Context(), h.now(), params)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
