package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/creatorlens/creatorlens/internal/middleware"
	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/service"
)

type IdeasHandler struct {
	svc *service.IdeasService
}

func NewIdeasHandler(svc *service.IdeasService) *IdeasHandler {
	return &IdeasHandler{svc: svc}
}

// Generate handles POST /api/ai/generate
func (h *IdeasHandler) Generate(c fiber.Ctx) error {
	var req model.IdeasRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	switch req.Action {
	case "ideas":
		ideas, err := h.svc.GenerateIdeas(req.Topic, req.ChannelName)
		if err != nil {
			return middleware.FromError(c, err)
		}
		return c.JSON(fiber.Map{"result": ideas})
	case "script":
		script, err := h.svc.GenerateScript(req.Title, req.Tone)
		if err != nil {
			return middleware.FromError(c, err)
		}
		return c.JSON(fiber.Map{"result": script})
	default:
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD",
			"action must be one of: ideas, script")
	}
}
