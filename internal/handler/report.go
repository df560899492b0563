package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/creatorlens/creatorlens/internal/middleware"
	"github.com/creatorlens/creatorlens/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Monthly handles GET /api/reports/monthly/:channelId
func (h *ReportHandler) Monthly(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateChannelID(c.Params("channelId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	report, err := h.svc.Monthly(c.Context(), channelID)
	if err != nil {
		return middleware.FromError(c, err)
	}

	return c.JSON(fiber.Map{"report": report})
}

// Top handles GET /api/compare/top
func (h *ReportHandler) Top(c fiber.Ctx) error {
	n := fiber.Query[int](c, "n", service.DefaultTopChannels)

	summaries, err := h.svc.TopChannels(c.Context(), n)
	if err != nil {
		return middleware.FromError(c, err)
	}

	return c.JSON(fiber.Map{"results": summaries})
}

// ChannelStats handles GET /api/channels/:channelId/stats
func (h *ReportHandler) ChannelStats(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateChannelID(c.Params("channelId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	ch, err := h.svc.ChannelStats(c.Context(), channelID)
	if err != nil {
		return middleware.FromError(c, err)
	}

	return c.JSON(fiber.Map{
		"title":       ch.Title,
		"subscribers": ch.SubscriberCount,
	})
}

// ChannelVideos handles GET /api/channels/:channelId/videos
func (h *ReportHandler) ChannelVideos(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateChannelID(c.Params("channelId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	videos, err := h.svc.ChannelVideos(c.Context(), channelID)
	if err != nil {
		return middleware.FromError(c, err)
	}

	return c.JSON(videos)
}

// Stats handles GET /api/stats
func (h *ReportHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.Totals(c.Context())
	if err != nil {
		return middleware.FromError(c, err)
	}

	return c.JSON(stats)
}
