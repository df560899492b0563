package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/creatorlens/creatorlens/internal/apperr"
	"github.com/creatorlens/creatorlens/internal/middleware"
	"github.com/creatorlens/creatorlens/internal/service"
)

type AnalyzeHandler struct {
	svc *service.AnalysisService
}

func NewAnalyzeHandler(svc *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// AnalyzeRequest is the request body for POST /api/analyze. Input accepts a
// canonical channel ID or a free-text channel name.
type AnalyzeRequest struct {
	Input string `json:"input"`
	// ChannelID is accepted as a legacy alias for Input.
	ChannelID string `json:"channelId"`
}

// Analyze handles POST /api/analyze
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	raw := req.Input
	if raw == "" {
		raw = req.ChannelID
	}
	input, errMsg := middleware.ValidateAnalyzeInput(raw)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	start := time.Now()
	result, err := h.svc.AnalyzeInput(c.Context(), input)
	if err != nil {
		ObserveAnalysis(apperr.KindOf(err).String(), time.Since(start))
		return middleware.FromError(c, err)
	}
	ObserveAnalysis("ok", time.Since(start))

	return c.JSON(result)
}

// Compare handles POST /api/compare
func (h *AnalyzeHandler) Compare(c fiber.Ctx) error {
	var req struct {
		Inputs []string `json:"inputs"`
		// ChannelIDs is accepted as a legacy alias for Inputs.
		ChannelIDs []string `json:"channelIds"`
	}
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	raw := req.Inputs
	if len(raw) == 0 {
		raw = req.ChannelIDs
	}
	inputs, errMsg := middleware.ValidateCompareInputs(raw)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	results, err := h.svc.Compare(c.Context(), inputs)
	if err != nil {
		return middleware.FromError(c, err)
	}

	return c.JSON(fiber.Map{"results": results})
}

// Suggest handles GET /api/suggestions?q=NAME
func (h *AnalyzeHandler) Suggest(c fiber.Ctx) error {
	query, errMsg := middleware.ValidateQuery(fiber.Query[string](c, "q"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}

	candidates, err := h.svc.Suggest(c.Context(), query)
	if err != nil {
		if apperr.IsNotFound(err) {
			// Typeahead misses are an empty list, not an error.
			return c.JSON([]any{})
		}
		return middleware.FromError(c, err)
	}

	return c.JSON(candidates)
}
