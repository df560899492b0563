package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/creatorlens/creatorlens/internal/apperr"
)

// Field length limits matching database schema constraints.
const (
	MaxChannelIDLen = 50  // channels.id VARCHAR(50)
	MaxInputLen     = 100 // free-text channel input (name or ID)
	MaxQueryLen     = 100 // suggestion query
	MaxCompareSize  = 4   // upper bound on channels per compare run
)

// channelIDRe matches canonical or legacy channel ID shapes: the ID
// alphabet only, no spaces or punctuation.
var channelIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// FromError maps a service error to the standard API error response using
// its apperr kind. Unknown kinds become a generic 500.
func FromError(c fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	status := fiber.StatusInternalServerError
	switch kind {
	case apperr.KindNotFound:
		status = fiber.StatusNotFound
	case apperr.KindValidation:
		status = fiber.StatusBadRequest
	case apperr.KindUpstream:
		status = fiber.StatusBadGateway
	case apperr.KindPersistence:
		status = fiber.StatusInternalServerError
	}
	return ErrorResponse(c, status, kind.String(), apperr.MessageOf(err))
}

// ValidateChannelID checks that a channel ID path parameter is well-formed.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channelId must be at most 50 characters"
	}
	if !channelIDRe.MatchString(id) {
		return "", "channelId contains invalid characters"
	}
	return id, ""
}

// ValidateAnalyzeInput checks the free-text input of an analyze request.
// Unlike channel IDs it may contain spaces (channel names).
func ValidateAnalyzeInput(input string) (string, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "input is required"
	}
	if len(input) > MaxInputLen {
		return "", "input must be at most 100 characters"
	}
	return input, ""
}

// ValidateCompareInputs checks the input list of a compare request.
func ValidateCompareInputs(inputs []string) ([]string, string) {
	cleaned := make([]string, 0, len(inputs))
	for _, in := range inputs {
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		if len(in) > MaxInputLen {
			return nil, "each input must be at most 100 characters"
		}
		cleaned = append(cleaned, in)
	}
	if len(cleaned) < 2 {
		return nil, "at least two channel inputs are required"
	}
	if len(cleaned) > MaxCompareSize {
		return nil, "at most 4 channels can be compared at once"
	}
	return cleaned, ""
}

// ValidateQuery checks a suggestion search query.
func ValidateQuery(q string) (string, string) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", "q query parameter is required"
	}
	if len(q) > MaxQueryLen {
		return "", "q must be at most 100 characters"
	}
	return q, ""
}
