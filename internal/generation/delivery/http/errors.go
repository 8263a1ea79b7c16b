package http

import (
	"errors"
	"net/http"

	"gemini-gateway/internal/generation"
	pkgErrors "gemini-gateway/pkg/errors"
	"gemini-gateway/pkg/gemini"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Upstream failures are the caller's 502, never a raw 500.
func (h *handler) mapError(err error) error {
	var genErr *gemini.ContentGenerationError

	switch {
	case errors.Is(err, generation.ErrEmptyPrompt):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "prompt is required")
	case errors.As(err, &genErr):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "upstream generation failed")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
