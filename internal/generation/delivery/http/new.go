package http

import (
	"github.com/gin-gonic/gin"

	"gemini-gateway/internal/generation"
	"gemini-gateway/pkg/log"
)

// Handler is the public interface for the generation HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	Model(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc generation.UseCase
}

// New creates a new HTTP handler for the generation domain.
func New(l log.Logger, uc generation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
