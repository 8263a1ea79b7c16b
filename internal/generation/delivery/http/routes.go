package http

import (
	"github.com/gin-gonic/gin"

	"gemini-gateway/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Generation
// calls go through the rate limiter; the model info route does not hit the
// upstream and stays cheap.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/text", mw.RateLimit(), h.Generate)
	rg.GET("/model", h.Model)
}
