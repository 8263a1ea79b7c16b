package middleware

import (
	"gemini-gateway/config"
	"gemini-gateway/pkg/log"
)

// Middleware bundles the HTTP middlewares used by the server.
type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
	rateCfg     config.RateLimitConfig
}

// New creates the middleware bundle.
func New(l log.Logger, rateCfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(rateCfg.RequestsPerMin, rateCfg.Burst),
		rateCfg:     rateCfg,
	}
}
