package middleware

import "errors"

// ErrRateLimited indicates the client exhausted its request budget.
var ErrRateLimited = errors.New("rate limit exceeded")
