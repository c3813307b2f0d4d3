package middleware

import (
	appcontext "github.com/azhuravlev/diplomdocs/internal/app_context"
	ratelimiter "github.com/azhuravlev/diplomdocs/internal/rate_limiter"
)

type Middleware struct {
	rateLimiter *ratelimiter.FixedWindowRateLimiter
	app         *appcontext.Application
}

func NewMiddleware(app *appcontext.Application,
	rateLimiter *ratelimiter.FixedWindowRateLimiter,
) *Middleware {
	return &Middleware{app: app, rateLimiter: rateLimiter}
}
