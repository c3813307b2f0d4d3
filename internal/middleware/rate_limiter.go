package middleware

import (
	"fmt"
	"net/http"

	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/gin-gonic/gin"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	if !m.rateLimiter.Enabled {
		ctx.Next()
		return
	}

	allowed, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allowed {
		m.app.Logger.Debugf("Rate limit exceeded for client %s", ctx.ClientIP())
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Rate limit exceeded", nil, nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
