package ratelimiter

import (
	"sync"
	"time"

	"github.com/azhuravlev/diplomdocs/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client within a fixed time
// window. Counts reset when the window elapses.
type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]int
	limit   int
	window  time.Duration
	Enabled bool
	logger  *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		limit:   cfg.RequestsPerTimeFrame,
		window:  cfg.TimeFrame,
		Enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Allow reports whether the client may proceed, and when rejected, how long
// until the current window resets.
func (rl *FixedWindowRateLimiter) Allow(clientId string) (bool, time.Duration) {
	rl.RLock()
	count, exists := rl.clients[clientId]
	rl.RUnlock()

	if !exists || count < rl.limit {
		rl.Lock()
		if !exists {
			go rl.resetCount(clientId)
		}
		rl.clients[clientId]++
		rl.Unlock()
		return true, 0
	}

	return false, rl.window
}

func (rl *FixedWindowRateLimiter) resetCount(clientId string) {
	time.Sleep(rl.window)
	rl.Lock()
	delete(rl.clients, clientId)
	rl.Unlock()
}
