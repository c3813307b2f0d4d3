package ratelimiter

import (
	"testing"
	"time"

	"github.com/azhuravlev/diplomdocs/internal/config"
)

func TestFixedWindowLimiter(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 3,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("client-a")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := limiter.Allow("client-a")
	if allowed {
		t.Errorf("request over the limit should be rejected")
	}
	if retryAfter != time.Minute {
		t.Errorf("retryAfter = %v, expected %v", retryAfter, time.Minute)
	}

	// Other clients have their own window
	if otherAllowed, _ := limiter.Allow("client-b"); !otherAllowed {
		t.Errorf("a different client should not be affected")
	}
}
