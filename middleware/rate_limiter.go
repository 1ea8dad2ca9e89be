package middleware

import (
	"sync"
	"time"

	"tablecomm/config"
	"tablecomm/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const (
	sweepInterval = 5 * time.Minute
	idleTimeout   = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors holds one token bucket per client IP
type visitors struct {
	mu      sync.Mutex
	byIP    map[string]*visitor
	every   rate.Limit
	burst   int
	lastGC  time.Time
	nowFunc func() time.Time
}

func (v *visitors) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.nowFunc()
	if now.Sub(v.lastGC) > sweepInterval {
		for key, vis := range v.byIP {
			if now.Sub(vis.lastSeen) > idleTimeout {
				delete(v.byIP, key)
			}
		}
		v.lastGC = now
	}

	vis, ok := v.byIP[ip]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(v.every, v.burst)}
		v.byIP[ip] = vis
	}
	vis.lastSeen = now
	return vis.limiter
}

// RateLimiter allows cfg.Requests per cfg.Window for each client IP
func RateLimiter(cfg config.RateLimitConfig) fiber.Handler {
	requests := cfg.Requests
	if requests < 1 {
		requests = 1
	}
	window := cfg.Window.Duration
	if window <= 0 {
		window = time.Minute
	}

	v := &visitors{
		byIP:    make(map[string]*visitor),
		every:   rate.Every(window / time.Duration(requests)),
		burst:   requests,
		nowFunc: time.Now,
	}
	v.lastGC = v.nowFunc()

	return func(c *fiber.Ctx) error {
		if !v.get(c.IP()).Allow() {
			utils.Log.Warn("Rate limit exceeded for %s on %s", c.IP(), c.Path())
			return utils.TooManyRequestsError("Rate limit exceeded. Please try again later.", nil)
		}
		return c.Next()
	}
}
