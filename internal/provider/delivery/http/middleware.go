package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const limiterTTL = 10 * time.Minute

// RateLimiter limits requests per client IP. Each client gets its own token
// bucket, held in a TTL cache so idle clients are evicted.
func RateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	limiters := gocache.New(limiterTTL, limiterTTL)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			var limiter *rate.Limiter
			if v, ok := limiters.Get(ip); ok {
				limiter = v.(*rate.Limiter)
			} else {
				limiter = rate.NewLimiter(rate.Limit(rps), burst)
				limiters.Set(ip, limiter, gocache.DefaultExpiration)
			}

			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
