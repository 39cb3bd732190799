// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/shoplane/pos-backend/internal/utils"
)

// Per-IP token buckets. A register terminal fires a burst of product
// lookups per checkout, so the general bucket refills well above
// human click rates while login and upload stay tight.

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	mtx     sync.Mutex
	clients map[string]*clientBucket
	limit   rate.Limit
	burst   int
}

func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientBucket),
		limit:   limit,
		burst:   burst,
	}

	go rl.sweep(5 * time.Minute)

	return rl
}

// sweep drops buckets for clients idle longer than the given window.
func (rl *RateLimiter) sweep(idle time.Duration) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mtx.Lock()
		for ip, bucket := range rl.clients {
			if time.Since(bucket.lastSeen) > idle {
				delete(rl.clients, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	bucket, ok := rl.clients[ip]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = bucket
	}
	bucket.lastSeen = time.Now()

	return bucket.limiter.Allow()
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED",
				"Too many requests, try again shortly", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

var (
	generalLimiter = NewRateLimiter(rate.Limit(20), 40)            // register traffic
	authLimiter    = NewRateLimiter(rate.Every(time.Minute), 5)    // login attempts
	uploadLimiter  = NewRateLimiter(rate.Every(6*time.Second), 10) // image uploads
)

func GeneralRateLimit() gin.HandlerFunc {
	return generalLimiter.Middleware()
}

func AuthRateLimit() gin.HandlerFunc {
	return authLimiter.Middleware()
}

func UploadRateLimit() gin.HandlerFunc {
	return uploadLimiter.Middleware()
}
