package middleware

import (
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const staleLimiterAfter = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalRateLimiter is the in-process token bucket used when redis is not
// configured. Each client IP may burst up to limit and refills at
// limit per window.
type LocalRateLimiter struct {
	limit  int
	window time.Duration
	every  rate.Limit

	mu      sync.Mutex
	clients map[string]*clientLimiter
	sweptAt time.Time
}

func NewLocalRateLimiter(limit int, window time.Duration) *LocalRateLimiter {
	if limit < 1 {
		limit = 1
	}
	return &LocalRateLimiter{
		limit:   limit,
		window:  window,
		every:   rate.Every(window / time.Duration(limit)),
		clients: make(map[string]*clientLimiter),
		sweptAt: time.Now(),
	}
}

func (l *LocalRateLimiter) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.sweptAt) > staleLimiterAfter {
		for k, cl := range l.clients {
			if now.Sub(cl.lastSeen) > staleLimiterAfter {
				delete(l.clients, k)
			}
		}
		l.sweptAt = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.every, l.limit)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

func (l *LocalRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		limiter := l.get(c.ClientIP(), now)

		allowed := limiter.AllowN(now, 1)
		remaining := int64(math.Max(0, math.Floor(limiter.TokensAt(now))))
		setRateLimitHeaders(c, l.limit, remaining, now.Add(l.window))

		if !allowed {
			retry := time.Duration(float64(time.Second) / float64(l.every))
			abortTooManyRequests(c, max(retry, time.Second))
			return
		}

		c.Next()
	}
}
