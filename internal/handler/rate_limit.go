package handler

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/vehicle-service/pkg/constants"
)

// RateLimitState — in-memory rate limiter по IP (фиксированное окно, max N запросов).
type RateLimitState struct {
	mu     sync.Mutex
	perIP  map[string]*rateWindow
	limit  int
	window time.Duration
	now    func() time.Time
	stop   chan struct{}
	once   sync.Once
}

type rateWindow struct {
	count       int
	windowStart time.Time
}

// NewRateLimitState создаёт лимитер: limit запросов на window (например 5 на 1 сек).
// Фоновая очистка работает до Stop.
func NewRateLimitState(limit int, window time.Duration) *RateLimitState {
	s := &RateLimitState{
		perIP:  make(map[string]*rateWindow),
		limit:  limit,
		window: window,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Stop останавливает фоновую очистку. Повторный вызов безопасен.
func (s *RateLimitState) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *RateLimitState) cleanup() {
	ticker := time.NewTicker(2 * s.window)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *RateLimitState) evictIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for ip, w := range s.perIP {
		if now.Sub(w.windowStart) > 2*s.window {
			delete(s.perIP, ip)
		}
	}
}

// Allow возвращает true, если запрос разрешён, false если лимит превышен.
func (s *RateLimitState) Allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	w, ok := s.perIP[ip]
	if !ok {
		s.perIP[ip] = &rateWindow{count: 1, windowStart: now}
		return true
	}
	if now.Sub(w.windowStart) >= s.window {
		w.count = 1
		w.windowStart = now
		return true
	}
	w.count++
	return w.count <= s.limit
}

// RateLimitMiddleware отвечает 429 с Retry-After, когда IP превысил лимит.
func RateLimitMiddleware(limiter *RateLimitState) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(limiter.window.Round(time.Second) / time.Second))
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header(constants.HeaderRetryAfter, retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded", "message": "too many requests",
			})
			return
		}
		c.Next()
	}
}
