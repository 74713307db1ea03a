package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"pet-shop-api/internal/platform/httpx"
	"pet-shop-api/internal/platform/logger"
)

const (
	defaultMaxClients = 10000
	defaultIdleTTL    = 10 * time.Minute
)

type RateLimitConfig struct {
	RPS   float64 // <= 0 desactiva el limitador
	Burst int

	// Tope de IPs recordadas y tiempo tras el cual una IP inactiva se olvida.
	MaxClients int
	IdleTTL    time.Duration
}

type ipLimiters struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	cfg      RateLimitConfig
}

func newIPLimiters(cfg RateLimitConfig) *ipLimiters {
	return &ipLimiters{
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxClients, nil, cfg.IdleTTL),
		cfg:      cfg,
	}
}

func (s *ipLimiters) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters.Get(ip)
	if !ok {
		l = rate.NewLimiter(rate.Limit(s.cfg.RPS), s.cfg.Burst)
	}
	// Add renueva el TTL: solo expiran las IPs sin tráfico.
	s.limiters.Add(ip, l)
	return l
}

// RateLimit limita requests por IP (usa r.RemoteAddr, ya normalizado por chimw.RealIP).
func RateLimit(cfg RateLimitConfig, log logger.Logger) func(http.Handler) http.Handler {
	if cfg.RPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = defaultMaxClients
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultIdleTTL
	}
	store := newIPLimiters(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !store.get(ip).Allow() {
				log.Warn("rate limit exceeded", map[string]any{"ip": ip})
				httpx.WriteJSON(w, http.StatusTooManyRequests, httpx.ErrorResponse{Error: "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
