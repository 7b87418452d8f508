package api

import (
	"errors"
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/zabeliqbal/langkawi-data-hub/db"
	"github.com/zabeliqbal/langkawi-data-hub/models"
)

// roleForAPIKey resolves an Authorization key to a profile role. A variable
// so middleware tests can substitute the store lookup.
var roleForAPIKey = db.RoleForAPIKey

type RateLimiter struct {
	requests map[string]*ClientRequests
	mu       sync.RWMutex
}

type ClientRequests struct {
	count    int
	lastSeen time.Time
}

const (
	maxRequests    = 100             // Maximum requests per window
	windowDuration = time.Minute * 5 // Window duration
)

var limiter = &RateLimiter{
	requests: make(map[string]*ClientRequests),
}

// RateLimit applies a per-client request budget to the public read surface.
// Requests carrying a valid API key bypass the limit.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("Authorization")
		if apiKey != "" {
			if _, err := roleForAPIKey(apiKey); err == nil {
				next.ServeHTTP(w, r)
				return
			}
		}

		clientIP, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			clientIP = r.RemoteAddr
		}

		limiter.mu.Lock()
		defer limiter.mu.Unlock()

		// Clean up old entries
		now := time.Now()
		for ip, req := range limiter.requests {
			if now.Sub(req.lastSeen) > windowDuration {
				delete(limiter.requests, ip)
			}
		}

		client, exists := limiter.requests[clientIP]
		if !exists {
			client = &ClientRequests{
				count:    0,
				lastSeen: now,
			}
			limiter.requests[clientIP] = client
		}

		// Check if window has expired
		if now.Sub(client.lastSeen) > windowDuration {
			client.count = 0
			client.lastSeen = now
		}

		if client.count >= maxRequests {
			setRateHeaders(w, 0, client.lastSeen)
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		client.count++
		client.lastSeen = now

		setRateHeaders(w, maxRequests-client.count, client.lastSeen)
		next.ServeHTTP(w, r)
	})
}

func setRateHeaders(w http.ResponseWriter, remaining int, windowStart time.Time) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(maxRequests))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	w.Header().Set("X-RateLimit-Reset", windowStart.Add(windowDuration).Format(time.RFC3339))
}

// RequireAdmin guards the admin surface. The Authorization header must carry
// an active API key whose linked profile has the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("Authorization")
		if apiKey == "" {
			writeError(w, http.StatusUnauthorized, "Missing API key")
			return
		}

		role, err := roleForAPIKey(apiKey)
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid API key")
			return
		}
		if err != nil {
			log.Printf("Error resolving role for request to %s: %v", r.URL.Path, err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "Admin role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
