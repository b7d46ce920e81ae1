package middleware

import (
	"net"
	"net/http"
	"time"

	"pageforge/global"

	"github.com/redis/go-redis/v9"
)

// RateLimit applies a fixed-window per-IP ceiling backed by Redis, meant
// for the credential endpoints. A nil client disables the limiter, and a
// Redis outage fails open: login availability wins over throttling.
type RateLimit struct {
	Client *redis.Client
	Limit  int
	Window time.Duration
}

func (rl *RateLimit) Wrap(next http.Handler) http.Handler {
	if rl.Client == nil || rl.Limit <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		key := "ratelimit:" + r.URL.Path + ":" + ip
		// The window TTL must exist before the counter moves: a key
		// created without one would throttle this IP forever once the
		// ceiling is reached. SetNX pins the TTL at creation and is a
		// no-op while the window is open.
		if err := rl.Client.SetNX(r.Context(), key, 0, rl.Window).Err(); err != nil {
			global.Logger.Warn().Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		count, err := rl.Client.Incr(r.Context(), key).Result()
		if err != nil {
			global.Logger.Warn().Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if count > int64(rl.Limit) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
