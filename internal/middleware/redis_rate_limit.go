package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisRateKeyPrefix = "rl"

// RedisRateLimit allows rps requests per client IP per one-second window,
// counted in Redis so every replica shares the budget. Redis failures let the
// request through.
func RedisRateLimit(rdb *redis.Client, rps int) func(http.Handler) http.Handler {
	if rps <= 0 || rdb == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rateKey(clientIP(r), time.Now())

			ctx := r.Context()
			pipe := rdb.TxPipeline()
			incr := pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, 2*time.Second)
			if _, err := pipe.Exec(ctx); err != nil {
				slog.Warn("rate limit store unavailable", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			count := incr.Val()
			remaining := int64(rps) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rps))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			if count > int64(rps) {
				rejectRateLimited(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func rateKey(ip string, now time.Time) string {
	return redisRateKeyPrefix + ":" + ip + ":" + strconv.FormatInt(now.Unix(), 10)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return "unknown"
	}
	return host
}
