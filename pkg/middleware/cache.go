package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cacheWriter captures the response body while forwarding it to the client.
type cacheWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *cacheWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cacheWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

func cacheKey(prefix string, r *http.Request) string {
	sum := sha1.Sum([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}

// Cache serves successful GET responses from Redis for the given TTL. Only
// public catalog listings go through it; booking reads always hit the store.
// A nil client disables caching entirely.
func Cache(rdb *redis.Client, prefix string, ttl time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rdb == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(prefix, r)

			if body, err := rdb.Get(r.Context(), key).Bytes(); err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}

			cw := &cacheWriter{ResponseWriter: w, status: http.StatusOK}
			w.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(cw, r)

			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				if err := rdb.Set(r.Context(), key, cw.buf.Bytes(), ttl).Err(); err != nil {
					logger.Warn("Failed to store response in cache",
						zap.Error(err),
						zap.String("key", key))
				}
			}
		})
	}
}

// InvalidateCache drops every cached entry under the prefix. Catalog write
// handlers call this so admin edits show up on the next public read.
func InvalidateCache(rdb *redis.Client, prefix string, logger *zap.Logger) {
	if rdb == nil {
		return
	}

	ctx, cancel := contextWithTimeout()
	defer cancel()

	iter := rdb.Scan(ctx, 0, prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("Failed to invalidate cache key",
				zap.Error(err),
				zap.String("key", iter.Val()))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn("Cache invalidation scan failed", zap.Error(err), zap.String("prefix", prefix))
	}
}
