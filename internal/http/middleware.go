package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"bloglist-service/internal/domain/user"
	"bloglist-service/internal/metrics"
	"bloglist-service/internal/platform/apperr"
	jwtpkg "bloglist-service/internal/platform/jwt"
	"bloglist-service/internal/platform/logger"
)

type ctxKey string

const (
	ctxKeyToken ctxKey = "token"
	ctxKeyUser  ctxKey = "user"
)

// maxLoggedBody caps how much of a POST body the request logger reads.
const maxLoggedBody = 4 << 10

// TokenExtractor stores the bearer token, if any, in the request context.
// It never rejects a request.
func TokenExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && parts[1] != "" {
			ctx := context.WithValue(r.Context(), ctxKeyToken, strings.TrimSpace(parts[1]))
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// UserExtractor resolves the extracted token to a stored user and rejects
// the request with 401 when either is missing or invalid.
func UserExtractor(jm *jwtpkg.Manager, users *user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _ := r.Context().Value(ctxKeyToken).(string)
			if token == "" {
				errorResponse(w, apperr.Unauthorized("missing_token", "token missing", nil))
				return
			}

			claims, err := jm.Parse(token)
			if err != nil {
				errorResponse(w, apperr.Unauthorized("invalid_token", "token invalid", err))
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				errorResponse(w, apperr.Unauthorized("invalid_user", "user missing or invalid", err))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFromCtx(r *http.Request) *user.User {
	u, _ := r.Context().Value(ctxKeyUser).(*user.User)
	return u
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RateLimitLogin(r rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := newIPRateLimiter(r, burst, 10*time.Minute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.allow(clientIP(r)) {
				errorResponse(w, apperr.TooManyRequests("rate_limited", "too many login attempts"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one line per request. POST bodies are included with
// credentials redacted.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			var postData string
			if r.Method == http.MethodPost && r.Body != nil {
				raw, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
				if err == nil {
					postData = redactBody(raw)
				}
				r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), r.Body))
			}

			rw := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(rw, r)

			status := rw.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}

			metrics.IncRequest(r.Method, route, status)

			kv := []interface{}{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", rw.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimw.GetReqID(r.Context()),
			}
			if postData != "" {
				kv = append(kv, "post_data", postData)
			}
			log.Info("request", kv...)
		})
	}
}

var redactedFields = []string{"password", "token"}

func redactBody(raw []byte) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return "[unparsed]"
	}
	for _, f := range redactedFields {
		if _, ok := body[f]; ok {
			body[f] = "[redacted]"
		}
	}
	out, err := json.Marshal(body)
	if err != nil {
		return "[unparsed]"
	}
	return string(out)
}

type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	limit    rate.Limit
	burst    int
	entryTTL time.Duration
}

func newIPRateLimiter(limit rate.Limit, burst int, entryTTL time.Duration) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		limit:    limit,
		burst:    burst,
		entryTTL: entryTTL,
	}
}

func (l *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for key, ts := range l.lastSeen {
		if now.Sub(ts) > l.entryTTL {
			delete(l.limiters, key)
			delete(l.lastSeen, key)
		}
	}

	if limiter, ok := l.limiters[ip]; ok {
		l.lastSeen[ip] = now
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters[ip] = limiter
	l.lastSeen[ip] = now
	return limiter
}

func (l *ipRateLimiter) allow(ip string) bool {
	return l.getLimiter(ip).Allow()
}

// clientIP keys rate limits on the peer address. Forwarding headers only
// count when the router was built with TrustProxy, through chimw.RealIP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
