package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"bloglist-service/internal/domain/blog"
	"bloglist-service/internal/domain/person"
	"bloglist-service/internal/domain/user"
	jwtpkg "bloglist-service/internal/platform/jwt"
	"bloglist-service/internal/platform/logger"
	"bloglist-service/internal/worker"
)

// Pinger reports whether the backing store is reachable.
type Pinger func(ctx context.Context) error

type Deps struct {
	Persons *person.Service
	Users   *user.Service
	Blogs   *blog.Service
	JWT     *jwtpkg.Manager
	Events  chan<- worker.BlogEvent
	Ping    Pinger
	Log     *logger.Logger

	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Only enable it behind a proxy that overwrites those headers.
	TrustProxy bool
}

type Handler struct {
	personSvc *person.Service
	userSvc   *user.Service
	blogSvc   *blog.Service
	jwtMgr    *jwtpkg.Manager
	events    chan<- worker.BlogEvent
	ping      Pinger
	log       *logger.Logger
	now       func() time.Time
}

func NewRouter(d Deps) http.Handler {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{
		personSvc: d.Persons,
		userSvc:   d.Users,
		blogSvc:   d.Blogs,
		jwtMgr:    d.JWT,
		events:    d.Events,
		ping:      d.Ping,
		log:       log,
		now:       time.Now,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if d.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(RequestLogger(log))
	r.Use(CORSMiddleware)
	r.Use(TokenExtractor)

	r.NotFound(handleUnknownEndpoint)
	r.MethodNotAllowed(handleUnknownEndpoint)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", h.handleReady)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/info", h.handleInfo)

	r.Route("/api", func(r chi.Router) {
		r.Route("/persons", func(r chi.Router) {
			r.Get("/", h.handleListPersons)
			r.Post("/", h.handleCreatePerson)
			r.Get("/{id}", h.handleGetPerson)
			r.Put("/{id}", h.handleUpdatePerson)
			r.Delete("/{id}", h.handleDeletePerson)
		})

		r.Get("/users", h.handleListUsers)
		r.Post("/users", h.handleRegister)
		r.With(RateLimitLogin(rate.Every(time.Minute/10), 5)).Post("/login", h.handleLogin)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", h.handleListBlogs)
			r.Get("/stats", h.handleBlogStats)
			r.Get("/{id}", h.handleGetBlog)
			r.Put("/{id}", h.handleUpdateBlog)

			r.Group(func(r chi.Router) {
				r.Use(UserExtractor(d.JWT, d.Users))
				r.Post("/", h.handleCreateBlog)
				r.Delete("/{id}", h.handleDeleteBlog)
			})
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func handleUnknownEndpoint(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error":   "unknown_endpoint",
		"message": "unknown endpoint",
	})
}

// publish hands ev to the event worker without blocking the request.
func (h *Handler) publish(ev worker.BlogEvent) {
	if h.events == nil {
		return
	}
	select {
	case h.events <- ev:
	default:
		h.log.Warn("blog event dropped", "kind", ev.Kind, "blog_id", ev.BlogID)
	}
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.ping == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not ready",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
