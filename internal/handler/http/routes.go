package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(h.withSession)

	// service info
	router.Get("/", h.status)
	router.Get("/api/health", h.health)
	router.Get("/api/version", h.getServerVersion)
	router.Post("/api/init-db", h.initDB)

	// auth
	router.Post("/api/login", h.login)
	router.Post("/api/register", h.register)
	router.Post("/api/logout", h.logout)

	// catalog
	router.Get("/api/tools", h.listTools)
	router.Post("/api/log-usage", h.logUsage)
	router.Get("/api/statistics", h.statistics)

	// generic data endpoints kept for older pages
	router.Get("/api/data", h.getData)
	router.Post("/api/save", h.save)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
