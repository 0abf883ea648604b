// Package server wires the handlers and middleware into a chi router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ykarpenko/urlkeys/internal/app/handler"
	"github.com/ykarpenko/urlkeys/internal/app/service"
	"github.com/ykarpenko/urlkeys/internal/middleware"
)

func Init(baseURL string, logger *zap.Logger, svc service.URLServiceIface) *chi.Mux {
	post := handler.NewPost(baseURL, svc, logger)
	get := handler.NewGet(svc, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGzipRequest)
	r.Use(middleware.WithGzipResponse)

	r.Post("/", post.PlainBody)
	r.Post("/api/shorten", post.ShortenJSON)
	r.Post("/api/shorten/batch", post.ShortenBatch)
	r.Post("/api/expand", post.Expand)

	r.Get("/ping", get.PingDB)
	r.Get("/{url}", get.ByShort)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Short URL is required", http.StatusBadRequest)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
