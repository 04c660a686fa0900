package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Diegogmorales/Biblioteca-digital/internal/catalog"
	"github.com/Diegogmorales/Biblioteca-digital/internal/config"
	"github.com/Diegogmorales/Biblioteca-digital/internal/httpx"
	"github.com/Diegogmorales/Biblioteca-digital/internal/web"
)

// newRouter assembles the route table and middleware chain. Only the
// mutating endpoints sit behind the API-key gate.
func newRouter(cfg config.Config, log *zap.Logger, handler *catalog.HTTPHandler, ready http.HandlerFunc) http.Handler {
	gate := httpx.APIKeyMiddleware(cfg.APIKey)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", ready)

	mux.HandleFunc("GET /api/biblioteca", handler.GetShelf)
	mux.Handle("POST /api/biblioteca", gate(http.HandlerFunc(handler.AddBook)))
	mux.Handle("DELETE /api/libros/{id}", gate(http.HandlerFunc(handler.DeleteBook)))
	mux.HandleFunc("GET /api/descargar-csv", handler.DownloadCSV)

	mux.Handle("/", web.Handler())

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateRPS, cfg.RateBurst)

	var h http.Handler = mux
	h = rateLimit.Middleware(h)
	h = httpx.CORSMiddleware(cfg.AllowedOrigins)(h)
	h = httpx.RecoveryMiddleware(log)(h)
	h = httpx.AccessLogMiddleware(log)(h)
	h = httpx.RequestIDMiddleware(h)
	return h
}
