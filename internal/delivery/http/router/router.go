package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/company-crawler/internal/delivery/http/handler"
	"github.com/user/company-crawler/internal/delivery/http/middleware"
)

func New(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.HandleIndex)
	mux.HandleFunc("GET /api/health", h.HandleHealthCheck)

	// Session-scoped crawl API.
	withSession := func(hf http.HandlerFunc) http.Handler {
		return middleware.Session(hf)
	}
	mux.Handle("POST /crawl", withSession(h.HandleCrawl))
	mux.Handle("POST /stop", withSession(h.HandleStop))
	mux.Handle("GET /status", withSession(h.HandleStatus))
	mux.Handle("GET /results", withSession(h.HandleResults))
	mux.Handle("GET /download", withSession(h.HandleDownload))

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Apply middlewares
	var chainedHandler http.Handler = mux
	chainedHandler = middleware.Metrics(chainedHandler)
	chainedHandler = middleware.Logging(chainedHandler)

	return chainedHandler
}
