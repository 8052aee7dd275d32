/* routes.go
 * Contains the function that binds the handlers to their routes
 * Authors: Zachary Bower
 */

package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler builds the server's routes
func NewHandler(cfg Config) http.Handler {
	s := &Server{
		api:    cfg.API,
		logger: cfg.Logger,
	}

	mux := http.NewServeMux()
	// bind handler methods that have access to s.api
	mux.HandleFunc("GET /healthz", s.HealthHandler)
	mux.HandleFunc("GET /report", s.ReportHandler)
	mux.HandleFunc("GET /search", s.SearchHandler)
	if cfg.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	return mux
}
