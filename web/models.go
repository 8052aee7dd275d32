/* models.go
 * Contains the config, server and response types for the HTTP server
 * Authors: Zachary Bower
 */

package web

import (
	"wahoo-bot/api/api"
	"wahoo-bot/api/logic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API

	// Gatherer is served on /metrics when set
	Gatherer prometheus.Gatherer
	Logger   zerolog.Logger
}

// Server is the HTTP server that serves reports and searches
type Server struct {
	api    *api.API
	logger zerolog.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

type teamSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// searchResponse is the body of /search. Report is only set when exactly one team matched
type searchResponse struct {
	Outcome string        `json:"outcome"`
	Teams   []teamSummary `json:"teams"`
	Report  *logic.Report `json:"report,omitempty"`
}
