/* handlers.go
 * Contains the HTTP handlers for health checks, matchup reports and team searches
 * Authors: Zachary Bower
 */

package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"wahoo-bot/api/api"
	"wahoo-bot/api/external"
	"wahoo-bot/api/logic"
)

// requestTimeout bounds the Battlefy and Overbuff calls made for a single request
const requestTimeout = 60 * time.Second

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeUpstreamError maps an error from the api to a status code
func (s *Server) writeUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, api.ErrInvalidRound):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.writeError(w, http.StatusGatewayTimeout, "upstream timed out")
	case external.IsNetworkError(err), external.IsDecodeError(err):
		s.writeError(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error().Err(err).Msg("unexpected error")
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// HealthHandler reports whether the database can be reached
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.api.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("health check failed")
		s.writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ReportHandler serves the report of the team a Battlefy team plays in a round
// Preconditions: Receives a GET with the query parameters stage, team (persistent team id) and round
// Postconditions: Writes the report as JSON, 404 if the team has no match that round, 400 for bad parameters or
// 502 if Battlefy could not be asked
func (s *Server) ReportHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	stage, team := q.Get("stage"), q.Get("team")
	if stage == "" || team == "" {
		s.writeError(w, http.StatusBadRequest, "stage and team are required")
		return
	}
	round, err := strconv.Atoi(q.Get("round"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "round must be a number")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	report, found, err := s.api.MatchupReport(ctx, stage, team, round)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	if !found {
		s.writeError(w, http.StatusNotFound, "no match found")
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// SearchHandler searches a tournament for teams by name. When exactly one team matches its report is included
func (s *Server) SearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tournament, name := q.Get("tournament"), q.Get("name")
	if tournament == "" || name == "" {
		s.writeError(w, http.StatusBadRequest, "tournament and name are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	outcome, err := s.api.SearchTeam(ctx, tournament, name)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	resp := searchResponse{Teams: []teamSummary{}}
	switch o := outcome.(type) {
	case external.NoMatch:
		resp.Outcome = "none"
	case external.Ambiguous:
		resp.Outcome = "many"
		for _, t := range o.Teams {
			resp.Teams = append(resp.Teams, teamSummary{ID: t.PID(), Name: t.Name()})
		}
	case external.ExactlyOne:
		resp.Outcome = "one"
		resp.Teams = append(resp.Teams, teamSummary{ID: o.Team.PID(), Name: o.Team.Name()})

		var report logic.Report
		report, err = s.api.TeamReport(ctx, o.Team)
		if err != nil {
			s.writeUpstreamError(w, err)
			return
		}
		resp.Report = &report
	}
	s.writeJSON(w, http.StatusOK, resp)
}
