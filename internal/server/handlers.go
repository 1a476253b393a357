package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/cv-optimizer/internal/parsing"
	"github.com/jonathan/cv-optimizer/internal/prompts"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// Body size limits
const (
	maxReplyBytes   = 1 << 20
	maxRequestBytes = 2 << 20
)

// ParseResponse is returned by /v1/parse/{kind}
type ParseResponse struct {
	Kind   string            `json:"kind"`
	Result any               `json:"result"`
	Report types.ParseReport `json:"report"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"optimizer": s.optimizer != nil,
		"store":     s.store != nil,
	})
}

// handleNiches lists the supported target niches
func (s *Server) handleNiches(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, prompts.Niches())
}

// handleParse parses a raw model reply posted as the request body. The
// normalize query parameter cleans the text first.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxReplyBytes))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to read body: "+err.Error())
		return
	}

	normalize := false
	if v := r.URL.Query().Get("normalize"); v != "" {
		if normalize, err = strconv.ParseBool(v); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "normalize must be a boolean")
			return
		}
	}

	result, report, err := parsing.Parse(parsing.Kind(kind), string(body), parsing.Options{Normalize: normalize})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if report.Dropped > 0 {
		s.logger.WithFields(logrus.Fields{
			"kind":    kind,
			"dropped": report.Dropped,
			"blocks":  report.Blocks,
		}).Debug("Parsed reply with dropped blocks")
	}
	s.jsonResponse(w, http.StatusOK, ParseResponse{Kind: kind, Result: result, Report: report})
}

// decodeRequest reads an optimisation request. It reports false after
// writing the error response.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (types.OptimizationRequest, bool) {
	var req types.OptimizationRequest
	if s.optimizer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "optimizer is not configured")
		return req, false
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "request body too large")
			return req, false
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return req, false
	}
	if _, ok := prompts.LookupNiche(req.Niche); !ok {
		s.errorResponse(w, http.StatusBadRequest, "unknown niche: "+req.Niche)
		return req, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

// handleOptimize runs a full optimisation
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	result, err := s.optimizer.Optimize(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRewrite returns the CV rewritten as markdown
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	result, err := s.optimizer.Rewrite(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleSuggest returns coaching suggestions as markdown
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	result, err := s.optimizer.Suggest(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleListRuns lists recent runs, newest first
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run history is not configured")
		return
	}
	limit := 0
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list runs")
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs, "count": len(runs)})
}

// handleGetRun returns a stored optimisation
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run history is not configured")
		return
	}
	id := r.PathValue("id")
	runID, err := uuid.Parse(id)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}
	result, err := s.store.GetOptimizationByRunID(r.Context(), runID)
	if err != nil {
		s.logger.WithError(err).WithField("run_id", runID).Error("Failed to load run")
		s.errorResponse(w, http.StatusInternalServerError, "failed to load run")
		return
	}
	if result == nil {
		err := &ErrNotFound{Resource: "run", ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
