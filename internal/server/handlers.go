package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ScoreResponse represents the response for /score
type ScoreResponse struct {
	RequestID string                `json:"request_id"`
	Breakdown *types.ScoreBreakdown `json:"breakdown"`
}

// BatchScoreResponse represents the response for /score/batch
type BatchScoreResponse struct {
	RequestID  string                  `json:"request_id"`
	Breakdowns []*types.ScoreBreakdown `json:"breakdowns"`
}

// handleScore scores one resume against one job description
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	breakdown, err := s.engine.Score(r.Context(), &req.Job, &req.Resume)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		RequestID: uuid.New().String(),
		Breakdown: breakdown,
	})
}

// handleScoreBatch scores multiple resumes against one job description
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resumes := make([]*types.ExtractedDocument, len(req.Resumes))
	for i := range req.Resumes {
		resumes[i] = &req.Resumes[i]
	}

	breakdowns, err := s.engine.ScoreBatch(r.Context(), &req.Job, resumes, 0)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, BatchScoreResponse{
		RequestID:  uuid.New().String(),
		Breakdowns: breakdowns,
	})
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
