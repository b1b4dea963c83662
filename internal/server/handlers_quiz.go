package server

import (
	"encoding/json"
	"net/http"

	"github.com/breedwise/breedwise/internal/matching"
	"github.com/breedwise/breedwise/internal/types"
)

type quizRequest struct {
	SessionID string           `json:"session_id,omitempty"`
	Answers   types.QuizAnswer `json:"answers"`
}

// handleSubmitQuiz scores a quiz submission and returns the ranked matches.
// An Authorization header attributes the submission to the user; otherwise a
// session_id in the body identifies the anonymous caller.
func (s *Server) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity := matching.Identity{}
	if userID, ok := s.bearerUserID(r); ok {
		identity.UserID = &userID
	} else if req.SessionID != "" {
		identity.SessionID = &req.SessionID
	}

	submission, err := s.matchService.Submit(r.Context(), identity, req.Answers)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, submission)
}

// handleQuizResults returns previously persisted submissions for the caller
func (s *Server) handleQuizResults(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 20, 100)

	if userID, ok := s.bearerUserID(r); ok {
		submissions, err := s.db.ListQuizSubmissionsByUser(r.Context(), userID, limit)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{"submissions": submissions})
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		s.errorResponse(w, http.StatusBadRequest, "A bearer token or session_id is required")
		return
	}

	submissions, err := s.db.ListQuizSubmissionsBySession(r.Context(), sessionID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"submissions": submissions})
}
