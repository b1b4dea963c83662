package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/breedwise/breedwise/internal/comparison"
	"github.com/breedwise/breedwise/internal/types"
)

type winnersRequest struct {
	BreedIDs []int `json:"breed_ids"`
}

// handleComparisonWinners computes per-trait winners for an ad-hoc breed set
func (s *Server) handleComparisonWinners(w http.ResponseWriter, r *http.Request) {
	var req winnersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.BreedIDs) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "breed_ids is required")
		return
	}

	breeds, err := s.db.GetBreedsByIDs(r.Context(), req.BreedIDs)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if len(breeds) != len(req.BreedIDs) {
		s.errorResponse(w, http.StatusNotFound, "One or more breeds not found")
		return
	}

	winners, err := comparison.Winners(breeds)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"breeds":  breeds,
		"winners": winners,
	})
}

type createComparisonRequest struct {
	Name     string `json:"name"`
	BreedIDs []int  `json:"breed_ids"`
	IsPublic bool   `json:"is_public"`
}

// handleCreateComparison saves a named comparison set for the caller
func (s *Server) handleCreateComparison(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || len(req.BreedIDs) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "name and breed_ids are required")
		return
	}
	if len(req.BreedIDs) > types.MaxComparisonBreeds {
		err := &comparison.TooManyBreedsError{Count: len(req.BreedIDs)}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	c := &types.Comparison{
		UserID:   userID,
		Name:     req.Name,
		BreedIDs: req.BreedIDs,
		IsPublic: req.IsPublic,
	}
	if err := s.db.CreateComparison(r.Context(), c); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save comparison")
		return
	}

	s.jsonResponse(w, http.StatusCreated, c)
}

// handleListComparisons lists the caller's saved comparisons
func (s *Server) handleListComparisons(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	comparisons, err := s.db.ListComparisonsByUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"comparisons": comparisons})
}

// handleGetComparison returns a saved comparison with its breeds and winners.
// Public comparisons need no token; private ones only resolve for their owner.
func (s *Server) handleGetComparison(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid comparison ID")
		return
	}

	var requesterID *uuid.UUID
	if userID, ok := s.bearerUserID(r); ok {
		requesterID = &userID
	}

	c, err := s.db.GetComparison(r.Context(), id, requesterID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if c == nil {
		s.errorResponse(w, http.StatusNotFound, "Comparison not found")
		return
	}

	breeds, err := s.db.GetBreedsByIDs(r.Context(), c.BreedIDs)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	winners, err := comparison.Winners(breeds)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"comparison": c,
		"breeds":     breeds,
		"winners":    winners,
	})
}

// handleDeleteComparison removes a comparison owned by the caller
func (s *Server) handleDeleteComparison(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid comparison ID")
		return
	}

	deleted, err := s.db.DeleteComparison(r.Context(), id, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Comparison not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
