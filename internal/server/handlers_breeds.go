package server

import (
	"net/http"
	"strconv"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// handleListBreeds lists the catalog, optionally filtered by a name substring
func (s *Server) handleListBreeds(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 200)
	offset := parseQueryInt(r, "offset", 0, 0)

	if query := r.URL.Query().Get("q"); query != "" {
		breeds, err := s.db.SearchBreeds(r.Context(), query, limit)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{"breeds": breeds, "query": query})
		return
	}

	breeds, err := s.db.ListBreeds(r.Context(), limit, offset)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"breeds": breeds,
		"limit":  limit,
		"offset": offset,
	})
}

// handleGetBreed retrieves one breed by ID
func (s *Server) handleGetBreed(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid breed ID")
		return
	}

	breed, err := s.db.GetBreedByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if breed == nil {
		s.errorResponse(w, http.StatusNotFound, "Breed not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, breed)
}

// handleSyncBreeds runs the idempotent catalog sync
func (s *Server) handleSyncBreeds(w http.ResponseWriter, r *http.Request) {
	result, err := s.syncer.Sync(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Breed sync failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
