package handler

import (
	"io"
	"net/http"
)

// renameTripRequest is the body of PUT /api/trip.
type renameTripRequest struct {
	Name string `json:"name"`
}

// GetTrip handles GET /api/trip.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.trips.Trip())
}

// RenameTrip handles PUT /api/trip.
func (s *Server) RenameTrip(w http.ResponseWriter, r *http.Request) {
	var req renameTripRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := s.trips.Rename(r.Context(), req.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// ExportTrip handles GET /api/trip/export. The response body is the
// interchange document; POSTing it back to /api/trip/import restores the
// trip exactly.
func (s *Server) ExportTrip(w http.ResponseWriter, r *http.Request) {
	doc, err := s.trips.Export()
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="trip.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		// Client went away mid-download; nothing sensible to do.
		return
	}
}

// ImportTrip handles POST /api/trip/import. The whole in-memory trip is
// replaced only if the document validates; otherwise the current trip is
// untouched and the failure is surfaced.
func (s *Server) ImportTrip(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "could not read request body")
		return
	}

	trip, err := s.trips.Import(r.Context(), raw)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// ReloadTrip handles POST /api/trip/reload: re-read the persisted snapshot
// and serve it from now on. For picking up an out-of-band write to the
// storage cell without restarting the server.
func (s *Server) ReloadTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Reload(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}
