package handler

import (
	"fmt"
	"net/http"

	"github.com/creekriver/backend/internal/domain"
)

// campsiteTypeRequest is the body accepted by both POST and PUT /api/campsite-types.
// FeePerNight is a decimal string ("15.99"); domain.Money rejects negative or
// over-precise amounts during decoding.
type campsiteTypeRequest struct {
	Name               string       `json:"name"`
	FeePerNight        domain.Money `json:"fee_per_night"`
	MaxReservationDays int          `json:"max_reservation_days"`
}

// CreateCampsiteType handles POST /api/campsite-types.
func (s *Server) CreateCampsiteType(w http.ResponseWriter, r *http.Request) {
	var req campsiteTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.types.Create(r.Context(), domain.CampsiteType{
		Name:               req.Name,
		FeePerNight:        req.FeePerNight,
		MaxReservationDays: req.MaxReservationDays,
	})
	if err != nil {
		respondError(w, r, err, "campsite type")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/campsite-types/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

// ListCampsiteTypes handles GET /api/campsite-types.
func (s *Server) ListCampsiteTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.types.List(r.Context())
	if err != nil {
		respondError(w, r, err, "campsite type")
		return
	}
	writeJSON(w, http.StatusOK, types)
}

// GetCampsiteType handles GET /api/campsite-types/{id}.
func (s *Server) GetCampsiteType(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	ct, err := s.types.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "campsite type")
		return
	}

	writeJSON(w, http.StatusOK, ct)
}

// UpdateCampsiteType handles PUT /api/campsite-types/{id}.
func (s *Server) UpdateCampsiteType(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req campsiteTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	updated, err := s.types.Update(r.Context(), domain.CampsiteType{
		ID:                 id,
		Name:               req.Name,
		FeePerNight:        req.FeePerNight,
		MaxReservationDays: req.MaxReservationDays,
	})
	if err != nil {
		respondError(w, r, err, "campsite type")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
