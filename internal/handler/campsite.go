package handler

import (
	"fmt"
	"net/http"

	"github.com/creekriver/backend/internal/domain"
)

// campsiteRequest is the body accepted by both POST and PUT /api/campsites.
type campsiteRequest struct {
	CampsiteTypeID int64  `json:"campsite_type_id"`
	Nickname       string `json:"nickname"`
	ImageURL       string `json:"image_url"`
}

// paginatedCampsites is the GET /api/campsites response envelope.
type paginatedCampsites struct {
	Data       []domain.Campsite `json:"data"`
	Pagination pagination        `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// CreateCampsite handles POST /api/campsites.
func (s *Server) CreateCampsite(w http.ResponseWriter, r *http.Request) {
	var req campsiteRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.campsites.Create(r.Context(), domain.Campsite{
		CampsiteTypeID: req.CampsiteTypeID,
		Nickname:       req.Nickname,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		respondError(w, r, err, "campsite")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/campsites/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

// ListCampsites handles GET /api/campsites.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListCampsites(w http.ResponseWriter, r *http.Request) {
	params := pageParams(r)
	campsites, total, err := s.campsites.ListPaged(r.Context(), params)
	if err != nil {
		respondError(w, r, err, "campsite")
		return
	}

	writeJSON(w, http.StatusOK, paginatedCampsites{
		Data: campsites,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetCampsite handles GET /api/campsites/{id}.
// The response includes the campsite's type.
func (s *Server) GetCampsite(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	campsite, err := s.campsites.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "campsite")
		return
	}

	writeJSON(w, http.StatusOK, campsite)
}

// UpdateCampsite handles PUT /api/campsites/{id}.
// Nickname, type reference, and image are replaced wholesale, matching the
// immutability of everything else on the record.
func (s *Server) UpdateCampsite(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req campsiteRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	updated, err := s.campsites.Update(r.Context(), domain.Campsite{
		ID:             id,
		CampsiteTypeID: req.CampsiteTypeID,
		Nickname:       req.Nickname,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		respondError(w, r, err, "campsite")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteCampsite handles DELETE /api/campsites/{id}.
// Reservations on the campsite are removed by the cascade.
func (s *Server) DeleteCampsite(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.campsites.Delete(r.Context(), id); err != nil {
		respondError(w, r, err, "campsite")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
