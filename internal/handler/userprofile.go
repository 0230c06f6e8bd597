package handler

import (
	"fmt"
	"net/http"

	"github.com/creekriver/backend/internal/domain"
)

// userProfileRequest is the body accepted by POST /api/user-profiles.
type userProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CreateUserProfile handles POST /api/user-profiles.
func (s *Server) CreateUserProfile(w http.ResponseWriter, r *http.Request) {
	var req userProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.users.Create(r.Context(), domain.UserProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		respondError(w, r, err, "user profile")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/user-profiles/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

// GetUserProfile handles GET /api/user-profiles/{id}.
func (s *Server) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	profile, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "user profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// DeleteUserProfile handles DELETE /api/user-profiles/{id}.
// Reservations held by the profile are removed by the cascade.
func (s *Server) DeleteUserProfile(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.users.Delete(r.Context(), id); err != nil {
		respondError(w, r, err, "user profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
