package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/creekriver/backend/internal/domain"
)

// reservationRequest is the body accepted by POST /api/reservations.
// Dates are calendar dates ("2023-09-12") with no time-of-day or zone;
// openapi_types.Date enforces the format during decoding.
type reservationRequest struct {
	CampsiteID    int64              `json:"campsite_id"`
	UserProfileID int64              `json:"user_profile_id"`
	CheckinDate   openapi_types.Date `json:"checkin_date"`
	CheckoutDate  openapi_types.Date `json:"checkout_date"`
}

// reservationResponse mirrors domain.Reservation with the dates rendered as
// bare calendar dates instead of RFC 3339 timestamps.
type reservationResponse struct {
	ID               int64               `json:"id"`
	ConfirmationCode uuid.UUID           `json:"confirmation_code"`
	CampsiteID       int64               `json:"campsite_id"`
	UserProfileID    int64               `json:"user_profile_id"`
	CheckinDate      openapi_types.Date  `json:"checkin_date"`
	CheckoutDate     openapi_types.Date  `json:"checkout_date"`
	CreatedAt        time.Time           `json:"created_at"`
	Campsite         *domain.Campsite    `json:"campsite,omitempty"`
	UserProfile      *domain.UserProfile `json:"user_profile,omitempty"`
}

// CreateReservation handles POST /api/reservations.
// The service runs the full availability validation before anything is
// persisted; rejections come back as 422 (bad range, too long) or 409 (overlap).
func (s *Server) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.reservations.Create(r.Context(), domain.Reservation{
		CampsiteID:    req.CampsiteID,
		UserProfileID: req.UserProfileID,
		CheckinDate:   req.CheckinDate.Time,
		CheckoutDate:  req.CheckoutDate.Time,
	})
	if err != nil {
		respondError(w, r, err, "reservation")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/reservations/%d", created.ID))
	writeJSON(w, http.StatusCreated, reservationToResponse(created))
}

// ListReservations handles GET /api/reservations.
// Every row carries its user profile, campsite, and campsite type, ordered by
// checkin date.
func (s *Server) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.reservations.List(r.Context())
	if err != nil {
		respondError(w, r, err, "reservation")
		return
	}

	data := make([]reservationResponse, len(reservations))
	for i, res := range reservations {
		data[i] = reservationToResponse(res)
	}
	writeJSON(w, http.StatusOK, data)
}

// GetReservation handles GET /api/reservations/{id}.
func (s *Server) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	res, err := s.reservations.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "reservation")
		return
	}

	writeJSON(w, http.StatusOK, reservationToResponse(res))
}

// DeleteReservation handles DELETE /api/reservations/{id}.
func (s *Server) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.reservations.Delete(r.Context(), id); err != nil {
		respondError(w, r, err, "reservation")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// reservationToResponse converts a domain.Reservation into the response shape.
func reservationToResponse(res domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:               res.ID,
		ConfirmationCode: res.ConfirmationCode,
		CampsiteID:       res.CampsiteID,
		UserProfileID:    res.UserProfileID,
		CheckinDate:      openapi_types.Date{Time: res.CheckinDate},
		CheckoutDate:     openapi_types.Date{Time: res.CheckoutDate},
		CreatedAt:        res.CreatedAt,
		Campsite:         res.Campsite,
		UserProfile:      res.UserProfile,
	}
}
