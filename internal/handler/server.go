// Package handler implements the HTTP handlers for the Creek River API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (campsite.go, reservation.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creekriver/backend/internal/domain"
	"github.com/creekriver/backend/spec"
)

// Servicer interfaces are defined here, in the consumer package, following
// the Go convention: "accept interfaces, return concrete types". They let
// handler tests inject a mock without touching the database or service layer.

// CampsiteServicer defines the business operations the campsite handlers depend on.
type CampsiteServicer interface {
	Create(ctx context.Context, c domain.Campsite) (domain.Campsite, error)
	GetByID(ctx context.Context, id int64) (domain.Campsite, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Campsite, int64, error)
	Update(ctx context.Context, c domain.Campsite) (domain.Campsite, error)
	Delete(ctx context.Context, id int64) error
}

// CampsiteTypeServicer defines the business operations the campsite type handlers depend on.
type CampsiteTypeServicer interface {
	Create(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error)
	GetByID(ctx context.Context, id int64) (domain.CampsiteType, error)
	List(ctx context.Context) ([]domain.CampsiteType, error)
	Update(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error)
}

// UserProfileServicer defines the business operations the user profile handlers depend on.
type UserProfileServicer interface {
	Create(ctx context.Context, up domain.UserProfile) (domain.UserProfile, error)
	GetByID(ctx context.Context, id int64) (domain.UserProfile, error)
	Delete(ctx context.Context, id int64) error
}

// ReservationServicer defines the business operations the reservation handlers depend on.
type ReservationServicer interface {
	Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// Server holds the services every handler method needs.
type Server struct {
	campsites    CampsiteServicer
	types        CampsiteTypeServicer
	users        UserProfileServicer
	reservations ReservationServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(campsites CampsiteServicer, types CampsiteTypeServicer, users UserProfileServicer, reservations ReservationServicer) *Server {
	return &Server{campsites: campsites, types: types, users: users, reservations: reservations}
}

// Routes registers every endpoint on the given chi router.
// Middleware is expected to be applied by the caller before mounting.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)
	r.Get("/docs", s.GetDocs)

	r.Route("/api", func(r chi.Router) {
		r.Route("/campsites", func(r chi.Router) {
			r.Get("/", s.ListCampsites)
			r.Post("/", s.CreateCampsite)
			r.Get("/{id}", s.GetCampsite)
			r.Put("/{id}", s.UpdateCampsite)
			r.Delete("/{id}", s.DeleteCampsite)
		})
		r.Route("/campsite-types", func(r chi.Router) {
			r.Get("/", s.ListCampsiteTypes)
			r.Post("/", s.CreateCampsiteType)
			r.Get("/{id}", s.GetCampsiteType)
			r.Put("/{id}", s.UpdateCampsiteType)
		})
		r.Route("/user-profiles", func(r chi.Router) {
			r.Post("/", s.CreateUserProfile)
			r.Get("/{id}", s.GetUserProfile)
			r.Delete("/{id}", s.DeleteUserProfile)
		})
		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", s.ListReservations)
			r.Post("/", s.CreateReservation)
			r.Get("/{id}", s.GetReservation)
			r.Delete("/{id}", s.DeleteReservation)
		})
	})
}

// GetOpenAPISpec serves the embedded OpenAPI document.
// Serving it from the binary means the spec and the running code are always in sync.
func (s *Server) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// GetDocs serves a minimal Scalar API reference page pointed at /openapi.yaml.
func (s *Server) GetDocs(w http.ResponseWriter, r *http.Request) {
	const page = `<!doctype html>
<html>
<head><title>Creek River API</title><meta charset="utf-8"/></head>
<body>
<script id="api-reference" data-url="/openapi.yaml"></script>
<script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}
