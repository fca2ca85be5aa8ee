// Package handler implements the HTTP handlers for the travel booking API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, package.go, report.go) but share the same Server struct.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-booking/internal/domain"
)

// PackageServicer defines the business operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the repo or service layer.
type PackageServicer interface {
	CreatePackage(ctx context.Context, name string, capacity int) (domain.PackageView, error)
	ListPackages(ctx context.Context, params domain.PaginationParams) ([]domain.PackageView, int, error)
	GetPackage(ctx context.Context, id uuid.UUID) (domain.PackageView, error)
	AddDestination(ctx context.Context, pkgID uuid.UUID, name string) (domain.DestinationView, error)
	AddActivity(ctx context.Context, pkgID uuid.UUID, destination string, in domain.ActivityView) (domain.ActivityView, error)
	AddPassenger(ctx context.Context, pkgID uuid.UUID, in domain.PassengerView) (domain.PassengerView, error)
	Book(ctx context.Context, pkgID, passengerID, activityID uuid.UUID) (domain.BookingView, error)
	Report(ctx context.Context, pkgID uuid.UUID, kind domain.ReportKind) (string, error)
	PassengerDetails(ctx context.Context, pkgID, passengerID uuid.UUID) (string, error)
}

// Server holds the handler dependencies.
type Server struct {
	packages PackageServicer
	openAPI  []byte
}

// NewServer constructs the Server. openAPI is served verbatim at /openapi.yaml
// and may be nil.
func NewServer(packages PackageServicer, openAPI []byte) *Server {
	return &Server{packages: packages, openAPI: openAPI}
}

// Handler returns a chi router with every API route registered.
// Middleware is applied by the caller.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

// Routes registers every API route on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/packages", func(r chi.Router) {
		r.Post("/", s.CreatePackage)
		r.Get("/", s.ListPackages)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetPackage)
			r.Post("/destinations", s.AddDestination)
			r.Post("/destinations/{name}/activities", s.AddActivity)
			r.Post("/passengers", s.AddPassenger)
			r.Get("/passengers", s.GetPassengerList)
			r.Get("/passengers/{passengerID}", s.GetPassengerDetails)
			r.Post("/bookings", s.CreateBooking)
			r.Get("/itinerary", s.GetItinerary)
			r.Get("/availability", s.GetAvailability)
		})
	})
}
