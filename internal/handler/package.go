package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/travel-booking/internal/domain"
)

type createPackageRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type createDestinationRequest struct {
	Name string `json:"name"`
}

type createActivityRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Capacity    int     `json:"capacity"`
}

type createPassengerRequest struct {
	Name    string  `json:"name"`
	Tier    string  `json:"tier"`
	Balance float64 `json:"balance"`
}

type createBookingRequest struct {
	PassengerID uuid.UUID `json:"passenger_id"`
	ActivityID  uuid.UUID `json:"activity_id"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// PackageList is the body of GET /packages.
type PackageList struct {
	Data       []domain.PackageView `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

// CreatePackage handles POST /packages.
func (s *Server) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req createPackageRequest
	if err := decodeBody(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.packages.CreatePackage(r.Context(), req.Name, req.Capacity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListPackages handles GET /packages.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	params := domain.NewPaginationParams(page, limit)
	views, total, err := s.packages.ListPackages(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PackageList{
		Data:       views,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetPackage handles GET /packages/{id}.
func (s *Server) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	view, err := s.packages.GetPackage(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// AddDestination handles POST /packages/{id}/destinations.
func (s *Server) AddDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var req createDestinationRequest
	if err := decodeBody(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.packages.AddDestination(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// AddActivity handles POST /packages/{id}/destinations/{name}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	destination, err := pathString(r, "name")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var req createActivityRequest
	if err := decodeBody(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.packages.AddActivity(r.Context(), id, destination, domain.ActivityView{
		Name:        req.Name,
		Description: req.Description,
		Cost:        req.Cost,
		Capacity:    req.Capacity,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// AddPassenger handles POST /packages/{id}/passengers.
func (s *Server) AddPassenger(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var req createPassengerRequest
	if err := decodeBody(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.packages.AddPassenger(r.Context(), id, domain.PassengerView{
		Name:    req.Name,
		Tier:    domain.Tier(req.Tier),
		Balance: req.Balance,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CreateBooking handles POST /packages/{id}/bookings.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var req createBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.PassengerID == uuid.Nil || req.ActivityID == uuid.Nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "passenger_id and activity_id are required")
		return
	}

	booking, err := s.packages.Book(r.Context(), id, req.PassengerID, req.ActivityID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}
