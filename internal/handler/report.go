package handler

import (
	"net/http"

	"github.com/pkordes/travel-booking/internal/domain"
)

// GetItinerary handles GET /packages/{id}/itinerary.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	s.writeReport(w, r, domain.ReportItinerary)
}

// GetPassengerList handles GET /packages/{id}/passengers.
func (s *Server) GetPassengerList(w http.ResponseWriter, r *http.Request) {
	s.writeReport(w, r, domain.ReportPassengers)
}

// GetAvailability handles GET /packages/{id}/availability.
func (s *Server) GetAvailability(w http.ResponseWriter, r *http.Request) {
	s.writeReport(w, r, domain.ReportAvailability)
}

// GetPassengerDetails handles GET /packages/{id}/passengers/{passengerID}.
func (s *Server) GetPassengerDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	passengerID, err := pathUUID(r, "passengerID")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	text, err := s.packages.PassengerDetails(r.Context(), id, passengerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeText(w, text)
}

func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, kind domain.ReportKind) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	text, err := s.packages.Report(r.Context(), id, kind)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeText(w, text)
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
