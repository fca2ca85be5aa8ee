package domain

import "github.com/google/uuid"

// The view types below are value snapshots of the live object graph.
// They are safe to hold after the package lock is released and are encoded
// directly as API responses.

// PackageView is a snapshot of a TravelPackage.
type PackageView struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Capacity     int               `json:"capacity"`
	Destinations []DestinationView `json:"destinations"`
	Passengers   []PassengerView   `json:"passengers"`
}

// DestinationView is a snapshot of a Destination.
type DestinationView struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Activities []ActivityView `json:"activities"`
}

// ActivityView is a snapshot of an Activity.
// Enrolled and AvailableSpaces are ignored when the view is used as input.
type ActivityView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Cost            float64   `json:"cost"`
	Capacity        int       `json:"capacity"`
	Enrolled        int       `json:"enrolled"`
	AvailableSpaces int       `json:"available_spaces"`
}

// PassengerView is a snapshot of a Passenger.
type PassengerView struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Tier        Tier        `json:"tier"`
	Balance     float64     `json:"balance"`
	ActivityIDs []uuid.UUID `json:"activity_ids"`
}

// BookingView describes a successful TravelPackage.Book call.
type BookingView struct {
	PackageID   uuid.UUID `json:"package_id"`
	PassengerID uuid.UUID `json:"passenger_id"`
	ActivityID  uuid.UUID `json:"activity_id"`
	Destination string    `json:"destination"`
	Charged     float64   `json:"charged"`
	Balance     float64   `json:"balance"`
}
