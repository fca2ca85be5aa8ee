package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ReportKind names one of the package-wide text reports.
type ReportKind string

const (
	ReportItinerary    ReportKind = "itinerary"
	ReportPassengers   ReportKind = "passengers"
	ReportAvailability ReportKind = "availability"
)

// Report renders the report of the given kind.
func (tp *TravelPackage) Report(kind ReportKind) (string, error) {
	switch kind {
	case ReportItinerary:
		return tp.Itinerary(), nil
	case ReportPassengers:
		return tp.PassengerList(), nil
	case ReportAvailability:
		return tp.ActivityAvailability(), nil
	}
	return "", fmt.Errorf("%w: unknown report %q", ErrValidation, kind)
}

// Itinerary lists every destination in order with its activities.
func (tp *TravelPackage) Itinerary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Travel Package: %s\n", tp.Name)
	for _, d := range tp.destinations {
		fmt.Fprintf(&b, "Destination: %s\n", d.Name)
		for _, a := range d.activities {
			fmt.Fprintln(&b, a)
		}
	}
	return b.String()
}

// PassengerList lists the package capacity, head count, and each passenger's balance.
func (tp *TravelPackage) PassengerList() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Travel Package: %s\n", tp.Name)
	fmt.Fprintf(&b, "Passenger Capacity: %d\n", tp.Capacity)
	fmt.Fprintf(&b, "Number of Passengers: %d\n", len(tp.passengers))
	for _, p := range tp.passengers {
		fmt.Fprintln(&b, p)
	}
	return b.String()
}

// ActivityAvailability lists every activity that still has free spaces.
func (tp *TravelPackage) ActivityAvailability() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Activities with Available Spaces in %s:\n", tp.Name)
	for _, d := range tp.destinations {
		for a := range d.AvailableActivities() {
			fmt.Fprintf(&b, "%s at %s: %d spaces available\n", a.Name, d.Name, a.AvailableSpaces())
		}
	}
	return b.String()
}

// PassengerDetails describes one passenger and every activity they joined,
// with the destination and the amount they paid.
func (tp *TravelPackage) PassengerDetails(passengerID uuid.UUID) (string, error) {
	p := tp.Passenger(passengerID)
	if p == nil {
		return "", fmt.Errorf("passenger %s: %w", passengerID, ErrNotFound)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Passenger: %s\n", p.Name)
	fmt.Fprintf(&b, "ID: %s\n", p.ID)
	fmt.Fprintf(&b, "Tier: %s\n", p.Tier)
	fmt.Fprintf(&b, "Balance: %.2f\n", p.balance)
	for _, j := range p.joins {
		dest := "unknown destination"
		if _, d := tp.FindActivity(j.Activity.ID); d != nil {
			dest = d.Name
		}
		fmt.Fprintf(&b, "Activity: %s at %s, Paid: %.2f\n", j.Activity.Name, dest, j.Paid)
	}
	return b.String(), nil
}
