package domain

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// TravelPackage is the top-level aggregate. It owns an ordered itinerary of
// destinations and references the passengers booked on it, of which there
// are never more than Capacity.
type TravelPackage struct {
	ID       uuid.UUID
	Name     string
	Capacity int

	destinations []*Destination
	passengers   []*Passenger
}

// NewTravelPackage returns an empty TravelPackage with a fresh ID.
func NewTravelPackage(name string, capacity int) *TravelPackage {
	return &TravelPackage{ID: uuid.New(), Name: name, Capacity: capacity}
}

// AddDestination appends d to the itinerary.
func (tp *TravelPackage) AddDestination(d *Destination) {
	tp.destinations = append(tp.destinations, d)
}

// AddPassenger books p onto the package. It returns false when the package
// is already at capacity.
func (tp *TravelPackage) AddPassenger(p *Passenger) bool {
	if len(tp.passengers) >= tp.Capacity {
		return false
	}
	tp.passengers = append(tp.passengers, p)
	return true
}

// AddActivityToDestination adds a to the first destination called name.
// It returns an error wrapping ErrNotFound when no destination matches.
// Adding an activity that is already there is not an error.
func (tp *TravelPackage) AddActivityToDestination(name string, a *Activity) error {
	d := tp.Destination(name)
	if d == nil {
		return fmt.Errorf("destination %q: %w", name, ErrNotFound)
	}
	d.AddActivity(a)
	return nil
}

// Destination returns the first destination called name, or nil.
func (tp *TravelPackage) Destination(name string) *Destination {
	for _, d := range tp.destinations {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Destinations returns the itinerary in order. The slice is a copy.
func (tp *TravelPackage) Destinations() []*Destination {
	out := make([]*Destination, len(tp.destinations))
	copy(out, tp.destinations)
	return out
}

// Passengers returns the booked passengers in booking order. The slice is a copy.
func (tp *TravelPackage) Passengers() []*Passenger {
	out := make([]*Passenger, len(tp.passengers))
	copy(out, tp.passengers)
	return out
}

// Passenger returns the booked passenger with the given ID, or nil.
func (tp *TravelPackage) Passenger(id uuid.UUID) *Passenger {
	for _, p := range tp.passengers {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindActivity returns the activity with the given ID along with the
// destination that owns it. Both are nil when no destination has it.
func (tp *TravelPackage) FindActivity(id uuid.UUID) (*Activity, *Destination) {
	for _, d := range tp.destinations {
		if a := d.Activity(id); a != nil {
			return a, d
		}
	}
	return nil, nil
}

// Book signs a passenger of this package up for one of its activities,
// charging the passenger and enrolling them on the activity together.
// Booking the same activity twice for one passenger is an ErrConflict.
// Nothing changes when Book returns an error.
func (tp *TravelPackage) Book(passengerID, activityID uuid.UUID) (BookingView, error) {
	p := tp.Passenger(passengerID)
	if p == nil {
		return BookingView{}, fmt.Errorf("passenger %s: %w", passengerID, ErrNotFound)
	}
	a, d := tp.FindActivity(activityID)
	if a == nil {
		return BookingView{}, fmt.Errorf("activity %s: %w", activityID, ErrNotFound)
	}
	if slices.Contains(a.passengers, p) {
		return BookingView{}, fmt.Errorf("%s already booked on %s: %w", p.Name, a.Name, ErrConflict)
	}
	if !a.hasSpace() {
		return BookingView{}, fmt.Errorf("%s: %w", a.Name, ErrCapacityExceeded)
	}
	before := p.balance
	if !p.JoinActivity(a) {
		return BookingView{}, fmt.Errorf("%s costs %.2f, balance %.2f: %w",
			a.Name, p.Tier.Price(a.Cost), p.balance, ErrInsufficientBalance)
	}
	a.Enroll(p)

	return BookingView{
		PackageID:   tp.ID,
		PassengerID: p.ID,
		ActivityID:  a.ID,
		Destination: d.Name,
		Charged:     before - p.balance,
		Balance:     p.balance,
	}, nil
}

// View returns a value snapshot of the whole package.
func (tp *TravelPackage) View() PackageView {
	v := PackageView{
		ID:           tp.ID,
		Name:         tp.Name,
		Capacity:     tp.Capacity,
		Destinations: make([]DestinationView, 0, len(tp.destinations)),
		Passengers:   make([]PassengerView, 0, len(tp.passengers)),
	}
	for _, d := range tp.destinations {
		v.Destinations = append(v.Destinations, d.View())
	}
	for _, p := range tp.passengers {
		v.Passengers = append(v.Passengers, p.View())
	}
	return v
}
